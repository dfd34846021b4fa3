package main

import (
	"github.com/rpg-companion/api/internal/config"
	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedCatalog(models.DB); err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}

	var races, classes, skills int64
	models.DB.Model(&models.Race{}).Count(&races)
	models.DB.Model(&models.Class{}).Count(&classes)
	models.DB.Model(&models.Skill{}).Count(&skills)
	stdLog.Printf("Catalog ready: %d races, %d classes, %d skills", races, classes, skills)
}
