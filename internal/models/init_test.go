package models

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestSeedCatalogIsIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:models_seed_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := Open("sqlite", dsn, logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := SeedCatalog(db); err != nil {
			t.Fatalf("seed round %d failed: %v", i, err)
		}
	}

	var races, classes, skills int64
	db.Model(&Race{}).Count(&races)
	db.Model(&Class{}).Count(&classes)
	db.Model(&Skill{}).Count(&skills)
	if races != int64(len(defaultRaces)) {
		t.Fatalf("races want %d got %d", len(defaultRaces), races)
	}
	if classes != int64(len(defaultClasses)) {
		t.Fatalf("classes want %d got %d", len(defaultClasses), classes)
	}
	wantSkills := 0
	for _, item := range defaultClasses {
		wantSkills += len(item.Skills)
	}
	if skills != int64(wantSkills) {
		t.Fatalf("skills want %d got %d", wantSkills, skills)
	}

	var elf Race
	if err := db.Where("nome = ?", "Elfo").First(&elf).Error; err != nil {
		t.Fatalf("load elf failed: %v", err)
	}
	if elf.Bonus.Dexterity != 2 || elf.Bonus.Intelligence != 1 {
		t.Fatalf("unexpected elf bonus: %+v", elf.Bonus)
	}
}

func TestUserActiveResetToken(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	digest := "abc"
	future := now.Add(time.Minute)
	past := now.Add(-time.Second)

	cases := []struct {
		name string
		user *User
		want bool
	}{
		{name: "nil user", user: nil, want: false},
		{name: "no token", user: &User{}, want: false},
		{name: "valid", user: &User{ResetToken: &digest, ResetTokenExpiry: &future}, want: true},
		{name: "expired", user: &User{ResetToken: &digest, ResetTokenExpiry: &past}, want: false},
		{name: "boundary", user: &User{ResetToken: &digest, ResetTokenExpiry: &now}, want: true},
	}
	for _, tc := range cases {
		if got := tc.user.HasActiveResetToken(now); got != tc.want {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, got)
		}
	}
}
