package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rpg-companion/api/internal/models"
	"github.com/rpg-companion/api/internal/repository"
)

func TestCatalogServiceLookups(t *testing.T) {
	db := setupServiceTestDB(t, "catalog_service")
	if err := models.SeedCatalog(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	svc := NewCatalogService(repository.NewCatalogRepository(db))
	ctx := context.Background()

	races, err := svc.ListRaces(ctx)
	if err != nil || len(races) == 0 {
		t.Fatalf("list races failed: %v", err)
	}
	if _, err := svc.GetRace(ctx, 9999); !errors.Is(err, ErrRaceNotFound) {
		t.Fatalf("missing race want ErrRaceNotFound got %v", err)
	}
	if _, err := svc.GetRace(ctx, 0); !errors.Is(err, ErrRaceNotFound) {
		t.Fatalf("zero race want ErrRaceNotFound got %v", err)
	}

	classes, err := svc.ListClasses(ctx)
	if err != nil || len(classes) == 0 {
		t.Fatalf("list classes failed: %v", err)
	}
	class, err := svc.GetClass(ctx, classes[0].ID)
	if err != nil || len(class.Skills) == 0 {
		t.Fatalf("class should include skills: %v", err)
	}

	skills, err := svc.ListClassSkills(ctx, class.ID, 1)
	if err != nil {
		t.Fatalf("list class skills failed: %v", err)
	}
	for _, skill := range skills {
		if skill.ClassID != class.ID || skill.MinLevel > 1 {
			t.Fatalf("unexpected skill %+v", skill)
		}
	}
	if _, err := svc.ListClassSkills(ctx, 9999, 0); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("missing class want ErrClassNotFound got %v", err)
	}

	found, err := svc.SearchSkills("furtivo")
	if err != nil || len(found) != 1 {
		t.Fatalf("search want one skill got %d err=%v", len(found), err)
	}
}
