package repository

import (
	"testing"

	"github.com/rpg-companion/api/internal/models"

	"gorm.io/gorm"
)

func setupCatalogRepositoryTest(t *testing.T, name string) (*GormCatalogRepository, *gorm.DB) {
	t.Helper()
	db := setupRepositoryTestDB(t, name)
	if err := models.SeedCatalog(db); err != nil {
		t.Fatalf("seed catalog failed: %v", err)
	}
	return NewCatalogRepository(db), db
}

func TestCatalogRepositoryClassWithSkills(t *testing.T) {
	repo, db := setupCatalogRepositoryTest(t, "catalog_repo_class")

	var mage models.Class
	if err := db.Where("nome = ?", "Mago").First(&mage).Error; err != nil {
		t.Fatalf("load mage failed: %v", err)
	}

	class, err := repo.GetClassByID(mage.ID, true)
	if err != nil || class == nil {
		t.Fatalf("get class failed: %v", err)
	}
	if len(class.Skills) != 3 {
		t.Fatalf("mage skills want 3 got %d", len(class.Skills))
	}
	for i := 1; i < len(class.Skills); i++ {
		if class.Skills[i-1].MinLevel > class.Skills[i].MinLevel {
			t.Fatalf("skills must be ordered by level")
		}
	}

	missing, err := repo.GetClassByID(99999, false)
	if err != nil || missing != nil {
		t.Fatalf("missing class want nil,nil got %+v %v", missing, err)
	}
}

func TestCatalogRepositoryListSkillsFilters(t *testing.T) {
	repo, db := setupCatalogRepositoryTest(t, "catalog_repo_skills")

	var rogue models.Class
	if err := db.Where("nome = ?", "Ladino").First(&rogue).Error; err != nil {
		t.Fatalf("load rogue failed: %v", err)
	}

	skills, err := repo.ListSkills(SkillListFilter{ClassID: rogue.ID, MaxLevel: 2})
	if err != nil {
		t.Fatalf("list skills failed: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("rogue skills up to level 2 want 2 got %d", len(skills))
	}

	skills, err = repo.ListSkills(SkillListFilter{Search: "fogo"})
	if err != nil {
		t.Fatalf("search skills failed: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "Bola de Fogo" {
		t.Fatalf("search want Bola de Fogo got %+v", skills)
	}

	byIDs, err := repo.ListSkillsByIDs([]uint{skills[0].ID})
	if err != nil || len(byIDs) != 1 {
		t.Fatalf("list by ids failed: %v", err)
	}
	empty, err := repo.ListSkillsByIDs(nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty ids want empty slice got %v %v", empty, err)
	}
}

func TestCatalogRepositoryRaces(t *testing.T) {
	repo, _ := setupCatalogRepositoryTest(t, "catalog_repo_races")
	races, err := repo.ListRaces()
	if err != nil {
		t.Fatalf("list races failed: %v", err)
	}
	if len(races) == 0 {
		t.Fatalf("expected seeded races")
	}
	race, err := repo.GetRaceByID(races[0].ID)
	if err != nil || race == nil || race.Name != races[0].Name {
		t.Fatalf("get race failed: %+v %v", race, err)
	}
}
