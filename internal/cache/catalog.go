package cache

import (
	"context"
	"fmt"
	"time"
)

// CatalogTTL lifetime of cached catalog responses
const CatalogTTL = 10 * time.Minute

const catalogKeyPrefix = "catalog"

// CatalogRacesKey all races
func CatalogRacesKey() string {
	return catalogKeyPrefix + ":races"
}

// CatalogRaceKey one race
func CatalogRaceKey(id uint) string {
	return fmt.Sprintf("%s:race:%d", catalogKeyPrefix, id)
}

// CatalogClassesKey all classes
func CatalogClassesKey() string {
	return catalogKeyPrefix + ":classes"
}

// CatalogClassKey one class with its skills
func CatalogClassKey(id uint) string {
	return fmt.Sprintf("%s:class:%d", catalogKeyPrefix, id)
}

// CatalogSkillsKey skills, optionally scoped to a class and level
func CatalogSkillsKey(classID uint, maxLevel int) string {
	return fmt.Sprintf("%s:skills:%d:%d", catalogKeyPrefix, classID, maxLevel)
}

// Remember returns the cached value under key or loads, stores and returns it.
// Cache errors fall through to load.
func Remember[T any](ctx context.Context, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	if found, err := GetJSON(ctx, key, &cached); err == nil && found {
		return cached, nil
	}
	value, err := load()
	if err != nil {
		return value, err
	}
	_ = SetJSON(ctx, key, value, ttl)
	return value, nil
}
