package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/rpg-companion/api/internal/config"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if Enabled() || Client() != nil {
		t.Fatalf("cache should be disabled")
	}
	ctx := context.Background()
	var dest []string
	found, err := GetJSON(ctx, CatalogRacesKey(), &dest)
	if err != nil || found {
		t.Fatalf("disabled get want miss got found=%v err=%v", found, err)
	}
	if err := SetJSON(ctx, CatalogRacesKey(), []string{"x"}, CatalogTTL); err != nil {
		t.Fatalf("disabled set failed: %v", err)
	}
	if err := Del(ctx, CatalogRacesKey()); err != nil {
		t.Fatalf("disabled del failed: %v", err)
	}
	if err := Ping(ctx); err != nil {
		t.Fatalf("disabled ping failed: %v", err)
	}
}

func TestRememberLoadsOnMiss(t *testing.T) {
	_ = InitRedis(nil)
	calls := 0
	value, err := Remember(context.Background(), CatalogClassesKey(), CatalogTTL, func() ([]int, error) {
		calls++
		return []int{1, 2}, nil
	})
	if err != nil {
		t.Fatalf("remember failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("loader calls want 1 got %d", calls)
	}
	if len(value) != 2 {
		t.Fatalf("unexpected value: %v", value)
	}

	wantErr := errors.New("boom")
	if _, err := Remember(context.Background(), CatalogClassesKey(), CatalogTTL, func() ([]int, error) {
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("loader error should propagate, got %v", err)
	}
}

func TestCatalogKeys(t *testing.T) {
	if got := BuildKey(CatalogRaceKey(3)); got != redisPrefix+":catalog:race:3" {
		t.Fatalf("race key mismatch: %s", got)
	}
	if got := CatalogSkillsKey(2, 5); got != "catalog:skills:2:5" {
		t.Fatalf("skills key mismatch: %s", got)
	}
	if got := BuildKey(" "); got != redisPrefix {
		t.Fatalf("empty key should map to prefix, got %s", got)
	}
}

func TestUnreachableRedisStaysDisabled(t *testing.T) {
	err := InitRedis(&config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1, Prefix: "rpg-test"})
	if err == nil {
		t.Fatalf("expected ping error for unreachable redis")
	}
	if Enabled() || Client() != nil {
		t.Fatalf("cache should stay disabled when redis is unreachable")
	}
	t.Cleanup(func() { _ = InitRedis(nil) })
}
