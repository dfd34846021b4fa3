package service

import (
	"testing"
	"time"

	"github.com/rpg-companion/api/internal/constants"
	"github.com/rpg-companion/api/internal/repository"
)

func TestLoginAttemptServiceRecordNormalizes(t *testing.T) {
	db := setupServiceTestDB(t, "login_attempt_service")
	svc := NewLoginAttemptService(repository.NewLoginAttemptRepository(db))

	if err := svc.Record(RecordLoginInput{UserID: "u-1", Identifier: " ana99 ", Status: "SUCCESS", FailReason: "ignored"}); err != nil {
		t.Fatalf("record success failed: %v", err)
	}
	if err := svc.Record(RecordLoginInput{UserID: "u-1", Identifier: "ana99", Status: "weird"}); err != nil {
		t.Fatalf("record failure failed: %v", err)
	}

	rows, total, err := svc.ListByUser("u-1", 0, 0)
	if err != nil || total != 2 {
		t.Fatalf("list failed: total=%d err=%v", total, err)
	}
	failed, success := rows[0], rows[1]
	if success.Status != constants.LoginLogStatusSuccess || success.FailReason != "" || success.Identifier != "ana99" {
		t.Fatalf("success row not normalized: %+v", success)
	}
	if success.LoginSource != constants.LoginLogSourceWeb {
		t.Fatalf("source should default to web")
	}
	if failed.Status != constants.LoginLogStatusFailed || failed.FailReason != constants.LoginLogFailReasonInternalError {
		t.Fatalf("failed row not normalized: %+v", failed)
	}

	empty, total, err := svc.ListByUser("", 1, 20)
	if err != nil || total != 0 || len(empty) != 0 {
		t.Fatalf("blank user should list nothing")
	}

	removed, err := svc.PurgeOlderThan(time.Hour, time.Now().UTC().Add(2*time.Hour))
	if err != nil || removed != 2 {
		t.Fatalf("purge want 2 got %d err=%v", removed, err)
	}
	if removed, _ := svc.PurgeOlderThan(0, time.Now()); removed != 0 {
		t.Fatalf("zero retention keeps everything")
	}
}

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(0, 500)
	if page != 1 || size != 100 {
		t.Fatalf("want 1/100 got %d/%d", page, size)
	}
	page, size = normalizePage(3, 0)
	if page != 3 || size != 20 {
		t.Fatalf("want 3/20 got %d/%d", page, size)
	}
}
