package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/memora-app/memora-api/internal/models"
	"github.com/memora-app/memora-api/internal/testutil"
)

func TestDBHandlerStoresErrorsOnly(t *testing.T) {
	db := testutil.DB(t)
	h := NewDBHandler(db)
	defer h.Stop()

	logger := slog.New(h).With("request_id", "req-1")
	logger.Info("ignored")
	logger.Error("boom",
		"user_id", "42",
		"method", "POST",
		"path", "/api/decks",
		"error", "disk full",
		"deck_id", "abc",
	)
	h.Flush()

	var logs []models.SystemLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("len(logs) = %d, want 1", len(logs))
	}

	got := logs[0]
	if got.Message != "boom" || got.Level != "ERROR" || got.RequestID != "req-1" {
		t.Errorf("log = %+v", got)
	}
	if got.UserID == nil || *got.UserID != "42" || got.Method != "POST" || got.Path != "/api/decks" || got.Error != "disk full" {
		t.Errorf("log fields = %+v", got)
	}
	if !bytes.Contains(got.Extra, []byte(`"deck_id":"abc"`)) {
		t.Errorf("Extra = %s", got.Extra)
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	info := slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo})
	errOnly := slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError})

	logger := slog.New(NewMultiHandler(info, errOnly))
	logger.Info("hello")
	logger.Error("bad")

	if !bytes.Contains(a.Bytes(), []byte("hello")) || !bytes.Contains(a.Bytes(), []byte("bad")) {
		t.Errorf("info handler output = %s", a.String())
	}
	if bytes.Contains(b.Bytes(), []byte("hello")) || !bytes.Contains(b.Bytes(), []byte("bad")) {
		t.Errorf("error handler output = %s", b.String())
	}
	if !NewMultiHandler(info).Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled(info) = false")
	}
}

func TestCleanupRun(t *testing.T) {
	db := testutil.DB(t)
	now := time.Now().UTC()

	for _, ts := range []time.Time{now.AddDate(0, 0, -40), now.AddDate(0, 0, -31), now.AddDate(0, 0, -1)} {
		if err := db.Create(&models.SystemLog{Timestamp: ts, Level: "ERROR", Message: "x"}).Error; err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if n := NewCleanup(db, 30).Run(); n != 2 {
		t.Errorf("Run() deleted %d, want 2", n)
	}

	var left int64
	db.Model(&models.SystemLog{}).Count(&left)
	if left != 1 {
		t.Errorf("remaining = %d, want 1", left)
	}
}
