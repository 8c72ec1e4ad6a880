package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/config"
	"github.com/memora-app/memora-api/internal/database"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Config returns a configuration backed by a private in-memory SQLite
// database with rate limiting disabled.
func Config(tb testing.TB) *config.Config {
	tb.Helper()
	return &config.Config{
		DBDriver:      "sqlite",
		SQLitePath:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DefaultUserID: "1",
		CORSOrigins:   "*",
		BodyLimitMB:   4,
	}
}

// DB opens and migrates a fresh in-memory database that lives for the
// duration of the test.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	return Open(tb, Config(tb))
}

func Open(tb testing.TB, cfg *config.Config) *gorm.DB {
	tb.Helper()

	db, err := database.Connect(cfg)
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	db.Logger = gormLogger.Default.LogMode(gormLogger.Silent)

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	tb.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
