// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"io"
	"testing"

	"blog-server/confs"
	"blog-server/db"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
)

// New returns a migrated in-memory sqlite database that is closed when t ends.
// The pool is pinned to a single connection because every sqlite :memory:
// connection is its own database.
func New(t testing.TB) db.Database {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &confs.Config{DBMaxIdleConns: 1, DBMaxOpenConns: 1, DBLogLevel: "silent"}
	database, err := db.Open(sqlite.Open(":memory:"), cfg, log)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
