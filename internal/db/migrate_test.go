package db_test

import (
	"context"
	"path/filepath"
	"testing"

	dbfs "github.com/codesumanr/portfolio-api/db"
	"github.com/codesumanr/portfolio-api/internal/db"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()

	conn, err := db.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// schema is in place
	for _, table := range []string{"admins", "documents", "schema_migrations"} {
		var name string
		row := conn.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	var applied int
	if err := conn.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied == 0 {
		t.Fatalf("no migrations recorded")
	}

	// re-running must be a no-op
	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	var again int
	if err := conn.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&again); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if again != applied {
		t.Fatalf("re-run applied migrations twice: %d -> %d", applied, again)
	}
}

func TestNewBadPath(t *testing.T) {
	// a directory that does not exist fails the initial ping
	if _, err := db.New(context.Background(), filepath.Join(t.TempDir(), "missing", "deep", "test.db")); err == nil {
		t.Fatalf("expected error for unreachable database path")
	}
}
