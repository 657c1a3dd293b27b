package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	dbfs "github.com/codesumanr/portfolio-api/db"
	"github.com/codesumanr/portfolio-api/internal/db"
	"github.com/codesumanr/portfolio-api/internal/models"
	"github.com/codesumanr/portfolio-api/internal/repository/sqlite"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

// setupDB opens a fresh file-backed database with the full schema applied.
func setupDB(t *testing.T) *db.DB {
	t.Helper()
	ctx := context.Background()

	conn, err := db.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func TestAdminRepo(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.New(setupDB(t), nil)

	admin := &models.Admin{Username: "alice", PasswordHash: "hash-a"}
	if err := repo.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetAdmin(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Username != "alice" || got.PasswordHash != "hash-a" {
		t.Fatalf("unexpected admin: %+v", got)
	}
	if got.Created == 0 {
		t.Fatalf("created timestamp not set")
	}

	if err := repo.CreateAdmin(ctx, &models.Admin{Username: "alice", PasswordHash: "other"}); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("duplicate create: expected ErrConflict, got %v", err)
	}

	missing, err := repo.GetAdmin(ctx, "ghost")
	if err != nil || missing != nil {
		t.Fatalf("unknown admin: expected (nil, nil), got (%+v, %v)", missing, err)
	}

	if err := repo.CreateAdmin(ctx, nil); err == nil {
		t.Fatalf("nil admin accepted")
	}
}
