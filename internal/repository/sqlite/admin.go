package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/codesumanr/portfolio-api/internal/models"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

func (r *Repo) CreateAdmin(ctx context.Context, a *models.Admin) error {
	if a == nil {
		return fmt.Errorf("admin is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO admins (username, password_hash, created) VALUES (?, ?, ?)`, a.Username, a.PasswordHash, now())
	if isUniqueViolation(err) {
		return repository.ErrConflict
	}
	return err
}

func (r *Repo) GetAdmin(ctx context.Context, username string) (*models.Admin, error) {
	row := r.conn.QueryRow(ctx, `SELECT username, password_hash, created FROM admins WHERE username = ?`, username)
	var a models.Admin
	if err := row.Scan(&a.Username, &a.PasswordHash, &a.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &a, nil
}
