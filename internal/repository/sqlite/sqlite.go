package sqlite

import (
	"os"
	"strings"
	"time"

	"log/slog"

	"github.com/codesumanr/portfolio-api/internal/db"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

// Repo implements the credential repository on the internal DB wrapper.
// Resource collections are served separately by Collection.
type Repo struct {
	conn   *db.DB
	logger *slog.Logger
}

var _ repository.AdminRepo = (*Repo)(nil)

func New(conn *db.DB, logger *slog.Logger) *Repo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return &Repo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// isUniqueViolation classifies the driver's duplicate-key signal. The
// modernc driver surfaces constraint failures as formatted messages only,
// so the match is textual.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
