package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/codesumanr/portfolio-api/internal/db"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

// Collection is the single CRUD implementation shared by all resource
// kinds. Documents live in one table keyed by collection name; each is a
// JSON body addressed by a generated uuid. uniqueField, when set, names a
// top-level string field whose value is mirrored into the indexed
// unique_key column so the store enforces uniqueness. sortByKey switches
// List from insertion order to unique-key order.
type Collection[T any] struct {
	conn        *db.DB
	name        string
	uniqueField string
	sortByKey   bool
}

var _ repository.Collection[struct{}] = (*Collection[struct{}])(nil)

func NewCollection[T any](conn *db.DB, name, uniqueField string, sortByKey bool) *Collection[T] {
	return &Collection[T]{conn: conn, name: name, uniqueField: uniqueField, sortByKey: sortByKey}
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	q := `SELECT body FROM documents WHERE collection = ? ORDER BY rowid ASC`
	if c.sortByKey {
		q = `SELECT body FROM documents WHERE collection = ? ORDER BY unique_key ASC`
	}

	rows, err := c.conn.QueryRows(ctx, q, c.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var doc T
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", c.name, err)
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, repository.ErrInvalidID
	}

	row := c.conn.QueryRow(ctx, `SELECT body FROM documents WHERE collection = ? AND id = ?`, c.name, id)
	var body string
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	var doc T
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("decode %s document: %w", c.name, err)
	}
	return &doc, nil
}

func (c *Collection[T]) Insert(ctx context.Context, doc T) (*T, error) {
	m, err := toMap(doc)
	if err != nil {
		return nil, err
	}
	m["id"] = uuid.NewString()

	body, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	var key any
	if c.uniqueField != "" {
		if s, ok := m[c.uniqueField].(string); ok && s != "" {
			key = s
		}
	}

	ts := now()
	_, err = c.conn.Exec(ctx, `INSERT INTO documents (id, collection, unique_key, body, created, updated) VALUES (?, ?, ?, ?, ?, ?)`,
		m["id"], c.name, key, string(body), ts, ts)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrConflict
		}

		return nil, err
	}

	var stored T
	if err := json.Unmarshal(body, &stored); err != nil {
		return nil, fmt.Errorf("decode %s document: %w", c.name, err)
	}
	return &stored, nil
}

// Update merges only the fields present in patch into the stored body via
// json_patch, a single atomic statement. Returns (nil, nil) when id does
// not match a document; an empty patch returns the current document. The
// caller's map is not modified.
func (c *Collection[T]) Update(ctx context.Context, id string, patch map[string]any) (*T, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, repository.ErrInvalidID
	}

	fields := make(map[string]any, len(patch))
	for k, v := range patch {
		if k == "id" {
			continue
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return c.Get(ctx, id)
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	var res sql.Result
	if c.uniqueField != "" {
		res, err = c.conn.Exec(ctx,
			`UPDATE documents SET body = json_patch(body, ?1), unique_key = COALESCE(json_extract(?1, ?2), unique_key), updated = ?3 WHERE collection = ?4 AND id = ?5`,
			string(b), "$."+c.uniqueField, now(), c.name, id)
	} else {
		res, err = c.conn.Exec(ctx,
			`UPDATE documents SET body = json_patch(body, ?), updated = ? WHERE collection = ? AND id = ?`,
			string(b), now(), c.name, id)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrConflict
		}

		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	return c.Get(ctx, id)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	if err := uuid.Validate(id); err != nil {
		return false, repository.ErrInvalidID
	}

	res, err := c.conn.Exec(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, c.name, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	row := c.conn.QueryRow(ctx, `SELECT COUNT(1) FROM documents WHERE collection = ?`, c.name)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Reset clears the collection and inserts docs. Used by the
// seed-on-empty-list routine; deliberately unguarded against concurrent
// first-list calls, matching the store's documented behavior.
func (c *Collection[T]) Reset(ctx context.Context, docs []T) error {
	if _, err := c.conn.Exec(ctx, `DELETE FROM documents WHERE collection = ?`, c.name); err != nil {
		return err
	}

	for _, d := range docs {
		if _, err := c.Insert(ctx, d); err != nil {
			return fmt.Errorf("seed %s: %w", c.name, err)
		}
	}
	return nil
}

func toMap(doc any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
