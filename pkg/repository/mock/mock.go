package mock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/codesumanr/portfolio-api/internal/models"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

// Test helpers and mocks.

type AdminRepo struct {
	Stored    *models.Admin
	CreateErr error
	GetErr    error
}

func (m *AdminRepo) CreateAdmin(ctx context.Context, a *models.Admin) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.Stored != nil && m.Stored.Username == a.Username {
		return repository.ErrConflict
	}
	m.Stored = &models.Admin{Username: a.Username, PasswordHash: a.PasswordHash}
	return nil
}

func (m *AdminRepo) GetAdmin(ctx context.Context, username string) (*models.Admin, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Username == username {
		return m.Stored, nil
	}
	return nil, nil
}

// Collection is an in-memory repository.Collection backed by a slice.
// Patch merging goes through a JSON round-trip, matching the semantics of
// the SQLite json_patch implementation for flat documents.
type Collection[T any] struct {
	Docs []T

	ListErr   error
	InsertErr error
	UpdateErr error
	DeleteErr error
	ResetErr  error

	ResetWith []T
	Resets    int
}

func (m *Collection[T]) List(ctx context.Context) ([]T, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Docs, nil
}

func (m *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	for i := range m.Docs {
		if docID(m.Docs[i]) == id {
			return &m.Docs[i], nil
		}
	}
	return nil, nil
}

func (m *Collection[T]) Insert(ctx context.Context, doc T) (*T, error) {
	if m.InsertErr != nil {
		return nil, m.InsertErr
	}
	stored, err := withID(doc, uuid.NewString())
	if err != nil {
		return nil, err
	}
	m.Docs = append(m.Docs, stored)
	return &stored, nil
}

func (m *Collection[T]) Update(ctx context.Context, id string, patch map[string]any) (*T, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	if err := uuid.Validate(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	for i := range m.Docs {
		if docID(m.Docs[i]) != id {
			continue
		}
		merged, err := mergePatch(m.Docs[i], patch)
		if err != nil {
			return nil, err
		}
		m.Docs[i] = merged
		return &m.Docs[i], nil
	}
	return nil, nil
}

func (m *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteErr != nil {
		return false, m.DeleteErr
	}
	if err := uuid.Validate(id); err != nil {
		return false, repository.ErrInvalidID
	}
	for i := range m.Docs {
		if docID(m.Docs[i]) == id {
			m.Docs = append(m.Docs[:i], m.Docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *Collection[T]) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Docs)), nil
}

func (m *Collection[T]) Reset(ctx context.Context, docs []T) error {
	if m.ResetErr != nil {
		return m.ResetErr
	}
	m.Resets++
	if m.ResetWith != nil {
		docs = m.ResetWith
	}
	m.Docs = nil
	for _, d := range docs {
		if _, err := m.Insert(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func docID(doc any) string {
	b, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return ""
	}
	id, _ := m["id"].(string)
	return id
}

func withID[T any](doc T, id string) (T, error) {
	var out T
	b, err := json.Marshal(doc)
	if err != nil {
		return out, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return out, err
	}
	m["id"] = id
	b, err = json.Marshal(m)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("rebuild document: %w", err)
	}
	return out, nil
}

func mergePatch[T any](doc T, patch map[string]any) (T, error) {
	var out T
	b, err := json.Marshal(doc)
	if err != nil {
		return out, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return out, err
	}
	for k, v := range patch {
		m[k] = v
	}
	b, err = json.Marshal(m)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("apply patch: %w", err)
	}
	return out, nil
}
