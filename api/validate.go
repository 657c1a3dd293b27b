package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"

	"github.com/codesumanr/portfolio-api/internal/models"
)

// Per-resource required-field declarations. Creates are validated against
// these instead of hand-rolled presence checks, so the contract lives in
// one place per resource.
var (
	skillCreateSchema = mustSchema(`{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"level": {"type": "string"}
		}
	}`)

	projectCreateSchema = mustSchema(`{
		"type": "object",
		"required": ["name", "description"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"description": {"type": "string", "minLength": 1}
		}
	}`)

	experienceCreateSchema = mustSchema(`{
		"type": "object",
		"required": ["title", "company", "location", "startDate", "endDate", "description"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"company": {"type": "string", "minLength": 1},
			"location": {"type": "string", "minLength": 1},
			"startDate": {"type": "string", "minLength": 1},
			"endDate": {"type": "string", "minLength": 1},
			"description": {"type": "string", "minLength": 1}
		}
	}`)
)

func mustSchema(src string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		panic(fmt.Sprintf("invalid resource schema: %v", err))
	}
	return rs
}

// validateDoc reports whether doc satisfies the resource's create schema.
func validateDoc(ctx context.Context, rs *jsonschema.Schema, doc map[string]any) (bool, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return false, err
	}

	keyErrs, err := rs.ValidateBytes(ctx, b)
	if err != nil {
		return false, err
	}
	return len(keyErrs) == 0, nil
}

// normalizeList rewrites a free-text list field in place: a comma-separated
// string or an array of strings becomes a trimmed StringList; anything else
// is dropped from the document.
func normalizeList(fields map[string]any, key string) {
	v, ok := fields[key]
	if !ok {
		return
	}

	switch t := v.(type) {
	case string:
		fields[key] = models.SplitList(t)
	case []any:
		out := models.StringList{}
		for _, item := range t {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		fields[key] = out
	default:
		delete(fields, key)
	}
}
