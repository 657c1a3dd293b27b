package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/codesumanr/portfolio-api/api"
	dbfs "github.com/codesumanr/portfolio-api/db"
	"github.com/codesumanr/portfolio-api/internal/config"
	"github.com/codesumanr/portfolio-api/internal/db"
	"github.com/codesumanr/portfolio-api/internal/models"
)

// setupServer wires the real router against a migrated temp database.
func setupServer(t *testing.T) (*httptest.Server, *config.Config) {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{
		Addr:           ":0",
		DatabasePath:   filepath.Join(t.TempDir(), "test.db"),
		JWTSecret:      "routes-secret",
		PasswordSalt:   "routes-salt",
		TokenDuration:  time.Hour,
		APITimeout:     15 * time.Second,
		AllowedOrigins: []string{"http://localhost:5173"},
		Environment:    "test",
	}

	conn, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	srv := httptest.NewServer(api.SetupRoutes(cfg, "test", "now", conn))
	t.Cleanup(srv.Close)
	return srv, cfg
}

func TestRoutesEndToEnd(t *testing.T) {
	srv, _ := setupServer(t)
	client := srv.Client()

	register := func(user, pass string) *http.Response {
		t.Helper()
		b, _ := json.Marshal(map[string]string{"user": user, "pass": pass})
		res, err := client.Post(srv.URL+"/admin/register", "application/json", bytes.NewReader(b))
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	// open endpoints answer without a token
	res, err := client.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health: got %d", res.StatusCode)
	}

	// first list seeds the packaged skills
	res, err = client.Get(srv.URL + "/skills/list")
	if err != nil {
		t.Fatal(err)
	}
	var skillList struct {
		Count  int            `json:"count"`
		Skills []models.Skill `json:"skills"`
	}
	if err := json.NewDecoder(res.Body).Decode(&skillList); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()
	// the packaged fixture ships exactly 11 skills
	if skillList.Count != 11 || len(skillList.Skills) != 11 {
		t.Fatalf("expected 11 seeded skills on first list, got count=%d len=%d", skillList.Count, len(skillList.Skills))
	}

	// mutations without a token bounce at the guard
	res, err = client.Post(srv.URL+"/skills/add", "application/json", bytes.NewReader([]byte(`{"name":"Zig"}`)))
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unguarded add: got %d", res.StatusCode)
	}

	// register, log in, pick up the bearer token
	res = register("admin", "hunter2")
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("register: got %d", res.StatusCode)
	}
	b, _ := json.Marshal(map[string]string{"user": "admin", "pass": "hunter2"})
	res, err = client.Post(srv.URL+"/admin/login", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	res.Body.Close()
	if login.Token == "" {
		t.Fatalf("login returned no token")
	}

	authed := func(method, url string, body []byte) *http.Response {
		t.Helper()
		var req *http.Request
		var err error
		if body != nil {
			req, err = http.NewRequest(method, url, bytes.NewReader(body))
		} else {
			req, err = http.NewRequest(method, url, nil)
		}
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+login.Token)
		res, err := client.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	// authorized add lands in the store
	res = authed(http.MethodPost, srv.URL+"/skills/add", []byte(`{"name":"Zig","level":"Beginner"}`))
	var added struct {
		Skill models.Skill `json:"skill"`
	}
	if err := json.NewDecoder(res.Body).Decode(&added); err != nil {
		t.Fatalf("decode add: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusCreated || added.Skill.ID == "" {
		t.Fatalf("add: got %d skill=%+v", res.StatusCode, added.Skill)
	}

	// path-parameter update and delete round-trip
	res = authed(http.MethodPut, srv.URL+"/skills/"+added.Skill.ID, []byte(`{"level":"Advanced"}`))
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update: got %d", res.StatusCode)
	}
	res = authed(http.MethodDelete, srv.URL+"/skills/"+added.Skill.ID, nil)
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete: got %d", res.StatusCode)
	}
	res = authed(http.MethodDelete, srv.URL+"/skills/"+added.Skill.ID, nil)
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("repeat delete: got %d", res.StatusCode)
	}

	// projects use the query-parameter route shape
	res = authed(http.MethodPost, srv.URL+"/projects/add", []byte(`{"name":"Blog","description":"A blog"}`))
	var proj struct {
		Project models.Project `json:"project"`
	}
	if err := json.NewDecoder(res.Body).Decode(&proj); err != nil {
		t.Fatalf("decode project add: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("project add: got %d", res.StatusCode)
	}
	res = authed(http.MethodDelete, srv.URL+"/projects/delete?projId="+proj.Project.ID, nil)
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("project delete: got %d", res.StatusCode)
	}
}

func TestRoutesCORSHeaders(t *testing.T) {
	srv, cfg := setupServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/skills/list", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", cfg.AllowedOrigins[0])
	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("preflight: got %d", res.StatusCode)
	}
	if got := res.Header.Get("Access-Control-Allow-Origin"); got != cfg.AllowedOrigins[0] {
		t.Fatalf("Allow-Origin = %q", got)
	}
}
