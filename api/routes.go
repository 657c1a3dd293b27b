package api

import (
	"github.com/gorilla/mux"

	"github.com/codesumanr/portfolio-api/internal/config"
	"github.com/codesumanr/portfolio-api/internal/db"
	"github.com/codesumanr/portfolio-api/internal/models"
	"github.com/codesumanr/portfolio-api/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, conn *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddlewareWithOrigins(cfg.AllowedOrigins))
	r.Use(RecoveryMiddleware)

	// Repositories: one credential store plus a document collection per
	// resource kind. Skills enforce name uniqueness and list sorted by it.
	repo := sqlite.New(conn, logger)
	skills := sqlite.NewCollection[models.Skill](conn, "skills", "name", true)
	projects := sqlite.NewCollection[models.Project](conn, "projects", "", false)
	experiences := sqlite.NewCollection[models.Experience](conn, "experiences", "", false)

	// Create handlers
	systemHandler := &SystemHandler{}
	portfolioHandler := &PortfolioHandler{}
	adminHandler := NewAdminHandler(repo, cfg.JWTSecret, cfg.PasswordSalt, cfg.TokenDuration)
	skillsHandler := NewSkillsHandler(skills, mustLoadSeed[models.Skill]("skills.json"))
	projectsHandler := NewProjectsHandler(projects, mustLoadSeed[models.Project]("projects.json"))
	experienceHandler := NewExperienceHandler(experiences, mustLoadSeed[models.Experience]("experiences.json"))

	// Open endpoints
	r.HandleFunc("/", portfolioHandler.Root).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/portfolio-info", portfolioHandler.Info).Methods("GET")
	r.HandleFunc("/admin/login", adminHandler.Login).Methods("POST")
	r.HandleFunc("/admin/register", adminHandler.Register).Methods("POST")
	r.HandleFunc("/admin/logout", adminHandler.Logout).Methods("GET")
	r.HandleFunc("/skills/list", skillsHandler.List).Methods("GET")
	r.HandleFunc("/projects/list", projectsHandler.List).Methods("GET")
	r.HandleFunc("/experience/list", experienceHandler.List).Methods("GET")

	// Mutating routes sit behind the admin guard
	guard := AdminAuthMiddleware(cfg.JWTSecret)

	skillsAdmin := r.PathPrefix("/skills").Subrouter()
	skillsAdmin.Use(guard)
	skillsAdmin.HandleFunc("/add", skillsHandler.Add).Methods("POST")
	skillsAdmin.HandleFunc("/{id}", skillsHandler.Update).Methods("PUT")
	skillsAdmin.HandleFunc("/{id}", skillsHandler.Delete).Methods("DELETE")

	projectsAdmin := r.PathPrefix("/projects").Subrouter()
	projectsAdmin.Use(guard)
	projectsAdmin.HandleFunc("/add", projectsHandler.Add).Methods("POST")
	projectsAdmin.HandleFunc("/update", projectsHandler.Update).Methods("PUT")
	projectsAdmin.HandleFunc("/delete", projectsHandler.Delete).Methods("DELETE")

	experienceAdmin := r.PathPrefix("/experience").Subrouter()
	experienceAdmin.Use(guard)
	experienceAdmin.HandleFunc("/add", experienceHandler.Add).Methods("POST")
	experienceAdmin.HandleFunc("/update", experienceHandler.Update).Methods("PUT")
	experienceAdmin.HandleFunc("/delete", experienceHandler.Delete).Methods("DELETE")

	return r
}
