package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/codesumanr/portfolio-api/internal/models"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

type SkillsHandler struct {
	skills repository.Collection[models.Skill]
	seed   []models.Skill
}

func NewSkillsHandler(skills repository.Collection[models.Skill], seed []models.Skill) *SkillsHandler {
	return &SkillsHandler{skills: skills, seed: seed}
}

func (h *SkillsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skills, err := h.skills.List(ctx)
	if err != nil {
		logger.Error("list skills", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error fetching skills")
		return
	}

	if len(skills) == 0 && len(h.seed) > 0 {
		if err := h.skills.Reset(ctx, h.seed); err != nil {
			logger.Error("seed skills", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "Error fetching skills")
			return
		}
		if skills, err = h.skills.List(ctx); err != nil {
			logger.Error("list skills", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "Error fetching skills")
			return
		}
	}

	if skills == nil {
		skills = []models.Skill{}
	}
	writeJSON(w, map[string]any{"success": true, "count": len(skills), "skills": skills}, http.StatusOK)
}

// Pointer fields distinguish "absent" from "supplied empty" so updates
// touch only what the caller sent.
type skillRequest struct {
	Name  *string `json:"name"`
	Level *string `json:"level"`
}

func (h *SkillsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	ctx := r.Context()

	skill := models.Skill{}
	doc := map[string]any{}
	if req.Name != nil {
		skill.Name = strings.TrimSpace(*req.Name)
		doc["name"] = skill.Name
	}
	if req.Level != nil {
		skill.Level = strings.TrimSpace(*req.Level)
		doc["level"] = skill.Level
	}

	valid, err := validateDoc(ctx, skillCreateSchema, doc)
	if err != nil {
		logger.Error("validate skill", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error adding skill")
		return
	}
	if !valid {
		writeError(w, http.StatusBadRequest, "Missing required field: name")
		return
	}

	created, err := h.skills.Insert(ctx, skill)
	if errors.Is(err, repository.ErrConflict) {
		writeError(w, http.StatusConflict, fmt.Sprintf("Skill with name %q already exists.", skill.Name))
		return
	}
	if err != nil {
		logger.Error("add skill", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error adding skill")
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Skill added successfully", "skill": created}, http.StatusCreated)
}

func (h *SkillsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	// Only explicitly supplied fields make it into the patch; an empty
	// patch returns the current document unchanged.
	patch := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "Missing required field: name")
			return
		}
		patch["name"] = name
	}
	if req.Level != nil {
		patch["level"] = strings.TrimSpace(*req.Level)
	}

	skill, err := h.skills.Update(r.Context(), id, patch)
	if errors.Is(err, repository.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "Invalid Skill ID format")
		return
	}
	if errors.Is(err, repository.ErrConflict) {
		writeError(w, http.StatusConflict, fmt.Sprintf("Another skill with the name %q already exists.", patch["name"]))
		return
	}
	if err != nil {
		logger.Error("update skill", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error updating skill")
		return
	}
	if skill == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Skill with ID %s not found", id))
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Skill updated successfully", "skill": skill}, http.StatusOK)
}

func (h *SkillsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.skills.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "Invalid Skill ID format")
		return
	}
	if err != nil {
		logger.Error("delete skill", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error deleting skill")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Skill with ID %s not found", id))
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": fmt.Sprintf("Skill with ID %s deleted successfully", id)}, http.StatusOK)
}
