package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/codesumanr/portfolio-api/internal/models"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

type ExperienceHandler struct {
	experiences repository.Collection[models.Experience]
	seed        []models.Experience
}

func NewExperienceHandler(experiences repository.Collection[models.Experience], seed []models.Experience) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences, seed: seed}
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	experiences, err := h.experiences.List(ctx)
	if err != nil {
		logger.Error("list experiences", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error fetching experiences")
		return
	}

	if len(experiences) == 0 && len(h.seed) > 0 {
		if err := h.experiences.Reset(ctx, h.seed); err != nil {
			logger.Error("seed experiences", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "Error fetching experiences")
			return
		}
		if experiences, err = h.experiences.List(ctx); err != nil {
			logger.Error("list experiences", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "Error fetching experiences")
			return
		}
	}

	if experiences == nil {
		experiences = []models.Experience{}
	}
	writeJSON(w, map[string]any{"success": true, "count": len(experiences), "data": experiences}, http.StatusOK)
}

func (h *ExperienceHandler) Add(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	ctx := r.Context()

	valid, err := validateDoc(ctx, experienceCreateSchema, fields)
	if err != nil {
		logger.Error("validate experience", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error adding experience")
		return
	}
	if !valid {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	normalizeList(fields, "skills")
	if _, ok := fields["skills"]; !ok {
		fields["skills"] = models.StringList{}
	}
	delete(fields, "expId")

	var experience models.Experience
	if err := remarshal(fields, &experience); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	created, err := h.experiences.Insert(ctx, experience)
	if err != nil {
		logger.Error("add experience", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error adding experience")
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Experience added", "data": created}, http.StatusCreated)
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	// the target id travels in the body, with the query as fallback
	expID, _ := fields["expId"].(string)
	if expID == "" {
		expID = r.URL.Query().Get("expId")
	}
	if expID == "" {
		writeError(w, http.StatusBadRequest, "Experience ID (expId) is required")
		return
	}

	patch := map[string]any{}
	for _, k := range []string{"title", "company", "location", "startDate", "endDate", "description"} {
		if v, ok := fields[k].(string); ok {
			patch[k] = v
		}
	}
	if _, ok := fields["skills"]; ok {
		normalizeList(fields, "skills")
		if v, ok := fields["skills"]; ok {
			patch["skills"] = v
		}
	}

	experience, err := h.experiences.Update(r.Context(), expID, patch)
	if errors.Is(err, repository.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "Invalid Experience ID format")
		return
	}
	if err != nil {
		logger.Error("update experience", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error updating experience")
		return
	}
	if experience == nil {
		writeError(w, http.StatusNotFound, "Experience not found")
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Experience updated successfully", "data": experience}, http.StatusOK)
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	expID := r.URL.Query().Get("expId")
	if expID == "" {
		writeError(w, http.StatusBadRequest, "Experience ID (expId) is required in query string")
		return
	}

	deleted, err := h.experiences.Delete(r.Context(), expID)
	if errors.Is(err, repository.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "Invalid Experience ID format")
		return
	}
	if err != nil {
		logger.Error("delete experience", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error deleting experience")
		return
	}
	if !deleted {
		// mirrors project delete: absent ids still report success
		logger.Warn("experience not found for deletion", slog.String("id", expID))
	}

	writeJSON(w, map[string]any{"success": true, "message": "Experience deleted"}, http.StatusOK)
}
