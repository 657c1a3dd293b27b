package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"log/slog"

	"github.com/codesumanr/portfolio-api/internal/models"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

// project image uploads are buffered in memory
const maxUploadBytes = 10 << 20

type ProjectsHandler struct {
	projects repository.Collection[models.Project]
	seed     []models.Project
}

func NewProjectsHandler(projects repository.Collection[models.Project], seed []models.Project) *ProjectsHandler {
	return &ProjectsHandler{projects: projects, seed: seed}
}

func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.projects.List(ctx)
	if err != nil {
		logger.Error("list projects", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error fetching projects")
		return
	}

	if len(projects) == 0 && len(h.seed) > 0 {
		if err := h.projects.Reset(ctx, h.seed); err != nil {
			logger.Error("seed projects", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "Error fetching projects")
			return
		}
		if projects, err = h.projects.List(ctx); err != nil {
			logger.Error("list projects", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "Error fetching projects")
			return
		}
	}

	if projects == nil {
		projects = []models.Project{}
	}
	writeJSON(w, map[string]any{"success": true, "count": len(projects), "projects": projects}, http.StatusOK)
}

// projectPayload extracts the supplied fields from either a JSON body or a
// multipart form. Only keys present in the request appear in the map; image
// bytes, when uploaded, are returned separately with their declared MIME
// type.
func projectPayload(r *http.Request) (map[string]any, []byte, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, nil, "", err
		}

		fields := map[string]any{}
		for _, k := range []string{"name", "description", "projectUrl", "githubUrl", "techStack"} {
			if vs, ok := r.MultipartForm.Value[k]; ok && len(vs) > 0 {
				fields[k] = vs[0]
			}
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			return fields, nil, "", nil
		}
		defer file.Close()

		image, err := io.ReadAll(file)
		if err != nil {
			return nil, nil, "", err
		}
		return fields, image, header.Header.Get("Content-Type"), nil
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, nil, "", err
	}
	return fields, nil, "", nil
}

func (h *ProjectsHandler) Add(w http.ResponseWriter, r *http.Request) {
	fields, image, imageType, err := projectPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	ctx := r.Context()

	valid, err := validateDoc(ctx, projectCreateSchema, fields)
	if err != nil {
		logger.Error("validate project", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error adding project")
		return
	}
	if !valid {
		writeError(w, http.StatusBadRequest, "Missing required fields (name, description)")
		return
	}

	normalizeList(fields, "techStack")
	if _, ok := fields["techStack"]; !ok {
		fields["techStack"] = models.StringList{}
	}

	var project models.Project
	if err := remarshal(fields, &project); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if image != nil {
		project.Image = image
		project.ImageType = imageType
	}

	created, err := h.projects.Insert(ctx, project)
	if err != nil {
		logger.Error("add project", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error adding project")
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Project added successfully", "project": created}, http.StatusCreated)
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	projID := r.URL.Query().Get("projId")
	if projID == "" {
		writeError(w, http.StatusBadRequest, "Project ID (projId) is required in query string")
		return
	}

	fields, image, imageType, err := projectPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	patch := map[string]any{}
	for _, k := range []string{"name", "description", "projectUrl", "githubUrl"} {
		if v, ok := fields[k].(string); ok {
			patch[k] = v
		}
	}
	if _, ok := fields["techStack"]; ok {
		normalizeList(fields, "techStack")
		if v, ok := fields["techStack"]; ok {
			patch["techStack"] = v
		}
	}
	// a stored image is only overwritten when a new payload arrives
	if image != nil {
		patch["image"] = image
		patch["imageType"] = imageType
	}

	project, err := h.projects.Update(r.Context(), projID, patch)
	if errors.Is(err, repository.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "Invalid Project ID format")
		return
	}
	if err != nil {
		logger.Error("update project", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error updating project")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Project with ID %s not found", projID))
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Project updated successfully", "project": project}, http.StatusOK)
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projID := r.URL.Query().Get("projId")
	if projID == "" {
		writeError(w, http.StatusBadRequest, "Project ID (projId) is required in query string")
		return
	}

	deleted, err := h.projects.Delete(r.Context(), projID)
	if errors.Is(err, repository.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "Invalid Project ID format")
		return
	}
	if err != nil {
		logger.Error("delete project", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error deleting project")
		return
	}
	if !deleted {
		// absent ids still report success for projects
		logger.Warn("project not found for deletion", slog.String("id", projID))
	}

	writeJSON(w, map[string]any{"success": true, "message": fmt.Sprintf("Project with ID %s deleted successfully", projID)}, http.StatusOK)
}

// remarshal moves loosely-typed request fields into a typed document,
// rejecting values of the wrong shape.
func remarshal(fields map[string]any, out any) error {
	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
