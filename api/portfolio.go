package api

import "net/http"

type PortfolioHandler struct{}

func (h *PortfolioHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"success": true, "message": "Portfolio API is ready!"}, http.StatusOK)
}

// Info serves the static aggregate payload consumed by the frontend
// landing page.
func (h *PortfolioHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"success":  true,
		"name":     "Suman Rani",
		"role":     "Java Developer",
		"summary":  "Passionate Java developer with expertise in building modern, responsive web applications using the latest technologies.",
		"location": "Canada",
		"email":    "sumankamboj1997@gmail.com",
		"github":   "https://github.com/codesumanr",
		"linkedin": "https://www.linkedin.com/in/suman-r-b60155260",
	}, http.StatusOK)
}
