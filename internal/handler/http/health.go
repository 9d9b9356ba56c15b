package http

import (
	"net/http"

	"github.com/akhetov/hybrid-analyzer/internal/utils"
)

// serviceInfo is the static payload of the root endpoint.
type serviceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Health  string `json:"health"`
}

// healthStatus is the payload of the health endpoint.
type healthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, serviceInfo{
		Message: "Hybrid-Analyzer API",
		Version: "1.0.0",
		Health:  "/health",
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthStatus{
		Status:  "healthy",
		Service: "Hybrid-Analyzer API",
	}, http.StatusOK)
}
