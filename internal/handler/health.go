package handler

import (
	"encoding/json"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/build"
)

// Health serves GET /health for load balancer probes.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// Version serves GET /health/version with build metadata.
func Version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"version": build.Version,
		"commit":  build.Commit,
		"branch":  build.Branch,
	})
}
