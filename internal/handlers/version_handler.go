package handlers

import (
	"net/http"

	"github.com/netra/gallery/internal/models"
)

// Version information injected at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// VersionHandler reports build information
// @Summary Build version
// @Tags health
// @Produce json
// @Success 200 {object} models.VersionResponse
// @Router /api/version [get]
func VersionHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.VersionResponse{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	})
}
