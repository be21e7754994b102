package handlers

import (
	"net/http"
)

// GetDashboardStatsHandler godoc
// @Summary Aggregate counts for the caller's dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.DashboardStats
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/stats [get]
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromContext(r)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	stats, err := statsRepo.GetDashboardStats(owner.UserID)
	if err != nil {
		http.Error(w, "failed to fetch dashboard stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HealthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
