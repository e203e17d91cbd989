package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nyayconnect/nyayconnect-api/api"
	"github.com/nyayconnect/nyayconnect-api/config"
	"github.com/nyayconnect/nyayconnect-api/databases"
	"github.com/nyayconnect/nyayconnect-api/models"
)

// Dashboard exported for testing purposes
type Dashboard struct {
	DB databases.AppointmentDatabase
}

// StatsHandler returns the role-dependent dashboard aggregates
func (d Dashboard) StatsHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())
	role, _ := api.RoleFromContext(r.Context())

	var stats interface{}
	var err error
	if role == models.RoleLawyer {
		stats, err = d.DB.LawyerStats(r.Context(), userID)
	} else {
		stats, err = d.DB.ClientStats(r.Context(), userID)
	}
	if err != nil {
		config.ErrorStatus("failed to get dashboard stats", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}
