package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/nyayconnect/nyayconnect-api/api"
	"github.com/nyayconnect/nyayconnect-api/config"
	"github.com/nyayconnect/nyayconnect-api/databases"
	"github.com/nyayconnect/nyayconnect-api/models"
)

// Lawyer exported for testing purposes
type Lawyer struct {
	DB databases.LawyerDatabase
}

// LawyersHandler returns the public lawyer directory
func (l Lawyer) LawyersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	lawyers, err := l.DB.List(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get lawyers", http.StatusInternalServerError, w, err)
		return
	}
	if len(lawyers) == 0 {
		lawyers = []models.LawyerSummary{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(lawyers)
}

// LawyerByIDHandler returns one lawyer's public profile
func (l Lawyer) LawyerByIDHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	lawyerID, err := strconv.ParseInt(mux.Vars(r)["lawyer_id"], 10, 64)
	if err != nil {
		config.ErrorStatus("invalid lawyer ID", http.StatusBadRequest, w, err)
		return
	}

	profile, err := l.DB.FindByUserID(r.Context(), lawyerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			config.ErrorStatus("lawyer not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get lawyer by ID", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
}

// MyLawyerProfileHandler returns the authenticated lawyer's own profile
func (l Lawyer) MyLawyerProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())

	profile, err := l.DB.FindByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			config.ErrorStatus("user not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get lawyer profile", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.MyLawyerProfileResponse{
		Success: true,
		Profile: models.LawyerProfileWithCreatedAt{
			LawyerProfile: *profile,
			CreatedAt:     time.Now(),
		},
	})
}

// UpsertMyLawyerProfileHandler creates or updates the authenticated lawyer's
// profile; fields are taken as-is
func (l Lawyer) UpsertMyLawyerProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())

	var req models.LawyerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := l.DB.Upsert(r.Context(), userID, req); err != nil {
		config.ErrorStatus("failed to update lawyer profile", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully!",
	})
}

// UpdateLawyerProfileHandler is the validated profile upsert; every field is
// required here, unlike the lenient my-lawyer-profile write
func (l Lawyer) UpdateLawyerProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())

	var req models.LawyerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Bio == "" || req.Specializations == "" || req.Experience == "" || req.City == "" || req.ConsultationFee == 0 {
		config.ErrorStatus("all profile fields are required", http.StatusBadRequest, w, fmt.Errorf("missing field"))
		return
	}

	if err := l.DB.Upsert(r.Context(), userID, req); err != nil {
		config.ErrorStatus("failed to update lawyer profile", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully!",
	})
}
