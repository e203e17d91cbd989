package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nyayconnect/nyayconnect-api/api"
	"github.com/nyayconnect/nyayconnect-api/config"
	"github.com/nyayconnect/nyayconnect-api/databases"
	"github.com/nyayconnect/nyayconnect-api/models"
)

// Review exported for testing purposes
type Review struct {
	DB databases.ReviewDatabase
}

// CreateReviewHandler records a client's review of a lawyer
func (rv Review) CreateReviewHandler(w http.ResponseWriter, r *http.Request) {
	clientID, _ := api.UserIDFromContext(r.Context())

	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.LawyerID == 0 || req.Rating < 1 || req.Rating > 5 {
		config.ErrorStatus("lawyer ID and a rating between 1 and 5 are required", http.StatusBadRequest, w, fmt.Errorf("invalid review"))
		return
	}

	reviewID, err := rv.DB.Create(r.Context(), clientID, req.LawyerID, req.Rating, req.Comment)
	if err != nil {
		config.ErrorStatus("failed to create review", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"message":  "Review submitted successfully.",
		"reviewId": reviewID,
	})
}

// LawyerReviewsHandler returns all reviews left for a lawyer
func (rv Review) LawyerReviewsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	lawyerID, err := strconv.ParseInt(mux.Vars(r)["lawyer_id"], 10, 64)
	if err != nil {
		config.ErrorStatus("invalid lawyer ID", http.StatusBadRequest, w, err)
		return
	}

	reviews, err := rv.DB.ListForLawyer(r.Context(), lawyerID)
	if err != nil {
		config.ErrorStatus("failed to get reviews", http.StatusInternalServerError, w, err)
		return
	}
	if len(reviews) == 0 {
		reviews = []models.Review{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"reviews": reviews,
	})
}
