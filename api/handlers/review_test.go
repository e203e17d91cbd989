package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nyayconnect/nyayconnect-api/api"
	"github.com/nyayconnect/nyayconnect-api/databases/mocks"
	"github.com/nyayconnect/nyayconnect-api/models"
)

func TestReview_CreateReviewHandler(t *testing.T) {
	db := &mocks.ReviewDatabase{}
	db.On("Create", mock.Anything, int64(1), int64(2), 5, "very thorough").Return(int64(3), nil)

	rv := Review{DB: db}
	body, _ := json.Marshal(models.CreateReviewRequest{LawyerID: 2, Rating: 5, Comment: "very thorough"})
	req, _ := http.NewRequest("POST", "/api/reviews", bytes.NewReader(body))
	req = req.WithContext(api.ContextWithIdentity(req.Context(), 1, models.RoleClient))
	rr := httptest.NewRecorder()
	rv.CreateReviewHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	db.AssertExpectations(t)
}

func TestReview_CreateReviewHandlerInvalidRating(t *testing.T) {
	rv := Review{DB: &mocks.ReviewDatabase{}}
	body, _ := json.Marshal(models.CreateReviewRequest{LawyerID: 2, Rating: 6})
	req, _ := http.NewRequest("POST", "/api/reviews", bytes.NewReader(body))
	req = req.WithContext(api.ContextWithIdentity(req.Context(), 1, models.RoleClient))
	rr := httptest.NewRecorder()
	rv.CreateReviewHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReview_LawyerReviewsHandlerEmpty(t *testing.T) {
	db := &mocks.ReviewDatabase{}
	db.On("ListForLawyer", mock.Anything, int64(2)).Return(nil, nil)

	rv := Review{DB: db}
	req, _ := http.NewRequest("GET", "/api/lawyers/2/reviews", nil)
	req = mux.SetURLVars(req, map[string]string{"lawyer_id": "2"})
	rr := httptest.NewRecorder()
	rv.LawyerReviewsHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success": true, "reviews": []}`, rr.Body.String())
}
