package handlers

import (
	"bytes"
	"database/sql"
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

func TestLawyer_LawyersHandler(t *testing.T) {
	spec := "Family Law"
	db := &mocks.LawyerDatabase{}
	db.On("List", mock.Anything).Return([]models.LawyerSummary{
		{UserID: 2, Name: "Vikram", Specializations: &spec},
	}, nil)

	l := Lawyer{DB: db}
	req, _ := http.NewRequest("GET", "/api/lawyers", nil)
	rr := httptest.NewRecorder()
	l.LawyersHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var lawyers []models.LawyerSummary
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &lawyers))
	assert.Len(t, lawyers, 1)
	assert.Equal(t, "Vikram", lawyers[0].Name)
}

func TestLawyer_LawyersHandlerEmpty(t *testing.T) {
	db := &mocks.LawyerDatabase{}
	db.On("List", mock.Anything).Return(nil, nil)

	l := Lawyer{DB: db}
	req, _ := http.NewRequest("GET", "/api/lawyers", nil)
	rr := httptest.NewRecorder()
	l.LawyersHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestLawyer_LawyerByIDHandlerNotFound(t *testing.T) {
	db := &mocks.LawyerDatabase{}
	db.On("FindByUserID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	l := Lawyer{DB: db}
	req, _ := http.NewRequest("GET", "/api/lawyers/99", nil)
	req = mux.SetURLVars(req, map[string]string{"lawyer_id": "99"})
	rr := httptest.NewRecorder()
	l.LawyerByIDHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLawyer_LawyerByIDHandlerInvalidID(t *testing.T) {
	l := Lawyer{DB: &mocks.LawyerDatabase{}}
	req, _ := http.NewRequest("GET", "/api/lawyers/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"lawyer_id": "abc"})
	rr := httptest.NewRecorder()
	l.LawyerByIDHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLawyer_UpdateLawyerProfileHandler(t *testing.T) {
	db := &mocks.LawyerDatabase{}
	db.On("Upsert", mock.Anything, int64(2), models.LawyerProfileRequest{
		Bio:             "Ten years of family law practice",
		Specializations: "Family Law",
		Experience:      "10",
		City:            "Mumbai",
		ConsultationFee: 1500,
	}).Return(nil)

	l := Lawyer{DB: db}
	body, _ := json.Marshal(models.LawyerProfileRequest{
		Bio:             "Ten years of family law practice",
		Specializations: "Family Law",
		Experience:      "10",
		City:            "Mumbai",
		ConsultationFee: 1500,
	})
	req, _ := http.NewRequest("POST", "/api/lawyer-profile", bytes.NewReader(body))
	req = req.WithContext(api.ContextWithIdentity(req.Context(), 2, models.RoleLawyer))
	rr := httptest.NewRecorder()
	l.UpdateLawyerProfileHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	db.AssertExpectations(t)
}

func TestLawyer_UpdateLawyerProfileHandlerMissingFields(t *testing.T) {
	l := Lawyer{DB: &mocks.LawyerDatabase{}}
	body, _ := json.Marshal(models.LawyerProfileRequest{Bio: "only a bio"})
	req, _ := http.NewRequest("POST", "/api/lawyer-profile", bytes.NewReader(body))
	req = req.WithContext(api.ContextWithIdentity(req.Context(), 2, models.RoleLawyer))
	rr := httptest.NewRecorder()
	l.UpdateLawyerProfileHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLawyer_UpsertMyLawyerProfileHandlerLenient(t *testing.T) {
	db := &mocks.LawyerDatabase{}
	db.On("Upsert", mock.Anything, int64(2), models.LawyerProfileRequest{Bio: "only a bio"}).Return(nil)

	l := Lawyer{DB: db}
	body, _ := json.Marshal(models.LawyerProfileRequest{Bio: "only a bio"})
	req, _ := http.NewRequest("POST", "/api/my-lawyer-profile", bytes.NewReader(body))
	req = req.WithContext(api.ContextWithIdentity(req.Context(), 2, models.RoleLawyer))
	rr := httptest.NewRecorder()
	l.UpsertMyLawyerProfileHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	db.AssertExpectations(t)
}
