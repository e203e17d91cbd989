package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nyayconnect/nyayconnect-api/api"
	"github.com/nyayconnect/nyayconnect-api/databases/mocks"
	"github.com/nyayconnect/nyayconnect-api/models"
)

func TestDashboard_StatsHandlerLawyer(t *testing.T) {
	db := &mocks.AppointmentDatabase{}
	db.On("LawyerStats", mock.Anything, int64(2)).Return(&models.LawyerStats{
		TotalAppointments:     12,
		PendingAppointments:   3,
		CompletedAppointments: 7,
		AverageEarning:        1200.50,
	}, nil)

	d := Dashboard{DB: db}
	req, _ := http.NewRequest("GET", "/api/dashboard/stats", nil)
	req = req.WithContext(api.ContextWithIdentity(req.Context(), 2, models.RoleLawyer))
	rr := httptest.NewRecorder()
	d.StatsHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool               `json:"success"`
		Stats   models.LawyerStats `json:"stats"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 12, resp.Stats.TotalAppointments)
	assert.Equal(t, 1200.50, resp.Stats.AverageEarning)
	db.AssertNotCalled(t, "ClientStats", mock.Anything, mock.Anything)
}

func TestDashboard_StatsHandlerClient(t *testing.T) {
	db := &mocks.AppointmentDatabase{}
	db.On("ClientStats", mock.Anything, int64(1)).Return(&models.ClientStats{
		TotalConsultations:     4,
		UpcomingConsultations:  1,
		CompletedConsultations: 2,
	}, nil)

	d := Dashboard{DB: db}
	req, _ := http.NewRequest("GET", "/api/dashboard/stats", nil)
	req = req.WithContext(api.ContextWithIdentity(req.Context(), 1, models.RoleClient))
	rr := httptest.NewRecorder()
	d.StatsHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool               `json:"success"`
		Stats   models.ClientStats `json:"stats"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 4, resp.Stats.TotalConsultations)
	db.AssertNotCalled(t, "LawyerStats", mock.Anything, mock.Anything)
}
