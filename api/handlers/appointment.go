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

// Appointment exported for testing purposes
type Appointment struct {
	DB databases.AppointmentDatabase
}

// BookAppointmentHandler books an appointment for the authenticated client
func (a Appointment) BookAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	clientID, _ := api.UserIDFromContext(r.Context())

	var req models.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.LawyerID == 0 || req.AppointmentDate == "" {
		config.ErrorStatus("lawyer ID and appointment date are required", http.StatusBadRequest, w, fmt.Errorf("missing field"))
		return
	}

	date, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		config.ErrorStatus("invalid appointment date", http.StatusBadRequest, w, err)
		return
	}

	if _, err := a.DB.Create(r.Context(), clientID, req.LawyerID, date, req.Notes); err != nil {
		config.ErrorStatus("failed to book appointment", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Appointment booked successfully.",
	})
}

// UpdateAppointmentStatusHandler moves an appointment through its lifecycle.
// Only the owning lawyer may update, and only along the allowed transitions.
func (a Appointment) UpdateAppointmentStatusHandler(w http.ResponseWriter, r *http.Request) {
	lawyerID, _ := api.UserIDFromContext(r.Context())

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointment_id"], 10, 64)
	if err != nil {
		config.ErrorStatus("invalid appointment ID", http.StatusBadRequest, w, err)
		return
	}

	var req models.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if !req.Status.Valid() || req.Status == models.StatusPending {
		config.ErrorStatus("invalid status provided", http.StatusBadRequest, w, fmt.Errorf("status %q", req.Status))
		return
	}

	appt, err := a.DB.FindOwned(r.Context(), appointmentID, lawyerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			config.ErrorStatus("appointment not found or you don't have permission", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get appointment", http.StatusInternalServerError, w, err)
		return
	}

	if !appt.Status.CanTransitionTo(req.Status) {
		config.ErrorStatus("invalid status transition", http.StatusBadRequest, w, fmt.Errorf("%s -> %s", appt.Status, req.Status))
		return
	}

	if err := a.DB.UpdateStatus(r.Context(), appointmentID, req.Status); err != nil {
		config.ErrorStatus("failed to update appointment", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Appointment status updated.",
	})
}

// MyAppointmentsHandler returns the caller's appointments with the
// role-appropriate counterparty join
func (a Appointment) MyAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())
	role, _ := api.RoleFromContext(r.Context())

	var appts []models.AppointmentView
	var err error
	switch role {
	case models.RoleClient:
		appts, err = a.DB.ListForClient(r.Context(), userID)
	case models.RoleLawyer:
		appts, err = a.DB.ListForLawyer(r.Context(), userID)
	default:
		config.ErrorStatus("invalid user role", http.StatusBadRequest, w, fmt.Errorf("role %q", role))
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get appointments", http.StatusInternalServerError, w, err)
		return
	}
	if len(appts) == 0 {
		appts = []models.AppointmentView{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(appts)
}

// LawyerAppointmentsHandler returns the authenticated lawyer's bookings
func (a Appointment) LawyerAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	lawyerID, _ := api.UserIDFromContext(r.Context())

	appts, err := a.DB.ListForLawyer(r.Context(), lawyerID)
	if err != nil {
		config.ErrorStatus("failed to get appointments", http.StatusInternalServerError, w, err)
		return
	}
	if len(appts) == 0 {
		appts = []models.AppointmentView{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":      true,
		"appointments": appts,
	})
}

// AppointmentHistoryHandler returns the formatted history rows for the
// history screen
func (a Appointment) AppointmentHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())
	role, _ := api.RoleFromContext(r.Context())

	var appts []models.AppointmentView
	var err error
	if role == models.RoleClient {
		appts, err = a.DB.HistoryForClient(r.Context(), userID)
	} else {
		appts, err = a.DB.HistoryForLawyer(r.Context(), userID)
	}
	if err != nil {
		config.ErrorStatus("failed to get appointment history", http.StatusInternalServerError, w, err)
		return
	}

	entries := make([]models.HistoryEntry, 0, len(appts))
	for _, appt := range appts {
		entries = append(entries, formatHistoryEntry(appt, role))
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":      true,
		"appointments": entries,
	})
}

func formatHistoryEntry(appt models.AppointmentView, role models.Role) models.HistoryEntry {
	entry := models.HistoryEntry{
		ID:             fmt.Sprintf("APT-%d", appt.ID),
		Date:           appt.AppointmentDate.Format("2006-01-02"),
		Status:         appt.Status,
		LawyerName:     appt.LawyerName,
		ClientName:     appt.ClientName,
		Specialization: "General Law",
	}
	if appt.ConsultationFee != nil {
		entry.Fee = *appt.ConsultationFee
	}
	if appt.Specializations != nil && *appt.Specializations != "" {
		entry.Specialization = *appt.Specializations
	}
	if role == models.RoleClient {
		entry.Type = "Consultation"
		entry.Duration = "30 mins"
	} else {
		entry.Type = "Legal Service"
		entry.Duration = "45 mins"
	}
	return entry
}
