package models

import "time"

// Status is the closed set of appointment states
type Status string

// Appointment lifecycle states
const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// validTransitions holds the allowed appointment status moves. Pending can be
// confirmed or cancelled, Confirmed can be completed or cancelled; Cancelled
// and Completed are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is an allowed
// lifecycle step
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Appointment holds the structure for a row in the appointments table
type Appointment struct {
	ID              int64     `json:"AppointmentID" db:"appointment_id"`
	ClientID        int64     `json:"ClientID" db:"client_id"`
	LawyerID        int64     `json:"LawyerID" db:"lawyer_id"`
	AppointmentDate time.Time `json:"AppointmentDate" db:"appointment_date"`
	Notes           string    `json:"Notes" db:"notes"`
	Status          Status    `json:"Status" db:"status"`
}

// AppointmentView is an appointment joined with the counterparty and fee,
// as listed on the my-appointments screens
type AppointmentView struct {
	ID              int64     `json:"AppointmentID" db:"appointment_id"`
	AppointmentDate time.Time `json:"AppointmentDate" db:"appointment_date"`
	Status          Status    `json:"Status" db:"status"`
	Notes           string    `json:"Notes" db:"notes"`
	LawyerName      *string   `json:"LawyerName,omitempty" db:"lawyer_name"`
	ClientName      *string   `json:"ClientName,omitempty" db:"client_name"`
	ClientEmail     *string   `json:"ClientEmail,omitempty" db:"client_email"`
	ConsultationFee *float64  `json:"ConsultationFee" db:"consultation_fee"`
	Specializations *string   `json:"Specializations,omitempty" db:"specializations"`
}

// BookAppointmentRequest is the body for POST /api/appointments
type BookAppointmentRequest struct {
	LawyerID        int64  `json:"lawyerId"`
	AppointmentDate string `json:"appointmentDate"`
	Notes           string `json:"notes"`
}

// UpdateAppointmentStatusRequest is the body for PUT /api/appointments/{id}
type UpdateAppointmentStatusRequest struct {
	Status Status `json:"status"`
}

// HistoryEntry is one formatted row of the appointment history screen
type HistoryEntry struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Fee            float64 `json:"fee"`
	Status         Status  `json:"status"`
	Type           string  `json:"type"`
	Duration       string  `json:"duration"`
	LawyerName     *string `json:"lawyerName,omitempty"`
	ClientName     *string `json:"clientName,omitempty"`
	Specialization string  `json:"specialization"`
}

// LawyerStats is the dashboard aggregate for lawyers
type LawyerStats struct {
	TotalAppointments     int     `json:"totalAppointments"`
	PendingAppointments   int     `json:"pendingAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	AverageEarning        float64 `json:"averageEarning"`
}

// ClientStats is the dashboard aggregate for clients
type ClientStats struct {
	TotalConsultations     int `json:"totalConsultations"`
	UpcomingConsultations  int `json:"upcomingConsultations"`
	CompletedConsultations int `json:"completedConsultations"`
}
