package databases

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyayconnect/nyayconnect-api/models"
)

// AppointmentDatabase contains all the appointment related queries
type AppointmentDatabase interface {
	Create(ctx context.Context, clientID, lawyerID int64, date time.Time, notes string) (int64, error)
	FindOwned(ctx context.Context, appointmentID, lawyerID int64) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status models.Status) error
	ListForClient(ctx context.Context, clientID int64) ([]models.AppointmentView, error)
	ListForLawyer(ctx context.Context, lawyerID int64) ([]models.AppointmentView, error)
	HistoryForClient(ctx context.Context, clientID int64) ([]models.AppointmentView, error)
	HistoryForLawyer(ctx context.Context, lawyerID int64) ([]models.AppointmentView, error)
	LawyerStats(ctx context.Context, lawyerID int64) (*models.LawyerStats, error)
	ClientStats(ctx context.Context, clientID int64) (*models.ClientStats, error)
}

type appointmentDatabase struct {
	db *sqlx.DB
}

// NewAppointmentDatabase initializes a new instance of appointment database
func NewAppointmentDatabase(db *sqlx.DB) AppointmentDatabase {
	return &appointmentDatabase{db: db}
}

func (a *appointmentDatabase) Create(ctx context.Context, clientID, lawyerID int64, date time.Time, notes string) (int64, error) {
	var id int64
	query := `
		INSERT INTO appointments (client_id, lawyer_id, appointment_date, notes, status)
		VALUES ($1, $2, $3, $4, 'Pending')
		RETURNING appointment_id
	`
	err := a.db.QueryRowxContext(ctx, query, clientID, lawyerID, date, notes).Scan(&id)
	return id, err
}

// FindOwned returns the appointment only when it belongs to the given lawyer,
// so a missing row and a foreign row are indistinguishable to the caller
func (a *appointmentDatabase) FindOwned(ctx context.Context, appointmentID, lawyerID int64) (*models.Appointment, error) {
	var appt models.Appointment
	query := `
		SELECT appointment_id, client_id, lawyer_id, appointment_date, notes, status
		FROM appointments
		WHERE appointment_id = $1 AND lawyer_id = $2
	`
	if err := a.db.GetContext(ctx, &appt, query, appointmentID, lawyerID); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (a *appointmentDatabase) UpdateStatus(ctx context.Context, appointmentID int64, status models.Status) error {
	query := `UPDATE appointments SET status = $1 WHERE appointment_id = $2`
	_, err := a.db.ExecContext(ctx, query, status, appointmentID)
	return err
}

func (a *appointmentDatabase) ListForClient(ctx context.Context, clientID int64) ([]models.AppointmentView, error) {
	var appts []models.AppointmentView
	query := `
		SELECT a.appointment_id, a.appointment_date, a.status, a.notes,
		       u.name AS lawyer_name, lp.consultation_fee, lp.specializations
		FROM appointments a
		JOIN users u ON a.lawyer_id = u.user_id
		LEFT JOIN lawyer_profiles lp ON a.lawyer_id = lp.user_id
		WHERE a.client_id = $1
		ORDER BY a.appointment_date DESC
	`
	if err := a.db.SelectContext(ctx, &appts, query, clientID); err != nil {
		return nil, err
	}
	return appts, nil
}

func (a *appointmentDatabase) ListForLawyer(ctx context.Context, lawyerID int64) ([]models.AppointmentView, error) {
	var appts []models.AppointmentView
	query := `
		SELECT a.appointment_id, a.appointment_date, a.status, a.notes,
		       u.name AS client_name, u.email AS client_email, lp.consultation_fee
		FROM appointments a
		JOIN users u ON a.client_id = u.user_id
		LEFT JOIN lawyer_profiles lp ON a.lawyer_id = lp.user_id
		WHERE a.lawyer_id = $1
		ORDER BY a.appointment_date DESC
	`
	if err := a.db.SelectContext(ctx, &appts, query, lawyerID); err != nil {
		return nil, err
	}
	return appts, nil
}

// HistoryForClient differs from ListForClient in that the original history
// screen requires a lawyer profile row to exist (inner join)
func (a *appointmentDatabase) HistoryForClient(ctx context.Context, clientID int64) ([]models.AppointmentView, error) {
	var appts []models.AppointmentView
	query := `
		SELECT a.appointment_id, a.appointment_date, a.status, a.notes,
		       u.name AS lawyer_name, lp.consultation_fee, lp.specializations
		FROM appointments a
		JOIN users u ON a.lawyer_id = u.user_id
		JOIN lawyer_profiles lp ON a.lawyer_id = lp.user_id
		WHERE a.client_id = $1
		ORDER BY a.appointment_date DESC
	`
	if err := a.db.SelectContext(ctx, &appts, query, clientID); err != nil {
		return nil, err
	}
	return appts, nil
}

func (a *appointmentDatabase) HistoryForLawyer(ctx context.Context, lawyerID int64) ([]models.AppointmentView, error) {
	var appts []models.AppointmentView
	query := `
		SELECT a.appointment_id, a.appointment_date, a.status, a.notes,
		       u.name AS client_name, lp.consultation_fee, lp.specializations
		FROM appointments a
		JOIN users u ON a.client_id = u.user_id
		JOIN lawyer_profiles lp ON a.lawyer_id = lp.user_id
		WHERE a.lawyer_id = $1
		ORDER BY a.appointment_date DESC
	`
	if err := a.db.SelectContext(ctx, &appts, query, lawyerID); err != nil {
		return nil, err
	}
	return appts, nil
}

func (a *appointmentDatabase) LawyerStats(ctx context.Context, lawyerID int64) (*models.LawyerStats, error) {
	var stats models.LawyerStats
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'Pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'Completed') AS completed
		FROM appointments
		WHERE lawyer_id = $1
	`
	row := a.db.QueryRowxContext(ctx, query, lawyerID)
	if err := row.Scan(&stats.TotalAppointments, &stats.PendingAppointments, &stats.CompletedAppointments); err != nil {
		return nil, err
	}

	feeQuery := `SELECT COALESCE(AVG(consultation_fee), 0) FROM lawyer_profiles WHERE user_id = $1`
	if err := a.db.GetContext(ctx, &stats.AverageEarning, feeQuery, lawyerID); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *appointmentDatabase) ClientStats(ctx context.Context, clientID int64) (*models.ClientStats, error) {
	var stats models.ClientStats
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'Confirmed') AS upcoming,
			COUNT(*) FILTER (WHERE status = 'Completed') AS completed
		FROM appointments
		WHERE client_id = $1
	`
	row := a.db.QueryRowxContext(ctx, query, clientID)
	if err := row.Scan(&stats.TotalConsultations, &stats.UpcomingConsultations, &stats.CompletedConsultations); err != nil {
		return nil, err
	}
	return &stats, nil
}
