package databases

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nyayconnect/nyayconnect-api/models"
)

// LawyerDatabase contains all the lawyer profile related queries
type LawyerDatabase interface {
	List(ctx context.Context) ([]models.LawyerSummary, error)
	FindByUserID(ctx context.Context, userID int64) (*models.LawyerProfile, error)
	Upsert(ctx context.Context, userID int64, req models.LawyerProfileRequest) error
}

type lawyerDatabase struct {
	db *sqlx.DB
}

// NewLawyerDatabase initializes a new instance of lawyer database
func NewLawyerDatabase(db *sqlx.DB) LawyerDatabase {
	return &lawyerDatabase{db: db}
}

func (l *lawyerDatabase) List(ctx context.Context) ([]models.LawyerSummary, error) {
	var lawyers []models.LawyerSummary
	query := `
		SELECT u.user_id, u.name, lp.specializations, lp.city, lp.consultation_fee
		FROM users u
		LEFT JOIN lawyer_profiles lp ON u.user_id = lp.user_id
		WHERE u.role = 'Lawyer'
	`
	if err := l.db.SelectContext(ctx, &lawyers, query); err != nil {
		return nil, err
	}
	return lawyers, nil
}

func (l *lawyerDatabase) FindByUserID(ctx context.Context, userID int64) (*models.LawyerProfile, error) {
	var profile models.LawyerProfile
	query := `
		SELECT u.user_id, u.name, u.email, u.role AS user_type,
		       lp.bio, lp.specializations, lp.experience, lp.city, lp.consultation_fee
		FROM users u
		LEFT JOIN lawyer_profiles lp ON u.user_id = lp.user_id
		WHERE u.user_id = $1 AND u.role = 'Lawyer'
	`
	if err := l.db.GetContext(ctx, &profile, query, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile row on first write and updates it thereafter,
// keyed on the unique user_id constraint
func (l *lawyerDatabase) Upsert(ctx context.Context, userID int64, req models.LawyerProfileRequest) error {
	query := `
		INSERT INTO lawyer_profiles (user_id, bio, specializations, experience, city, consultation_fee)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET
			bio = EXCLUDED.bio,
			specializations = EXCLUDED.specializations,
			experience = EXCLUDED.experience,
			city = EXCLUDED.city,
			consultation_fee = EXCLUDED.consultation_fee
	`
	_, err := l.db.ExecContext(ctx, query, userID, req.Bio, req.Specializations, req.Experience, req.City, req.ConsultationFee)
	return err
}
