package databases

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nyayconnect/nyayconnect-api/models"
)

// ReviewDatabase contains all the review related queries
type ReviewDatabase interface {
	Create(ctx context.Context, clientID, lawyerID int64, rating int, comment string) (int64, error)
	ListForLawyer(ctx context.Context, lawyerID int64) ([]models.Review, error)
}

type reviewDatabase struct {
	db *sqlx.DB
}

// NewReviewDatabase initializes a new instance of review database
func NewReviewDatabase(db *sqlx.DB) ReviewDatabase {
	return &reviewDatabase{db: db}
}

func (r *reviewDatabase) Create(ctx context.Context, clientID, lawyerID int64, rating int, comment string) (int64, error) {
	var id int64
	query := `
		INSERT INTO reviews (client_id, lawyer_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING review_id
	`
	err := r.db.QueryRowxContext(ctx, query, clientID, lawyerID, rating, comment).Scan(&id)
	return id, err
}

func (r *reviewDatabase) ListForLawyer(ctx context.Context, lawyerID int64) ([]models.Review, error) {
	var reviews []models.Review
	query := `
		SELECT rv.review_id, rv.client_id, rv.lawyer_id, rv.rating, rv.comment, rv.created_at,
		       u.name AS client_name
		FROM reviews rv
		JOIN users u ON rv.client_id = u.user_id
		WHERE rv.lawyer_id = $1
		ORDER BY rv.created_at DESC
	`
	if err := r.db.SelectContext(ctx, &reviews, query, lawyerID); err != nil {
		return nil, err
	}
	return reviews, nil
}
