package models

import "time"

// Review holds the structure for a row in the reviews table
type Review struct {
	ID         int64     `json:"ReviewID" db:"review_id"`
	ClientID   int64     `json:"ClientID" db:"client_id"`
	LawyerID   int64     `json:"LawyerID" db:"lawyer_id"`
	Rating     int       `json:"Rating" db:"rating"`
	Comment    string    `json:"Comment" db:"comment"`
	CreatedAt  time.Time `json:"CreatedAt" db:"created_at"`
	ClientName *string   `json:"ClientName,omitempty" db:"client_name"`
}

// CreateReviewRequest is the body for POST /api/reviews
type CreateReviewRequest struct {
	LawyerID int64  `json:"lawyerId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}
