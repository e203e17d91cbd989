package models

import "time"

// LawyerProfile holds the structure for a row in the lawyer_profiles table,
// joined with the owning user row
type LawyerProfile struct {
	UserID          int64    `json:"UserID" db:"user_id"`
	Name            string   `json:"Name" db:"name"`
	Email           string   `json:"Email,omitempty" db:"email"`
	UserType        Role     `json:"UserType,omitempty" db:"user_type"`
	Bio             *string  `json:"Bio" db:"bio"`
	Specializations *string  `json:"Specializations" db:"specializations"`
	Experience      *string  `json:"Experience" db:"experience"`
	City            *string  `json:"City" db:"city"`
	ConsultationFee *float64 `json:"ConsultationFee" db:"consultation_fee"`
}

// LawyerSummary is a single entry in the public lawyer directory
type LawyerSummary struct {
	UserID          int64    `json:"UserID" db:"user_id"`
	Name            string   `json:"Name" db:"name"`
	Specializations *string  `json:"Specializations" db:"specializations"`
	City            *string  `json:"City" db:"city"`
	ConsultationFee *float64 `json:"ConsultationFee" db:"consultation_fee"`
}

// LawyerProfileRequest is the body for the lawyer profile upsert endpoints
type LawyerProfileRequest struct {
	Bio             string  `json:"bio"`
	Specializations string  `json:"specializations"`
	Experience      string  `json:"experience"`
	City            string  `json:"city"`
	ConsultationFee float64 `json:"consultationFee"`
}

// MyLawyerProfileResponse wraps the authenticated lawyer's own profile read
type MyLawyerProfileResponse struct {
	Success bool                       `json:"success"`
	Profile LawyerProfileWithCreatedAt `json:"profile"`
}

// LawyerProfileWithCreatedAt mirrors the original profile payload, which
// stamps the read time as CreatedAt
type LawyerProfileWithCreatedAt struct {
	LawyerProfile
	CreatedAt time.Time `json:"CreatedAt"`
}
