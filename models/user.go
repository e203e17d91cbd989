package models

// Role is the closed set of account roles
type Role string

// The two roles known to the system
const (
	RoleClient Role = "Client"
	RoleLawyer Role = "Lawyer"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleLawyer
}

// User holds the structure for a row in the users table
type User struct {
	ID       int64  `json:"userId" db:"user_id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
	Role     Role   `json:"role" db:"role"`
}

// RegisterRequest is the body for POST /api/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest is the body for POST /api/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    Role   `json:"role"`
	UserID  int64  `json:"userId"`
}

// UserProfileResponse wraps the profile read for the frontend
type UserProfileResponse struct {
	Success bool        `json:"success"`
	User    UserProfile `json:"user"`
}

// UserProfile is the profile view of a user
type UserProfile struct {
	UserID   int64  `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	JoinDate string `json:"joinDate"`
}

// UpdateProfileRequest is the body for PUT /api/user/profile
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
