package databases

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nyayconnect/nyayconnect-api/models"
)

// UserDatabase contains all the user related queries
type UserDatabase interface {
	Create(ctx context.Context, name, email, hashedPassword string, role models.Role) (int64, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	UpdateName(ctx context.Context, id int64, name string) error
}

type userDatabase struct {
	db *sqlx.DB
}

// NewUserDatabase initializes a new instance of user database
func NewUserDatabase(db *sqlx.DB) UserDatabase {
	return &userDatabase{db: db}
}

func (u *userDatabase) Create(ctx context.Context, name, email, hashedPassword string, role models.Role) (int64, error) {
	var id int64
	query := `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`
	err := u.db.QueryRowxContext(ctx, query, name, email, hashedPassword, role).Scan(&id)
	return id, err
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT user_id, name, email, password, role FROM users WHERE email = $1`
	if err := u.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userDatabase) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	query := `SELECT user_id, name, email, password, role FROM users WHERE user_id = $1`
	if err := u.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userDatabase) UpdateName(ctx context.Context, id int64, name string) error {
	query := `UPDATE users SET name = $1 WHERE user_id = $2`
	_, err := u.db.ExecContext(ctx, query, name, id)
	return err
}
