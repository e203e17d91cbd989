package databases

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/nyayconnect/nyayconnect-api/config"
)

// NewPostgres uses the values from the config and returns a connected
// database handle with a bounded connection pool. Acquisition blocks when
// the pool is exhausted; callers wait rather than fail.
func NewPostgres(conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", conf.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	db.SetMaxOpenConns(conf.MaxDBConns)
	db.SetMaxIdleConns(conf.MaxDBConns)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on error or panic; the connection goes back to
// the pool on every exit path.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				zap.S().With(rbErr).Error("rollback after panic failed")
			}
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.S().With(rbErr).Error("rollback failed")
		}
		return err
	}
	return tx.Commit()
}

// IsUniqueViolation reports whether err is a postgres unique constraint
// violation (duplicate email, duplicate room pair)
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
