package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound signals a lookup by id that matched nothing.
	ErrNotFound = errors.New("record not found")
	// ErrValidation signals a malformed or missing required field.
	ErrValidation = errors.New("invalid input")
	// ErrIntegrity signals a foreign-key or constraint violation.
	ErrIntegrity = errors.New("constraint violation")
)

// classify maps store-level failures onto the service error kinds.
// Anything unrecognized passes through as an unhandled persistence error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23503", "23505":
			return fmt.Errorf("%w: %s", ErrIntegrity, pgErr.Message)
		}
	}
	return err
}
