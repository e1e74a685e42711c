package aggregates

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/erp-backend/internal/domain/aggregates"
)

var (
	// ErrConflict marks a write rejected by a store constraint.
	ErrConflict = errors.New("aggregate conflict")
	// ErrUnavailable marks a store that could not be reached.
	ErrUnavailable = errors.New("aggregate store unavailable")
)

// ConflictError tags an error as a persistence conflict.
func ConflictError(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

// UnavailableError tags an error as a storage outage.
func UnavailableError(msg string) error {
	return errors.Join(ErrUnavailable, errors.New(strings.TrimSpace(msg)))
}

// MapError maps infrastructure failures into aggregate error codes.
// Already-coded errors pass through unchanged.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*domainagg.Error); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrConflict):
		return domainagg.Wrap(domainagg.CodePersistenceConflict, op, err)
	case errors.Is(err, ErrUnavailable):
		return domainagg.Wrap(domainagg.CodeStorageUnavailable, op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainagg.Wrap(domainagg.CodeNotFound, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domainagg.Wrap(domainagg.CodePersistenceConflict, op, err)
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone):
		return domainagg.Wrap(domainagg.CodeStorageUnavailable, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := strings.TrimSpace(pgErr.Code)
		switch {
		case strings.HasPrefix(code, "23"):
			return domainagg.Wrap(domainagg.CodePersistenceConflict, op, err) // integrity_constraint_violation
		case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P0"), code == "53300":
			return domainagg.Wrap(domainagg.CodeStorageUnavailable, op, err) // connection_exception/admin_shutdown/too_many_connections
		}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return domainagg.Wrap(domainagg.CodeStorageUnavailable, op, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return domainagg.Wrap(domainagg.CodeStorageUnavailable, op, err)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "constraint failed"),
		strings.Contains(msg, "violates foreign key"):
		return domainagg.Wrap(domainagg.CodePersistenceConflict, op, err)
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "database is closed"),
		strings.Contains(msg, "unable to open database"):
		return domainagg.Wrap(domainagg.CodeStorageUnavailable, op, err)
	default:
		return domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
}
