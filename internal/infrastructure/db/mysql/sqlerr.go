package mysql

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// MySQL server error numbers the repositories care about.
const (
	erDupEntry = 1062
	erRowIsRef = 1451
	erNoRefRow = 1452
)

// translate converts driver errors into domain errors at the repository
// boundary. notFound is the message used when the row does not exist.
func translate(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(notFound)
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erDupEntry:
			return domain.NewConflictError("duplicate entry")
		case erRowIsRef, erNoRefRow:
			return domain.NewValidationError("operation violates a data constraint")
		}
	}

	return domain.NewInternalError("database error", err)
}
