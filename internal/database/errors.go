package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// MySQL error numbers for foreign key and duplicate key failures
const (
	mysqlErrDupEntry        = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// IsConstraintViolation reports whether err is a foreign-key or uniqueness
// failure raised by the storage driver, so callers can surface it as a
// client error rather than a generic storage failure.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 23 — integrity constraint violation
		return pqErr.Code.Class() == "23"
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDupEntry, mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
			return true
		}
	}

	return false
}
