/*
Package db provides database abstraction.
*/
package db

import (
	"errors"

	"github.com/vigo/cvelookup/internal/dbmodel"
)

// Manager defines database behaviours.
type Manager interface {
	InitDB() error
	Save(model *dbmodel.Lookup) error
}

// sentinel errors.
var (
	ErrValueRequired = errors.New("value required")
)

// Scanner is satisfied by *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanLookup reads a row selected with the column order of Columns.
func ScanLookup(s Scanner) (dbmodel.Lookup, error) {
	var m dbmodel.Lookup
	err := s.Scan(
		&m.QueryID,
		&m.Position,
		&m.CVEID,
		&m.Description,
		&m.Published,
		&m.LastModified,
		&m.Severity,
		&m.Vector,
		&m.BaseScore,
		&m.Message,
	)
	return m, err
}

// Columns lists selected columns in ScanLookup order.
const Columns = "query_id, position, cve_id, description, published, last_modified, severity, vector, base_score, message"

// Values returns insert arguments in Columns order.
func Values(m *dbmodel.Lookup) []any {
	return []any{
		m.QueryID,
		m.Position,
		m.CVEID,
		m.Description,
		m.Published,
		m.LastModified,
		m.Severity,
		m.Vector,
		m.BaseScore,
		m.Message,
	}
}

// Validate checks required fields.
func Validate(m *dbmodel.Lookup) error {
	if m == nil {
		return ErrValueRequired
	}
	if m.QueryID == "" {
		return errors.Join(ErrValueRequired, errors.New("query id can not be empty"))
	}
	return nil
}
