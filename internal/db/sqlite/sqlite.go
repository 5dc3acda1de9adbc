/*
Package sqlite implements sqlite database operations.
*/
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite embedded
	"github.com/vigo/cvelookup/internal/db"
	"github.com/vigo/cvelookup/internal/dbmodel"
)

var _ db.Manager = (*DB)(nil) // compile time proof

// DefaultFilename is used when no filename option is given.
const DefaultFilename = "cvelookup.sqlite3"

// DB holds sqlite related params.
type DB struct {
	DB                   *sql.DB
	TargetSqliteFilename string
}

// InitDB creates initial sqlite table.
func (d *DB) InitDB() error {
	query := `CREATE TABLE IF NOT EXISTS lookups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		query_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		cve_id TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		published TEXT NOT NULL DEFAULT '',
		last_modified TEXT NOT NULL DEFAULT '',
		severity TEXT NOT NULL DEFAULT '',
		vector TEXT NOT NULL DEFAULT '',
		base_score TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		UNIQUE (query_id, position)
	);`
	_, err := d.DB.Exec(query)

	return err
}

// Save inserts data to db.
func (d *DB) Save(model *dbmodel.Lookup) error {
	if err := db.Validate(model); err != nil {
		return err
	}

	_, err := d.DB.Exec(
		"INSERT INTO lookups ("+db.Columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		db.Values(model)...,
	)
	return err
}

// FindByQueryID returns rows of a submission in display order.
func (d *DB) FindByQueryID(queryID string) (dbmodel.Lookups, error) {
	rows, err := d.DB.Query("SELECT "+db.Columns+" FROM lookups WHERE query_id = ? ORDER BY position", queryID)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = rows.Close()
	}()

	var results dbmodel.Lookups

	for rows.Next() {
		entry, errr := db.ScanLookup(rows)
		if errr != nil {
			return nil, errr
		}
		results = append(results, entry)
	}

	return results, rows.Err()
}

func (d *DB) setDefaults() {
	if d.TargetSqliteFilename == "" {
		d.TargetSqliteFilename = DefaultFilename
	}
}

// Option represents option function type.
type Option func(*DB) error

// WithTargetSqliteFilename sets sqlite filename for creation.
func WithTargetSqliteFilename(s string) Option {
	return func(d *DB) error {
		if s == "" {
			return fmt.Errorf("%w, target filename can not be empty string", db.ErrValueRequired)
		}

		d.TargetSqliteFilename = s

		return nil
	}
}

// New instantiates new database instance.
func New(options ...Option) (*DB, error) {
	dbase := new(DB)
	for _, option := range options {
		if err := option(dbase); err != nil {
			return nil, err
		}
	}

	dbase.setDefaults()

	sqliteDB, err := sql.Open("sqlite3", dbase.TargetSqliteFilename)
	if err != nil {
		return nil, err
	}
	sqliteDB.SetMaxOpenConns(1)
	dbase.DB = sqliteDB

	return dbase, nil
}
