/*
Package postgresql implements PostgreSQL database operations.
*/
package postgresql

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/vigo/cvelookup/internal/db"
	"github.com/vigo/cvelookup/internal/dbmodel"
)

var _ db.Manager = (*DB)(nil) // Compile-time check

// DB holds PostgreSQL related parameters.
type DB struct {
	*sql.DB
	DSN string
}

// InitDB creates the initial PostgreSQL table.
// You need to `createdb` manually!
func (d *DB) InitDB() error {
	query := `CREATE TABLE IF NOT EXISTS "lookups" (
		"id" SERIAL PRIMARY KEY,
		"created_at" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		"query_id" UUID NOT NULL,
		"position" INTEGER NOT NULL,
		"cve_id" VARCHAR(128) NOT NULL DEFAULT '',
		"description" TEXT NOT NULL DEFAULT '',
		"published" VARCHAR(32) NOT NULL DEFAULT '',
		"last_modified" VARCHAR(32) NOT NULL DEFAULT '',
		"severity" VARCHAR(32) NOT NULL DEFAULT '',
		"vector" TEXT NOT NULL DEFAULT '',
		"base_score" VARCHAR(16) NOT NULL DEFAULT '',
		"message" TEXT NOT NULL DEFAULT '',
		UNIQUE ("query_id", "position")
	);`
	_, err := d.DB.Exec(query)
	return err
}

// Save inserts data into the PostgreSQL database.
func (d *DB) Save(model *dbmodel.Lookup) error {
	if err := db.Validate(model); err != nil {
		return err
	}

	_, err := d.DB.Exec(
		`INSERT INTO lookups (`+db.Columns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (query_id, position) DO NOTHING`,
		db.Values(model)...,
	)
	return err
}

// FindByQueryID returns rows of a submission in display order.
func (d *DB) FindByQueryID(queryID string) (dbmodel.Lookups, error) {
	rows, err := d.DB.Query(
		`SELECT query_id::text, position, cve_id, description, published, last_modified, severity, vector, base_score, message
		 FROM lookups WHERE query_id = $1 ORDER BY position`,
		queryID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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

// Option represents an option function type.
type Option func(*DB) error

// WithDSN sets the PostgreSQL DSN (Data Source Name).
func WithDSN(dsn string) Option {
	return func(d *DB) error {
		if dsn == "" {
			return fmt.Errorf("%w, dsn cannot be empty", db.ErrValueRequired)
		}

		d.DSN = dsn

		return nil
	}
}

// New initializes a new PostgreSQL database instance.
func New(options ...Option) (*DB, error) {
	dbase := new(DB)
	for _, option := range options {
		if err := option(dbase); err != nil {
			return nil, err
		}
	}

	if dbase.DSN == "" {
		dbase.DSN = os.Getenv("DATABASE_URL")
	}
	if dbase.DSN == "" {
		return nil, fmt.Errorf("%w, dsn cannot be empty", db.ErrValueRequired)
	}

	pgDB, err := sql.Open("postgres", dbase.DSN)
	if err != nil {
		return nil, err
	}
	dbase.DB = pgDB

	return dbase, nil
}
