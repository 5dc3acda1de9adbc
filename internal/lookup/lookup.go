/*
Package lookup dispatches CVE queries and owns the result table state.
*/
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vigo/cvelookup/internal/dbmodel"
	"github.com/vigo/cvelookup/internal/nvd"
	"github.com/vigo/cvelookup/internal/table"
	"github.com/vigo/cvelookup/internal/tlog"
)

// Fetcher retrieves the API response of one CVE ID.
type Fetcher interface {
	Fetch(ctx context.Context, cveID string) (*nvd.Response, error)
}

// Archiver stores displayed rows.
type Archiver interface {
	Save(model *dbmodel.Lookup) error
}

// FailureHook is called after a CVE ID could not be fetched.
type FailureHook func(ctx context.Context, cveID string, err error)

// Controller runs submissions one at a time and keeps the rows of the last
// one. It is not safe for concurrent use.
type Controller struct {
	fetcher   Fetcher
	archive   Archiver
	onFailure FailureHook
	logger    *slog.Logger
	newID     func() string

	queryID string
	rows    []table.Row
}

// Option represents option function type.
type Option func(*Controller) error

// WithArchive stores every submission's rows.
func WithArchive(a Archiver) Option {
	return func(c *Controller) error {
		if a == nil {
			return fmt.Errorf("%w, archive can not be nil", ErrValueRequired)
		}

		c.archive = a

		return nil
	}
}

// WithLogger sets logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) error {
		if l == nil {
			return fmt.Errorf("%w, logger can not be nil", ErrValueRequired)
		}

		c.logger = l

		return nil
	}
}

// WithFailureHook registers fn for failed fetches.
func WithFailureHook(fn FailureHook) Option {
	return func(c *Controller) error {
		c.onFailure = fn
		return nil
	}
}

// WithIDGenerator replaces the submission id source.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) error {
		if fn == nil {
			return fmt.Errorf("%w, id generator can not be nil", ErrValueRequired)
		}

		c.newID = fn

		return nil
	}
}

// New instantiates controller.
func New(fetcher Fetcher, options ...Option) (*Controller, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w, fetcher can not be nil", ErrValueRequired)
	}

	c := &Controller{
		fetcher: fetcher,
		logger:  tlog.Discard(),
		newID:   uuid.NewString,
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Rows returns the rows of the last submission.
func (c *Controller) Rows() []table.Row {
	return append([]table.Row(nil), c.rows...)
}

// QueryID returns the id of the last submission.
func (c *Controller) QueryID() string {
	return c.queryID
}

// Submit clears the table, fetches every CVE ID of input in order and
// returns the resulting rows. A failing ID yields a status row and does not
// stop the remaining ones.
func (c *Controller) Submit(ctx context.Context, input string) []table.Row {
	c.rows = nil
	c.queryID = c.newID()

	logger := c.logger.With("query", c.queryID)

	ids, err := ParseQuery(input)
	if err != nil {
		logger.Debug("empty submission")
		c.appendStatus(table.MessageNoInput)
		c.store(logger)

		return c.Rows()
	}

	logger.Info("submission", "ids", len(ids))

	for _, id := range ids {
		c.dispatch(ctx, logger, id)
	}

	c.store(logger)

	return c.Rows()
}

func (c *Controller) dispatch(ctx context.Context, logger *slog.Logger, id string) {
	resp, err := c.fetcher.Fetch(ctx, id)
	if err != nil {
		logger.Error("fetch", "err", err, "cve", id)
		c.appendStatus(fmt.Sprintf("%s: %v", id, err))

		if c.onFailure != nil {
			c.onFailure(ctx, id, err)
		}

		return
	}

	records, err := resp.Records()
	for _, rec := range records {
		c.rows = append(c.rows, table.RecordRow(rec))
	}

	switch {
	case errors.Is(err, nvd.ErrNoVulnerabilities):
		logger.Warn("no vulnerabilities", "cve", id)
		c.appendStatus(table.MessageNoVulnerabilities)
	case err != nil:
		logger.Error("extract", "err", err, "cve", id)
		c.appendStatus(fmt.Sprintf("%s: %v", id, err))
	default:
		logger.Debug("fetched", "cve", id, "records", len(records))
	}
}

func (c *Controller) appendStatus(message string) {
	c.rows = append(c.rows, table.StatusRow(message))
}

func (c *Controller) store(logger *slog.Logger) {
	if c.archive == nil {
		return
	}

	for i, row := range c.rows {
		if err := c.archive.Save(toModel(c.queryID, i, row)); err != nil {
			logger.Error("archive save", "err", err, "position", i)
		}
	}
}

func toModel(queryID string, position int, row table.Row) *dbmodel.Lookup {
	m := &dbmodel.Lookup{
		QueryID:  queryID,
		Position: position,
		Message:  row.Message,
	}

	if row.IsStatus() || len(row.Cells) < table.ColumnCount {
		return m
	}

	m.CVEID = row.Cells[0]
	m.Description = row.Cells[1]
	m.Published = row.Cells[2]
	m.LastModified = row.Cells[3]
	m.Severity = row.Cells[4]
	m.Vector = row.Cells[5]
	m.BaseScore = row.Cells[6]

	return m
}
