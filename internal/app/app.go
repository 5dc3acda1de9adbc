/*
Package app wires configuration, the NVD client and the result table into an
interactive session.
*/
package app

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vigo/cvelookup/internal/config"
	"github.com/vigo/cvelookup/internal/httpclient"
	"github.com/vigo/cvelookup/internal/lookup"
	"github.com/vigo/cvelookup/internal/nvd"
	"github.com/vigo/cvelookup/internal/renderer"
	"github.com/vigo/cvelookup/internal/table"
	"github.com/vigo/cvelookup/internal/wayback"
	"golang.org/x/term"
)

// defaults.
const (
	Title  = "CVE Details Retriever"
	Prompt = "Enter CVE IDs (comma separated): "
)

// Options holds session parameters.
type Options struct {
	Logger         *slog.Logger
	ConfigPath     string
	IDs            string
	NoColor        bool
	CellWidth      int
	HTMLFile       string
	ScreenshotFile string
	Wayback        bool
	Archive        lookup.Archiver
	NVDBaseURL     string
}

// Session is a configured lookup session.
type Session struct {
	opts       Options
	logger     *slog.Logger
	controller *lookup.Controller
	terminal   table.Terminal
}

// New builds a session. Missing configuration only downgrades the session to
// unauthenticated requests.
func New(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		return nil, fmt.Errorf("%w, logger can not be nil", lookup.ErrValueRequired)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.Warn("nvd api key not loaded, continuing unauthenticated", "path", cfg.Path, "err", err)
	}
	logger.Debug("config", "path", cfg.Path, "authenticated", cfg.Authenticated())

	hclient, err := httpclient.New()
	if err != nil {
		return nil, err
	}

	nvdOptions := []nvd.Option{nvd.WithAPIKey(cfg.NVDAPIKey)}
	if opts.NVDBaseURL != "" {
		nvdOptions = append(nvdOptions, nvd.WithBaseURL(opts.NVDBaseURL))
	}

	client, err := nvd.New(hclient, nvdOptions...)
	if err != nil {
		return nil, err
	}

	lookupOptions := []lookup.Option{lookup.WithLogger(logger)}

	if opts.Archive != nil {
		lookupOptions = append(lookupOptions, lookup.WithArchive(opts.Archive))
	}

	if opts.Wayback {
		wb, errr := wayback.New(hclient)
		if errr != nil {
			return nil, errr
		}
		lookupOptions = append(lookupOptions, lookup.WithFailureHook(waybackHint(wb, logger)))
	}

	controller, err := lookup.New(client, lookupOptions...)
	if err != nil {
		return nil, err
	}

	return &Session{
		opts:       opts,
		logger:     logger,
		controller: controller,
		terminal: table.Terminal{
			Colorize:     !opts.NoColor,
			MaxCellWidth: opts.CellWidth,
		},
	}, nil
}

func waybackHint(wb *wayback.Client, logger *slog.Logger) lookup.FailureHook {
	return func(ctx context.Context, cveID string, _ error) {
		snapshot, err := wb.FetchCVE(ctx, cveID)
		if err != nil {
			logger.Debug("wayback", "cve", cveID, "err", err)
			return
		}
		logger.Info("archived nvd page", "cve", cveID, "url", snapshot)
	}
}

// Run handles opts.IDs once when set, otherwise reads one submission per
// line from in until EOF or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if s.opts.IDs != "" {
		return s.Submit(ctx, s.opts.IDs, out)
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if _, err := io.WriteString(out, Prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			_, _ = io.WriteString(out, "\n")
			return nil
		case line, ok := <-lines:
			if !ok {
				_, _ = io.WriteString(out, "\n")
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}

			if err := s.Submit(ctx, line, out); err != nil {
				return err
			}
		}
	}
}

// Submit runs one submission and presents its rows.
func (s *Session) Submit(ctx context.Context, input string, out io.Writer) error {
	rows := s.controller.Submit(ctx, input)
	s.logger.Debug("submitted", "query", s.controller.QueryID(), "rows", len(rows))

	terminal := s.terminal
	terminal.Colorize = terminal.Colorize && IsTerminal(out)

	if err := terminal.Render(out, rows); err != nil {
		return err
	}

	s.export(ctx, rows)

	return nil
}

// IsTerminal reports whether w is a file attached to a terminal. Severity
// colors are only written to terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (s *Session) export(ctx context.Context, rows []table.Row) {
	if s.opts.HTMLFile == "" && s.opts.ScreenshotFile == "" {
		return
	}

	var buf bytes.Buffer
	if err := table.HTML(&buf, Title, rows); err != nil {
		s.logger.Error("html render", "err", err)
		return
	}

	if s.opts.HTMLFile != "" {
		if err := os.WriteFile(s.opts.HTMLFile, buf.Bytes(), 0o644); err != nil {
			s.logger.Error("html export", "err", err, "file", s.opts.HTMLFile)
		} else {
			s.logger.Info("html exported", "file", s.opts.HTMLFile)
		}
	}

	if s.opts.ScreenshotFile != "" {
		if err := renderer.ScreenshotToFile(ctx, buf.Bytes(), s.opts.ScreenshotFile, s.logger); err != nil {
			s.logger.Error("screenshot export", "err", err, "file", s.opts.ScreenshotFile)
		} else {
			s.logger.Info("screenshot exported", "file", s.opts.ScreenshotFile)
		}
	}
}
