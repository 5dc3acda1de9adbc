/*
Package main implements command-line functionality.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/vigo/cvelookup/internal/app"
	"github.com/vigo/cvelookup/internal/config"
	"github.com/vigo/cvelookup/internal/db/sqlite"
	"github.com/vigo/cvelookup/internal/table"
	"github.com/vigo/cvelookup/internal/tlog"
	"github.com/vigo/cvelookup/internal/version"
)

const (
	defaultShowVersion = false
	defaultLogLevel    = "info"
	defaultLogNoColor  = false
)

func main() {
	vrs := flag.Bool("version", defaultShowVersion, "display version information")
	logLevel := flag.String("loglevel", defaultLogLevel, "log level")
	logNoColor := flag.Bool("lognocolor", defaultLogNoColor, "disable log colors")
	configPath := flag.String("config", config.DefaultPath, "xml configuration file holding nvd_api_key")
	ids := flag.String("ids", "", "comma separated CVE IDs, runs a single lookup and exits")
	noColor := flag.Bool("nocolor", false, "disable severity colors in the table")
	width := flag.Int("width", table.DefaultMaxCellWidth, "max cell width before truncation")
	htmlFile := flag.String("html", "", "write the last table as html to this file")
	screenshot := flag.String("screenshot", "", "write the last table as png to this file (needs chrome)")
	wb := flag.Bool("wayback", false, "log archived nvd pages for failed lookups")
	archive := flag.String("archive", "", "sqlite file to archive displayed rows")
	flag.Parse()

	if *vrs {
		fmt.Fprintf(flag.CommandLine.Output(), "%s\n", version.Version)
		return
	}

	logger := tlog.New(*logLevel, !*logNoColor)

	config.LoadEnvFiles(".env.local", ".env")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := app.Options{
		Logger:         logger,
		ConfigPath:     *configPath,
		IDs:            *ids,
		NoColor:        *noColor,
		CellWidth:      *width,
		HTMLFile:       *htmlFile,
		ScreenshotFile: *screenshot,
		Wayback:        *wb,
	}

	if *archive != "" {
		dbase, err := sqlite.New(sqlite.WithTargetSqliteFilename(*archive))
		if err != nil {
			logger.Error("instantiate db", "err", err)
			return
		}

		defer func() {
			_ = dbase.DB.Close()
		}()

		if err = dbase.InitDB(); err != nil {
			logger.Error("init db", "err", err)
			return
		}

		opts.Archive = dbase
	}

	session, err := app.New(opts)
	if err != nil {
		logger.Error("instantiate session", "err", err)
		return
	}

	if err = session.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Error("session", "err", err)
	}
}
