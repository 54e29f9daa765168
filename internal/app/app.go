// Package app wires configuration, logging, metrics and the two front ends
// (interactive TUI and headless runner) into the resumescan application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/resumescan/internal/catalog"
	"github.com/agbru/resumescan/internal/cli"
	"github.com/agbru/resumescan/internal/config"
	apperrors "github.com/agbru/resumescan/internal/errors"
	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/logging"
	"github.com/agbru/resumescan/internal/metrics"
	"github.com/agbru/resumescan/internal/orchestration"
	"github.com/agbru/resumescan/internal/server"
	"github.com/agbru/resumescan/internal/tui"
	"github.com/agbru/resumescan/internal/ui"
	"github.com/agbru/resumescan/internal/upload"
)

// Application represents the resumescan application instance.
type Application struct {
	Config    config.AppConfig
	Catalog   *catalog.Catalog
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithCatalog replaces the embedded mock catalog.
func WithCatalog(c *catalog.Catalog) AppOption {
	return func(a *Application) { a.Catalog = c }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Catalog == nil {
		app.Catalog = catalog.Default()
	}

	programName := cli.ProgramName
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)

	logger, closeLog, err := a.newLogger()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	defer closeLog()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ctrl := flow.NewController(flow.WithObserver(flow.LogObserver(logger)))
	logger.Info("session started",
		logging.String("session", ctrl.Session().ID),
		logging.Bool("headless", a.Config.Headless()),
		logging.String("version", Version))

	var rec metrics.Recorder = metrics.Nop{}
	serveCtx, stopServer := context.WithCancel(ctx)
	var g errgroup.Group
	if a.Config.MetricsAddr != "" {
		m := metrics.New()
		rec = m
		srv := server.New(a.Config.MetricsAddr, m, logger)
		g.Go(func() error { return srv.ListenAndServe(serveCtx) })
		logger.Info("metrics endpoint enabled", logging.String("addr", a.Config.MetricsAddr))
	}
	done := metrics.Track(ctrl, rec)

	var code int
	if a.Config.Headless() {
		code = a.runHeadless(ctx, ctrl, rec, logger, out)
	} else {
		code = tui.Run(ctx, ctrl, a.Config, Version,
			tui.WithLogger(logger),
			tui.WithRecorder(rec),
			tui.WithCatalog(a.Catalog))
	}
	done()

	stopServer()
	if err := g.Wait(); err != nil {
		logger.Error("metrics server failed", err)
	}
	logger.Info("session ended", logging.Int("exit_code", code))
	return code
}

// runHeadless plays the whole flow without the interactive UI and prints
// the report.
func (a *Application) runHeadless(ctx context.Context, ctrl *flow.Controller, rec metrics.Recorder, logger logging.Logger, out io.Writer) int {
	if a.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancel()
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
	}

	in := orchestration.Input{Path: a.Config.File, Location: a.Config.Location}
	session, err := orchestration.Run(ctx, ctrl, in, a.Config.Timings(), reporter, out,
		orchestration.WithLogger(logger),
		orchestration.WithRecorder(rec))
	if err != nil {
		a.printError(err)
		return apperrors.ExitCodeFor(err)
	}

	if !a.Config.Quiet && session.SelectedFile != nil {
		details, _ := upload.Inspect(*session.SelectedFile)
		cli.DisplayFileSummary(*session.SelectedFile, details.Summary(), out)
	}
	cli.DisplayReport(a.Catalog.BuildReport(session), out)
	return apperrors.ExitSuccess
}

func (a *Application) printError(err error) {
	var unsupported apperrors.UnsupportedFileError
	switch {
	case errors.As(err, &unsupported):
		fmt.Fprintf(a.ErrWriter, "%s%s%s\n", ui.ColorError(), err, ui.ColorReset())
	case apperrors.IsContextError(err):
		fmt.Fprintf(a.ErrWriter, "%sAnalysis interrupted: %v%s\n", ui.ColorWarning(), err, ui.ColorReset())
	default:
		fmt.Fprintf(a.ErrWriter, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	}
}

// newLogger builds the application logger. Headless runs log to the error
// writer; the TUI owns the terminal, so it logs to --log-file or nowhere.
func (a *Application) newLogger() (logging.Logger, func(), error) {
	noop := func() {}
	var w io.Writer
	closeFn := noop
	switch {
	case a.Config.LogFile != "":
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, apperrors.NewConfigError("open log file: %v", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case a.Config.Headless():
		w = zerolog.ConsoleWriter{Out: a.ErrWriter, NoColor: a.Config.NoColor, TimeFormat: "15:04:05"}
	default:
		return logging.Discard, noop, nil
	}
	logger, err := logging.NewLevelLogger(w, "resumescan", a.Config.LogLevel)
	if err != nil {
		closeFn()
		return nil, noop, apperrors.NewConfigError("%v", err)
	}
	return logger, closeFn, nil
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
