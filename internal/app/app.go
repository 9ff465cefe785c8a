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
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/deckshow/internal/cli"
	"github.com/agbru/deckshow/internal/config"
	"github.com/agbru/deckshow/internal/controller"
	"github.com/agbru/deckshow/internal/deck"
	apperrors "github.com/agbru/deckshow/internal/errors"
	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/location"
	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/metrics"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/printing"
	"github.com/agbru/deckshow/internal/scaler"
	"github.com/agbru/deckshow/internal/server"
	"github.com/agbru/deckshow/internal/tty"
	"github.com/agbru/deckshow/internal/tui"
	"github.com/agbru/deckshow/internal/ui"
	"github.com/agbru/deckshow/internal/widgets"
)

const tracerName = "github.com/agbru/deckshow/internal/app"

var (
	// errDeck marks failures to read or parse the deck file.
	errDeck = errors.New("loading deck")
	// errExport marks export failures already reported by the progress output.
	errExport = errors.New("export failed")
)

// Application represents the deckshow application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	// terminalSize probes the window the host starts with.
	terminalSize func() (cols, rows int)
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "deckshow"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	return &Application{
		Config:       cfg,
		ErrWriter:    errWriter,
		terminalSize: func() (int, int) { return tty.SizeOr(os.Stdout.Fd()) },
	}, nil
}

// session holds the collaborators wired for one run.
type session struct {
	bus       *events.Bus
	show      *deck.SlideShow
	host      *tui.Host
	notifier  *printing.Notifier
	engine    *orchestration.Engine
	ctrl      *controller.Controller
	collector *metrics.Collector
	logger    logging.Logger
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	zerolog.SetGlobalLevel(a.logLevel())

	logger, closeLog, err := a.newLogger()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	defer closeLog()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "app.Run", trace.WithAttributes(
		attribute.String("deck.path", a.Config.DeckPath),
		attribute.Bool("mode.print", a.Config.PrintOutput != ""),
		attribute.Bool("mode.embedded", a.Config.Embedded),
	))
	defer span.End()

	err = a.run(ctx, out, logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a.exitCode(err, logger)
}

func (a *Application) run(ctx context.Context, out io.Writer, logger logging.Logger) error {
	s, err := a.build(logger)
	if err != nil {
		return err
	}
	defer s.engine.Close()

	if a.Config.PrintOutput != "" {
		return a.runPrint(ctx, out, s)
	}
	return a.runInteractive(ctx, s)
}

// build wires the bus, the deck, the terminal host, the engine and the
// default controller.
func (a *Application) build(logger logging.Logger) (*session, error) {
	opts, err := config.LoadOptions(a.Config.OptionsFile)
	if err != nil {
		return nil, err
	}

	collector := metrics.New()
	bus := events.NewBus(events.WithObserver(collector.BusObserver()))

	show := deck.New(bus, deck.WithOptions(opts.ToEngineOptions()), deck.WithLogger(logger))
	if err := show.LoadFile(a.Config.DeckPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errDeck, a.Config.DeckPath, err)
	}

	cols, rows := a.terminalSize()
	hostOpts := []tui.HostOption{tui.WithLogger(logger)}
	if a.Config.Embedded {
		hostOpts = append(hostOpts, tui.WithEmbedded(a.Config.EmbedPercent))
	}
	host := tui.NewHost(cols, rows, hostOpts...)

	notifier := printing.NewNotifier()
	sc := scaler.New(scaler.WithLogger(logger), scaler.WithObserver(collector.RescaleObserver()))
	engine, err := orchestration.New(bus, host.Deck(), host, show,
		orchestration.WithLogger(logger),
		orchestration.WithFeatureProbe(host),
		orchestration.WithPrinter(notifier),
		orchestration.WithWidgets(widgets.NewFactory()),
		orchestration.WithScaler(sc),
	)
	if err != nil {
		return nil, err
	}

	loc := location.New(a.Config.Start)
	location.Track(bus, loc, nil)
	collector.Track(bus)

	ctrlCfg := controller.DefaultConfig()
	ctrlCfg.Embedded = engine.Embedded()
	ctrlCfg.AllowControl = opts.AllowControl
	ctrl := controller.New(bus, loc, ctrlCfg, controller.WithLogger(logger))

	return &session{
		bus:       bus,
		show:      show,
		host:      host,
		notifier:  notifier,
		engine:    engine,
		ctrl:      ctrl,
		collector: collector,
		logger:    logger,
	}, nil
}

// runPrint exports every slide to the configured output. "-" writes the
// pages to out and the progress to the error writer.
func (a *Application) runPrint(ctx context.Context, out io.Writer, s *session) error {
	if a.Config.Portrait {
		s.notifier.SetPageOrientation(geometry.Portrait)
	}

	dest, progressOut := out, a.ErrWriter
	if a.Config.PrintOutput != "-" {
		f, err := os.Create(a.Config.PrintOutput)
		if err != nil {
			return apperrors.WrapError(err, "creating %s", a.Config.PrintOutput)
		}
		defer f.Close()
		dest, progressOut = f, out
	}

	progress := cli.NewExportProgress(progressOut, a.Config.Quiet || a.Config.PrintOutput == "-")
	exporter := printing.NewExporter(s.notifier, s.engine.Views, tui.RenderPage, s.bus,
		printing.WithLogger(s.logger),
		printing.WithProgress(progress.Update),
	)

	progress.Start()
	err := exporter.Export(ctx, dest, float64(a.Config.PageWidth), float64(a.Config.PageHeight))
	progress.Finish(a.Config.PrintOutput, err)
	if err != nil {
		return fmt.Errorf("%w: %w", errExport, err)
	}
	return nil
}

// runInteractive runs the terminal host and, when configured, the metrics
// and remote control server. Quitting the host stops the server.
func (a *Application) runInteractive(ctx context.Context, s *session) error {
	bridge := tui.NewBridge()
	if err := s.ctrl.Start(); err != nil {
		s.logger.Warn("initial navigation failed", logging.Err(err))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if addr := a.Config.ServerAddr(); addr != "" {
		srvOpts := []server.Option{
			server.WithLogger(s.logger),
			server.WithRemote(bridge.SendRemote),
		}
		if a.Config.MetricsAddr != "" {
			srvOpts = append(srvOpts, server.WithMetrics(s.collector))
		}
		srv := server.New(addr, srvOpts...)
		g.Go(func() error { return srv.Run(gctx) })
	}

	g.Go(func() error {
		defer cancel()
		return tui.Run(gctx, s.host, bridge, s.engine.Modes(), s.show, Version)
	})
	return g.Wait()
}

func (a *Application) exitCode(err error, logger logging.Logger) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	logger.Error("run failed", err)
	code := apperrors.ExitCode(err)
	switch {
	case code == apperrors.ExitErrorCanceled:
		fmt.Fprintln(a.ErrWriter, "Interrupted.")
	case errors.Is(err, errDeck):
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorDeck
	case !errors.Is(err, errExport):
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	}
	return code
}

func (a *Application) logLevel() zerolog.Level {
	switch {
	case a.Config.Verbose:
		return zerolog.DebugLevel
	case a.Config.Quiet:
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// newLogger returns the run logger. Logs go to --log-file when given; in
// print mode a verbose run logs to the error writer. The terminal host owns
// the screen, so interactive runs never log to it.
func (a *Application) newLogger() (logging.Logger, func(), error) {
	if a.Config.LogFile != "" {
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, apperrors.NewConfigError("opening log file: %v", err)
		}
		return logging.NewLogger(f, "deckshow"), func() { _ = f.Close() }, nil
	}
	if a.Config.PrintOutput != "" && a.Config.Verbose {
		return logging.NewConsoleLogger(a.ErrWriter, a.Config.NoColor), func() {}, nil
	}
	return logging.Nop(), func() {}, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeFor maps an error returned by New to a process exit code.
func ExitCodeFor(err error) int {
	return apperrors.ExitCode(err)
}
