// Package config parses the command line, environment and options file into
// the settings the application runs with.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/deckshow/internal/errors"
)

// EnvPrefix prefixes every environment variable the application reads.
const EnvPrefix = "DECKSHOW_"

const (
	// DefaultEmbedPercent is the share of the window given to an embedded deck.
	DefaultEmbedPercent = 60
	// DefaultPageWidth and DefaultPageHeight size print pages, in reference units.
	DefaultPageWidth  = 908
	DefaultPageHeight = 681
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// DeckPath is the deck source file.
	DeckPath string
	// OptionsFile is an optional TOML file of deck options.
	OptionsFile string
	// Embedded runs the deck as a pane of a larger layout instead of full window.
	Embedded bool
	// EmbedPercent is the width share of the embedded pane, 10 to 100.
	EmbedPercent int
	// PrintOutput, when set, exports every page to this file instead of
	// starting the interactive host.
	PrintOutput string
	PageWidth   int
	PageHeight  int
	Portrait    bool
	// MetricsAddr and RemoteAddr enable the HTTP server when non-empty.
	MetricsAddr string
	RemoteAddr  string
	// LogFile receives logs while the terminal host is drawing.
	LogFile string
	Verbose bool
	Quiet   bool
	NoColor bool
	// Start is the slide reference shown first (name or 1-based number).
	Start string
}

// ServerAddr returns the address the HTTP server binds to, or "" when it is
// disabled. Metrics and remote control share one listener when both are set
// to the same address.
func (c AppConfig) ServerAddr() string {
	if c.MetricsAddr != "" {
		return c.MetricsAddr
	}
	return c.RemoteAddr
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate() error {
	if c.DeckPath == "" {
		return apperrors.NewConfigError("a deck file is required")
	}
	if c.EmbedPercent < 10 || c.EmbedPercent > 100 {
		return apperrors.NewConfigError("embed percent must be between 10 and 100, got %d", c.EmbedPercent)
	}
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return apperrors.NewConfigError("page size must be positive, got %dx%d", c.PageWidth, c.PageHeight)
	}
	if c.MetricsAddr != "" && c.RemoteAddr != "" && c.MetricsAddr != c.RemoteAddr {
		return apperrors.NewConfigError("metrics and remote addresses must match when both are set")
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("--verbose and --quiet are mutually exclusive")
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig. Flags not set
// on the command line fall back to DECKSHOW_ environment variables, then to
// defaults. A single positional argument is accepted as the deck path.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.DeckPath, "deck", "", "Deck source file.")
	fs.StringVar(&config.OptionsFile, "options", "", "TOML file of deck options.")
	fs.BoolVar(&config.Embedded, "embedded", false, "Run the deck as a pane instead of the full window.")
	fs.IntVar(&config.EmbedPercent, "embed-percent", DefaultEmbedPercent, "Width share of the embedded pane (10-100).")
	fs.StringVar(&config.PrintOutput, "print", "", "Export every page to this file and exit.")
	fs.IntVar(&config.PageWidth, "page-width", DefaultPageWidth, "Print page width.")
	fs.IntVar(&config.PageHeight, "page-height", DefaultPageHeight, "Print page height.")
	fs.BoolVar(&config.Portrait, "portrait", false, "Print pages in portrait orientation with notes.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address.")
	fs.StringVar(&config.RemoteAddr, "remote-addr", "", "Accept remote control connections on this address.")
	fs.StringVar(&config.LogFile, "log-file", "", "Write logs to this file.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging (alias for -v).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: minimal output.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (alias for --quiet).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colours.")
	fs.StringVar(&config.Start, "start", "", "Slide to show first (name or number).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if rest := fs.Args(); len(rest) > 0 {
		if config.DeckPath != "" || len(rest) > 1 {
			return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(rest, " "))
		}
		config.DeckPath = rest[0]
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
