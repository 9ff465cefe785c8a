package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// envOverride binds DECKSHOW_<envKey> to the flag names it stands in for.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func setInt(field func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*field(c) = n
		}
	}
}

func setString(field func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *field(c) = v }
}

func setBool(field func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}
}

var envOverrides = []envOverride{
	{"EMBED_PERCENT", []string{"embed-percent"}, setInt(func(c *AppConfig) *int { return &c.EmbedPercent })},
	{"PAGE_WIDTH", []string{"page-width"}, setInt(func(c *AppConfig) *int { return &c.PageWidth })},
	{"PAGE_HEIGHT", []string{"page-height"}, setInt(func(c *AppConfig) *int { return &c.PageHeight })},

	// The positional argument wins over DECKSHOW_DECK.
	{"DECK", []string{"deck"}, func(c *AppConfig, v string) {
		if c.DeckPath == "" {
			c.DeckPath = v
		}
	}},
	{"OPTIONS", []string{"options"}, setString(func(c *AppConfig) *string { return &c.OptionsFile })},
	{"PRINT", []string{"print"}, setString(func(c *AppConfig) *string { return &c.PrintOutput })},
	{"METRICS_ADDR", []string{"metrics-addr"}, setString(func(c *AppConfig) *string { return &c.MetricsAddr })},
	{"REMOTE_ADDR", []string{"remote-addr"}, setString(func(c *AppConfig) *string { return &c.RemoteAddr })},
	{"LOG_FILE", []string{"log-file"}, setString(func(c *AppConfig) *string { return &c.LogFile })},
	{"START", []string{"start"}, setString(func(c *AppConfig) *string { return &c.Start })},

	{"EMBEDDED", []string{"embedded"}, setBool(func(c *AppConfig) *bool { return &c.Embedded })},
	{"PORTRAIT", []string{"portrait"}, setBool(func(c *AppConfig) *bool { return &c.Portrait })},
	{"VERBOSE", []string{"v", "verbose"}, setBool(func(c *AppConfig) *bool { return &c.Verbose })},
	{"QUIET", []string{"quiet", "q"}, setBool(func(c *AppConfig) *bool { return &c.Quiet })},
	{"NO_COLOR", []string{"no-color"}, setBool(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv accepts true/1/yes and false/0/no, case-insensitively, and
// keeps def for anything else.
func parseBoolEnv(val string, def bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return def
}

// applyEnvOverrides fills every option whose flag was not given on the
// command line from its DECKSHOW_ variable. Flags beat the environment,
// which beats defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for _, o := range envOverrides {
		explicit := false
		for _, name := range o.flags {
			explicit = explicit || set[name]
		}
		if explicit {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
