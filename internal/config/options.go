package config

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/agbru/deckshow/internal/errors"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/scaler"
	"github.com/spf13/viper"
)

// OptionsEnvPrefix prefixes environment overrides of individual deck
// options, e.g. DECKSHOW_OPT_RATIO=16:9.
const OptionsEnvPrefix = "DECKSHOW_OPT"

// Options keys as they appear in the TOML file.
const (
	KeyRatio              = "ratio"
	KeyProgressBar        = "progress_bar"
	KeyControls           = "controls"
	KeyAllowControl       = "allow_control"
	KeyControlsLayout     = "controls_layout"
	KeyControlsBackArrows = "controls_back_arrows"
	KeyControlsTutorial   = "controls_tutorial"
	KeySlideNumber        = "slide_number"
	KeyFolio              = "folio"
	KeyTransition         = "transition"
	KeyTransitionSpeed    = "transition_speed"
)

var controlsLayouts = map[string]bool{"dots": true, "edges": true}

// DeckOptions are the deck options loaded from file and environment.
type DeckOptions struct {
	Ratio              string
	ProgressBar        bool
	Controls           bool
	AllowControl       bool
	ControlsLayout     string
	ControlsBackArrows bool
	ControlsTutorial   bool
	SlideNumber        bool
	Folio              bool
	Transition         string
	TransitionSpeed    string
}

func newOptionsViper() *viper.Viper {
	v := viper.New()

	defaults := orchestration.DefaultOptions()
	v.SetDefault(KeyRatio, defaults.Ratio)
	v.SetDefault(KeyProgressBar, defaults.ProgressBar)
	v.SetDefault(KeyControls, defaults.Controls)
	v.SetDefault(KeyAllowControl, defaults.AllowControl)
	v.SetDefault(KeyControlsLayout, defaults.ControlsLayout)
	v.SetDefault(KeyControlsBackArrows, defaults.ControlsBackArrows)
	v.SetDefault(KeyControlsTutorial, defaults.ControlsTutorial)
	v.SetDefault(KeySlideNumber, defaults.SlideNumber)
	v.SetDefault(KeyFolio, defaults.Folio)
	v.SetDefault(KeyTransition, defaults.Transition)
	v.SetDefault(KeyTransitionSpeed, defaults.TransitionSpeed)

	v.SetConfigType("toml")
	v.SetEnvPrefix(OptionsEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadOptions reads deck options from path (when non-empty), applying
// DECKSHOW_OPT_* environment overrides and defaults. A missing or malformed
// file and an invalid value are reported as configuration errors.
func LoadOptions(path string) (DeckOptions, error) {
	v := newOptionsViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return DeckOptions{}, apperrors.ConfigError{Message: fmt.Sprintf("read options %s: %v", path, err)}
		}
	}

	opts := DeckOptions{
		Ratio:              v.GetString(KeyRatio),
		ProgressBar:        v.GetBool(KeyProgressBar),
		Controls:           v.GetBool(KeyControls),
		AllowControl:       v.GetBool(KeyAllowControl),
		ControlsLayout:     v.GetString(KeyControlsLayout),
		ControlsBackArrows: v.GetBool(KeyControlsBackArrows),
		ControlsTutorial:   v.GetBool(KeyControlsTutorial),
		SlideNumber:        v.GetBool(KeySlideNumber),
		Folio:              v.GetBool(KeyFolio),
		Transition:         v.GetString(KeyTransition),
		TransitionSpeed:    v.GetString(KeyTransitionSpeed),
	}
	if err := opts.Validate(); err != nil {
		return DeckOptions{}, err
	}
	return opts, nil
}

// Validate checks every option value.
func (o DeckOptions) Validate() error {
	var errs []error
	if _, err := scaler.ParseRatio(o.Ratio); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", KeyRatio, err))
	}
	if !controlsLayouts[o.ControlsLayout] {
		errs = append(errs, fmt.Errorf("%s: unknown layout %q", KeyControlsLayout, o.ControlsLayout))
	}
	if err := errors.Join(errs...); err != nil {
		return apperrors.ConfigError{Message: "invalid deck options: " + err.Error()}
	}
	return nil
}

// ToEngineOptions converts the loaded options to the engine's form.
func (o DeckOptions) ToEngineOptions() orchestration.Options {
	return orchestration.Options{
		Ratio:              o.Ratio,
		ProgressBar:        o.ProgressBar,
		Controls:           o.Controls,
		AllowControl:       o.AllowControl,
		ControlsLayout:     o.ControlsLayout,
		ControlsBackArrows: o.ControlsBackArrows,
		ControlsTutorial:   o.ControlsTutorial,
		SlideNumber:        o.SlideNumber,
		Folio:              o.Folio,
		Transition:         o.Transition,
		TransitionSpeed:    o.TransitionSpeed,
	}
}
