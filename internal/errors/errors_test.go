package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", NewConfigError("invalid value %d for flag %s", 120, "--embed-percent"), "invalid value 120 for flag --embed-percent"},
		{"validation", ValidationError{Field: "ratio", Message: "must be W:H"}, `validation error for "ratio": must be W:H`},
		{"geometry", &DegenerateGeometryError{ContentWidth: 400, ContentHeight: 300, TargetHeight: 300}, "degenerate geometry: content 400x300, target 0x300"},
		{"index past the end", &InvalidSlideIndexError{Index: 3, Count: 3}, "invalid slide index 3: 3 slide views"},
		{"negative index", &InvalidSlideIndexError{Index: -1, Count: 5}, "invalid slide index -1: 5 slide views"},
		{"wrapped", WrapError(errors.New("file not found"), "loading %s", "talk.md"), "loading talk.md: file not found"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s: Error() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSentinelMatching(t *testing.T) {
	t.Parallel()
	geom := WrapError(&DegenerateGeometryError{TargetWidth: 0}, "scale help overlay")
	index := WrapError(&InvalidSlideIndexError{Index: 9, Count: 2}, "showSlide")

	if !errors.Is(geom, ErrDegenerateGeometry) || errors.Is(geom, ErrInvalidSlideIndex) {
		t.Error("geometry error matched the wrong sentinel")
	}
	if !errors.Is(index, ErrInvalidSlideIndex) || errors.Is(index, ErrDegenerateGeometry) {
		t.Error("index error matched the wrong sentinel")
	}

	var ie *InvalidSlideIndexError
	if !errors.As(index, &ie) || ie.Index != 9 {
		t.Errorf("errors.As = %+v", ie)
	}
	var ve ValidationError
	if !errors.As(WrapError(ValidationError{Field: "controlsLayout"}, "options"), &ve) || ve.Field != "controlsLayout" {
		t.Errorf("errors.As ValidationError = %+v", ve)
	}
}

func TestWrapError_Nil(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "anything") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want bool
	}{
		{context.Canceled, true},
		{context.DeadlineExceeded, true},
		{WrapError(context.Canceled, "export"), true},
		{errors.New("boom"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsContextError(tt.err); got != tt.want {
			t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"canceled", WrapError(context.Canceled, "run"), ExitErrorCanceled},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"validation", WrapError(ValidationError{Field: "ratio", Message: "bad"}, "options"), ExitErrorConfig},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("%s: ExitCode = %d, want %d", tt.name, got, tt.want)
		}
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled = %d, want the SIGINT convention 130", ExitErrorCanceled)
	}
}
