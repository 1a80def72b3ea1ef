package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("settings.json", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "settings.json", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "settings.json:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, stdErrors.New("eof"))
	require.Equal(t, "parse error: config.yaml: eof", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colors.contrast", "must be one of default dark light high", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors.contrast", validationErr.Field)
	require.Contains(t, err.Error(), "colors.contrast")
}

func TestUnknownFieldErrorNamesPath(t *testing.T) {
	t.Parallel()

	err := NewUnknownFieldError("colors.hue")

	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "colors.hue", unknown.Path)
	require.Contains(t, err.Error(), `"colors.hue"`)
}

func TestProfileErrorIncludesProfileName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("not defined")
	err := NewProfileError("dyslexia", underlying)

	var profileErr *ProfileError
	require.ErrorAs(t, err, &profileErr)
	require.Equal(t, "dyslexia", profileErr.Profile)
	require.True(t, stdErrors.Is(err, underlying))
}
