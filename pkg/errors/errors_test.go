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
	err := NewParseError("page.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "page.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: page.yaml:12: unexpected token", err.Error())
}

func TestValidationErrorCarriesUserMessage(t *testing.T) {
	t.Parallel()

	err := NewValidationError("url", "Please enter a valid URL including http:// or https://", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "url", validationErr.Field)
	require.True(t, IsValidation(err))
	require.True(t, IsValidation(fmt.Errorf("add link: %w", err)))
	require.Equal(t, "Please enter a valid URL including http:// or https://", UserMessage(fmt.Errorf("wrapped: %w", err)))
}

func TestUserMessageFallsBackToErrorText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", UserMessage(nil))
	require.Equal(t, "boom", UserMessage(stdErrors.New("boom")))
	require.False(t, IsValidation(stdErrors.New("boom")))
}

func TestPersistenceErrorIncludesKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("quota exceeded")
	err := NewPersistenceError("themeSettings", "write", underlying)

	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)
	require.Equal(t, "themeSettings", persistErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `write "themeSettings"`)
}
