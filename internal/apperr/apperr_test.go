package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CategoryValidation, SeverityError, "bad input")
	assert.Equal(t, "validation (error): bad input", err.Error())

	wrapped := Wrap(errors.New("disk full"), CategoryCache, SeverityFatal, "write result")
	assert.Equal(t, "cache (fatal): write result: disk full", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, CategoryInternal, SeverityFatal, "wrapper")
	assert.ErrorIs(t, err, cause)

	var ae *Error
	require.ErrorAs(t, error(err), &ae)
	assert.Equal(t, CategoryInternal, ae.Category)
}

func TestWithContext(t *testing.T) {
	err := Validation("unknown language %q", "xx").
		WithContext("lang", "xx").
		WithContext("caller", "api")
	assert.Equal(t, "xx", err.Context["lang"])
	assert.Equal(t, "api", err.Context["caller"])
}

func TestConstructorCategories(t *testing.T) {
	assert.Equal(t, CategoryValidation, Validation("v").Category)
	assert.Equal(t, CategoryConfig, Config("c").Category)
	assert.Equal(t, CategoryInternal, Internal("i").Category)
	assert.Equal(t, SeverityFatal, Internal("i").Severity)
}

func TestCLIAdapterExitCodes(t *testing.T) {
	a := NewCLIAdapter(false, nil)

	assert.Equal(t, 0, a.ExitCodeFor(nil))
	assert.Equal(t, 2, a.ExitCodeFor(Validation("bad")))
	assert.Equal(t, 7, a.ExitCodeFor(Config("bad")))
	assert.Equal(t, 8, a.ExitCodeFor(New(CategoryCache, SeverityError, "bad")))
	assert.Equal(t, 10, a.ExitCodeFor(Internal("bad")))
	assert.Equal(t, 1, a.ExitCodeFor(errors.New("plain")))

	// Wrapped structured errors still map by category.
	assert.Equal(t, 2, a.ExitCodeFor(Wrap(Validation("inner"), CategoryValidation, SeverityError, "outer")))
}

func TestCLIAdapterFormatError(t *testing.T) {
	quiet := NewCLIAdapter(false, nil)
	verbose := NewCLIAdapter(true, nil)

	err := Validation("unknown profile")
	assert.Equal(t, "Error: unknown profile", quiet.FormatError(err))
	assert.Equal(t, "validation (error): unknown profile", verbose.FormatError(err))

	assert.Equal(t, "Error: plain", quiet.FormatError(errors.New("plain")))
	assert.Equal(t, "", quiet.FormatError(nil))
}
