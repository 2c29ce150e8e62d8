package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_String(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category Category
		want     string
	}{
		"argument":      {Argument, "Argument Error"},
		"configuration": {Configuration, "Configuration Error"},
		"repository":    {Repository, "Repository Error"},
		"version":       {Version, "Version Error"},
		"runtime":       {Runtime, "Runtime Error"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestWrap_PreservesChain(t *testing.T) {
	t.Parallel()

	base := stderrors.New("boom")
	wrapped := Wrap(base, Repository, "check the repository")

	require.NotNil(t, wrapped)
	assert.Equal(t, "boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, Repository, wrapped.Category)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "context"))
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	cliErr := NewVersionError("bad tag")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))

	// Works through wrapping as well.
	wrapped := WrapWithMessage(cliErr, Version, "parsing tag")
	assert.NotNil(t, AsCLIError(wrapped))
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := NewConfigError("bad config", "fix the file", "or delete it")
	out := FormatErrorPlain(err)

	assert.Contains(t, out, "Error [Configuration Error]: bad config")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "• fix the file")
	assert.Contains(t, out, "• or delete it")
}
