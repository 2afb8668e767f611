// Package main tests for the greeting sequence.
package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwade/greetlink/internal/greeting"
)

// bufLoad returns a load func yielding a shared greeter bound to buf,
// standing in for the plugin-resolved component.
func bufLoad(buf *bytes.Buffer) func() (greeting.Greeter, error) {
	return func() (greeting.Greeter, error) {
		return greeting.NewSharedGreeter(buf), nil
	}
}

// TestRunOutput verifies the exact three-line stdout contract:
// shared line, static line, executable trailer.
func TestRunOutput(t *testing.T) {
	var buf bytes.Buffer

	err := run(&buf, bufLoad(&buf))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		greeting.SharedMessage,
		greeting.StaticMessage,
		greeting.ExecutableMessage,
	}, lines)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"), "output should end with a newline")
}

// TestRunDeterministic verifies repeated runs produce byte-identical
// output.
func TestRunDeterministic(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, run(&first, bufLoad(&first)))
	require.NoError(t, run(&second, bufLoad(&second)))

	assert.Equal(t, first.String(), second.String())
}

// TestRunLoadError verifies a loader failure is propagated untouched
// and nothing is written before the shared component resolves.
func TestRunLoadError(t *testing.T) {
	var buf bytes.Buffer
	loadErr := errors.New("artifact not found")

	err := run(&buf, func() (greeting.Greeter, error) {
		return nil, loadErr
	})

	require.ErrorIs(t, err, loadErr)
	assert.Zero(t, buf.Len(), "no output expected when loading fails")
}

// TestVersionSet verifies the build-time version default.
func TestVersionSet(t *testing.T) {
	// Version may be overridden by -ldflags; it must never be empty.
	require.NotEmpty(t, Version)
}
