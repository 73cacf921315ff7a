package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/Mjeezuz/clean-text-extractor/cmd/cleantext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: CLI Help and Discovery
//
// Users discover cleantext capabilities through help output. The CLI should
// make it easy to understand what arguments are required and what options
// are available.

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running with --help flag
	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	// Then: help is displayed without error
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "cleantext")
	assert.Contains(t, stdout.String(), "url")
}

func TestCLI_ShowsHelpWhenNoArgumentsProvided(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running with no arguments
	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	// Then: help is shown but an error is returned
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "cleantext")
}

func TestCLI_RejectsUnknownFlags(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--bogus", "https://example.com"}, &stdout, &stderr)

	assert.Error(t, err)
}

// Story: Extraction End to End
//
// Given a reachable page, the CLI prints the annotated text document to
// stdout, or writes it to a file with -o while confirming on stderr.

func pageServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Example</title>
			<meta name="description" content="desc text"></head>
			<body><main><h1>Title</h1><p>Hello <b>world</b></p></main></body></html>`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCLI_PrintsExtractedTextToStdout(t *testing.T) {
	t.Parallel()

	server := pageServer(t)
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{server.URL + "/path"}, &stdout, &stderr)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "#URL_PATH: /path")
	assert.Contains(t, out, "#TITLE: Example")
	assert.Contains(t, out, "#META_DESC: desc text")
	assert.Contains(t, out, "**[H1] Title**")
	assert.Contains(t, out, "Hello world")
}

func TestCLI_WritesToFileWithOutputFlag(t *testing.T) {
	t.Parallel()

	server := pageServer(t)
	m := main.NewMain()
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "page.txt")

	err := m.Run(context.Background(), []string{server.URL + "/path", "-o", path}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Saved to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "**[H1] Title**")
}

func TestCLI_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	server := pageServer(t)
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{server.URL + "/path", "-v"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "fetch")
	assert.Contains(t, stderr.String(), "extract")
}

func TestCLI_ReturnsErrorOnFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{server.URL}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
