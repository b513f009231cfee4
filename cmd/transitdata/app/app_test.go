package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/transitdata/internal/appcontext"
	"github.com/agentstation/transitdata/pkg/errors"
)

// isolate runs the test in an empty working and home directory so no
// config or .env file from the developer's machine is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("TRANSITDATA_CONFIG", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_OUTPUT", "discard")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app, err := New("1.0.0", "abc123", "2025-01-01", WithOutput(&stdout, &stderr))
	require.NoError(t, err)

	err = app.Execute(context.Background(), args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestNew(t *testing.T) {
	isolate(t)

	app, err := New("1.0.0", "abc123", "2025-01-01")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2025-01-01", app.Date())
	assert.NotNil(t, app.Logger())
	assert.Empty(t, app.OutputFormat())
	assert.Equal(t, appcontext.DefaultSettings(), app.Settings())
}

func TestExecuteMerge(t *testing.T) {
	dir := isolate(t)
	base := filepath.Join(dir, "etusa_raw.json")
	incoming := filepath.Join(dir, "new_batch.json")
	writeFile(t, base, `[{"idLigne":"1","nomLigne":"A"}]`)
	writeFile(t, incoming, `[{"idLigne":"2","nomLigne":"B"}]`)

	res := execute(t, "merge", "--base", base, "--incoming", incoming)
	require.NoError(t, res.err)

	assert.Equal(t, "Successfully merged data. Total lines: 2\n", res.stdout)
	assert.Empty(t, res.stderr)
	assert.Contains(t, readFile(t, base), "\n    {\n        \"idLigne\": \"2\"")
}

func TestExecuteUsesConfigFile(t *testing.T) {
	dir := isolate(t)
	base := filepath.Join(dir, "lines.json")
	incoming := filepath.Join(dir, "batch.json")
	writeFile(t, incoming, `[{"code":"X"}]`)

	cfg := filepath.Join(dir, "transitdata.yaml")
	writeFile(t, cfg, "base: "+base+"\nincoming: "+incoming+"\nkey_field: code\nmerge_indent: 2\n")

	res := execute(t, "--config", cfg, "merge")
	require.NoError(t, res.err)

	assert.Equal(t, "[\n  {\n    \"code\": \"X\"\n  }\n]\n", readFile(t, base))
}

func TestExecuteMissingConfigFile(t *testing.T) {
	dir := isolate(t)

	res := execute(t, "--config", filepath.Join(dir, "absent.yaml"), "version")
	require.Error(t, res.err)

	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(res.err, &cfgErr))
	assert.Empty(t, res.stdout)
}

func TestExecuteFailureIsOneLine(t *testing.T) {
	dir := isolate(t)
	stops := filepath.Join(dir, "alger_stops.json")
	writeFile(t, stops, "[1, 2]\n[3]\n")
	t.Setenv("TRANSITDATA_STOPS", stops)

	res := execute(t, "validate")
	require.Error(t, res.err)
	assert.True(t, errors.IsMalformed(res.err))

	assert.Empty(t, res.stdout)
	assert.True(t, strings.HasPrefix(res.stderr, "JSON invalid: malformed dataset at line 2 column 1"), res.stderr)
	assert.Equal(t, 1, strings.Count(res.stderr, "\n"))
}

func TestExecuteFailureAsJSON(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.json")
	writeFile(t, path, `{"a":`)

	res := execute(t, "--format", "json", "validate", path)
	require.Error(t, res.err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stderr), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "JSON invalid", got["message"])
	assert.Contains(t, got["error"], "malformed dataset")
}

func TestExecuteReadsDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "TRANSITDATA_STOPS=stops.json\n")
	writeFile(t, filepath.Join(dir, "stops.json"), `[{"nom":"Hussein Dey"}]`)
	t.Cleanup(func() { _ = os.Unsetenv("TRANSITDATA_STOPS") })

	res := execute(t, "validate")
	require.NoError(t, res.err)
	assert.Equal(t, "JSON is valid.\n", res.stdout)
}

func TestExecuteRejectsUnknownFormat(t *testing.T) {
	isolate(t)

	res := execute(t, "--format", "xml", "version")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "invalid format")
	assert.Empty(t, res.stdout)
}

func TestExecuteVersion(t *testing.T) {
	isolate(t)

	res := execute(t, "--version")
	require.NoError(t, res.err)
	assert.Equal(t, "transitdata 1.0.0\n", res.stdout)

	res = execute(t, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "transitdata version 1.0.0")
	assert.Contains(t, res.stdout, "commit: abc123")
}

func TestExecuteUnknownCommand(t *testing.T) {
	isolate(t)

	res := execute(t, "frobnicate")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "unknown command")
}

func TestExecuteInspect(t *testing.T) {
	dir := isolate(t)
	base := filepath.Join(dir, "etusa_raw.json")
	writeFile(t, base, `[{"idLigne":"01","nomLigne":"Kouba","itineraire":{"aller":[{"nom":"a"}],"retour":[]}}]`)

	res := execute(t, "-o", "json", "inspect", base)
	require.NoError(t, res.err)
	assert.JSONEq(t, `[{"key":"01","name":"Kouba","outbound_stops":1,"return_stops":0}]`, res.stdout)
}
