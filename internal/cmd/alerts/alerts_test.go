package alerts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/transitdata/internal/cmd/output"
	"github.com/agentstation/transitdata/pkg/errors"
)

func TestAlertString(t *testing.T) {
	assert.Equal(t, "JSON is valid.", NewSuccess("JSON is valid.").String())
	assert.Equal(t, "JSON invalid: boom", NewError("JSON invalid").WithError(errors.New("boom")).String())
}

func TestFail(t *testing.T) {
	assert.NoError(t, Fail("Merge failed", nil))

	cause := errors.NewIOError("read", "lines.json", errors.New("denied"))
	err := Fail("Merge failed", cause)
	require.Error(t, err)

	assert.True(t, errors.IsIO(err))
	assert.Contains(t, err.Error(), "Merge failed: IO error during read of lines.json")

	alert := FromError(fmt.Errorf("running: %w", err))
	assert.Equal(t, LevelError, alert.Level)
	assert.Equal(t, "Merge failed", alert.Message)
	assert.Same(t, cause, alert.Err)
}

func TestFromPlainError(t *testing.T) {
	alert := FromError(errors.New("unknown command"))
	assert.Equal(t, "Error: unknown command", alert.String())
}

func TestFormatWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatTable)

	alert := NewInfo("Successfully decoded JSON array with length 3").
		WithDetails("Found extra data starting at index 7. Truncating...")
	require.NoError(t, w.WriteAlert(alert))

	assert.Equal(t,
		"Successfully decoded JSON array with length 3\n   Found extra data starting at index 7. Truncating...\n",
		buf.String())
}

func TestFormatWriterDecorated(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatTable).WithConfig(WriterConfig{Decorate: true})

	require.NoError(t, w.WriteAlert(NewSuccess("done").WithDetails("hidden")))

	out := buf.String()
	assert.Contains(t, out, LevelSuccess.Icon()+" done")
	assert.Contains(t, out, LevelSuccess.Color())
	assert.NotContains(t, out, "hidden")
}

func TestFormatWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatJSON)

	require.NoError(t, w.WriteAlert(NewError("JSON invalid").WithError(errors.New("unexpected end"))))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "JSON invalid", got["message"])
	assert.Equal(t, "unexpected end", got["error"])
}

func TestFormatWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatYAML)

	require.NoError(t, w.WriteAlert(NewSuccess("Successfully merged data. Total lines: 2")))

	assert.Contains(t, buf.String(), "level: success")
	assert.Contains(t, buf.String(), "message: ")
	assert.Contains(t, buf.String(), "Successfully merged data. Total lines: 2")
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelError, "error"},
		{LevelWarning, "warning"},
		{LevelInfo, "info"},
		{LevelSuccess, "success"},
		{Level(42), "unknown(42)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "", want: "Successfully merged data. Total lines: 1\n"},
		{format: "table", want: "Successfully merged data. Total lines: 1\n"},
		{format: "bogus", want: "Successfully merged data. Total lines: 1\n"},
		{format: "json", want: `{"level":"success","message":"Successfully merged data. Total lines: 1"}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(&buf, tt.format).WriteAlert(NewSuccess("Successfully merged data. Total lines: 1")))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
