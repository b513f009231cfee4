package alerts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/agentstation/transitdata/internal/cmd/output"
)

// Writer writes alerts.
type Writer interface {
	WriteAlert(alert *Alert) error
}

// WriterFunc is an adapter to allow functions to be used as Writers.
type WriterFunc func(*Alert) error

// WriteAlert calls the function.
func (f WriterFunc) WriteAlert(alert *Alert) error {
	return f(alert)
}

// DiscardWriter is a Writer that discards all alerts.
var DiscardWriter Writer = WriterFunc(func(*Alert) error { return nil })

// FormatWriter writes alerts as plain lines, JSON or YAML.
type FormatWriter struct {
	writer io.Writer
	format output.Format
	config WriterConfig
}

// WriterConfig configures alert output.
type WriterConfig struct {
	// ShowDetails prints detail lines under the message.
	ShowDetails bool
	// Decorate prefixes the level icon and colors the line.
	Decorate bool
}

// NewFormatWriter creates a FormatWriter. Icons and colors are only used
// when w is a terminal.
func NewFormatWriter(w io.Writer, format output.Format) *FormatWriter {
	return &FormatWriter{
		writer: w,
		format: format,
		config: WriterConfig{
			ShowDetails: true,
			Decorate:    isTerminal(w),
		},
	}
}

// NewWriter returns the writer commands report through: JSON or YAML when
// that format was requested explicitly, plain lines otherwise.
func NewWriter(w io.Writer, format string) *FormatWriter {
	f, err := output.ParseFormat(format)
	if err != nil {
		f = output.FormatTable
	}
	return NewFormatWriter(w, f)
}

// WithConfig sets the writer configuration.
func (fw *FormatWriter) WithConfig(config WriterConfig) *FormatWriter {
	fw.config = config
	return fw
}

// WriteAlert writes an alert in the configured format.
func (fw *FormatWriter) WriteAlert(alert *Alert) error {
	switch fw.format {
	case output.FormatJSON:
		return fw.writeJSON(alert)
	case output.FormatYAML:
		return fw.writeYAML(alert)
	default:
		return fw.writePlain(alert)
	}
}

type alertData struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func toAlertData(alert *Alert) alertData {
	data := alertData{
		Level:   alert.Level.String(),
		Message: alert.Message,
		Details: alert.Details,
	}
	if alert.Err != nil {
		data.Error = alert.Err.Error()
	}
	return data
}

func (fw *FormatWriter) writeJSON(alert *Alert) error {
	encoder := json.NewEncoder(fw.writer)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(toAlertData(alert))
}

func (fw *FormatWriter) writeYAML(alert *Alert) error {
	out, err := yaml.Marshal(toAlertData(alert))
	if err != nil {
		return err
	}
	_, err = fw.writer.Write(out)
	return err
}

func (fw *FormatWriter) writePlain(alert *Alert) error {
	var b strings.Builder
	if fw.config.Decorate {
		fmt.Fprintf(&b, "%s%s %s%s\n", alert.Level.Color(), alert.Level.Icon(), alert.String(), resetColor)
	} else {
		b.WriteString(alert.String())
		b.WriteByte('\n')
	}
	if fw.config.ShowDetails {
		for _, detail := range alert.Details {
			fmt.Fprintf(&b, "   %s\n", detail)
		}
	}
	_, err := io.WriteString(fw.writer, b.String())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
