package dataset

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"unicode/utf8"

	"github.com/agentstation/transitdata/pkg/errors"
)

// Locate converts a byte offset in data to a 1-based line and column.
// Columns count runes, not bytes.
func Locate(data []byte, offset int64) (line, column int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	lineStart := bytes.LastIndexByte(head, '\n') + 1
	column = utf8.RuneCount(head[lineStart:]) + 1
	return line, column
}

// SyntaxError converts an encoding/json error into a MalformedDatasetError
// carrying the offset, line and column when the decoder reported one.
func SyntaxError(data []byte, err error) *errors.MalformedDatasetError {
	mde := errors.NewMalformedDatasetError(err.Error(), err)

	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syn):
		// Offset counts the offending byte; point at it rather than past it.
		mde.Offset = syn.Offset
		mde.Line, mde.Column = Locate(data, max(syn.Offset-1, 0))
	case stderrors.As(err, &typ):
		mde.Offset = typ.Offset
		mde.Line, mde.Column = Locate(data, typ.Offset)
	}
	return mde
}

// valueKind names the JSON type starting at the first non-space byte of raw.
func valueKind(raw []byte) string {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '[':
		return "array"
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// Kind names the JSON type of a raw value: array, object, string, number,
// bool, null or empty.
func Kind(raw []byte) string {
	return valueKind(raw)
}
