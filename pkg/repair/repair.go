// Package repair recovers a JSON file that holds one well-formed value
// followed by extraneous bytes, typically a second array appended to the
// first by a careless export.
package repair

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/agentstation/transitdata/pkg/dataset"
	"github.com/agentstation/transitdata/pkg/errors"
)

// Result describes the first JSON value found in the input.
type Result struct {
	// Value is the first complete JSON value, exactly as it appeared.
	Value json.RawMessage

	// Kind is the JSON type of Value (array, object, string, number, bool, null).
	Kind string

	// Length is the element count for arrays and objects, zero otherwise.
	Length int

	// Offset is the byte offset immediately after Value.
	Offset int

	// Trailing is true when a non-whitespace byte follows Value.
	Trailing bool
}

// Truncate decodes the first complete JSON value in data and reports what
// follows it. Whitespace after the value is not extraneous.
func Truncate(data []byte) (*Result, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var value json.RawMessage
	if err := dec.Decode(&value); err != nil {
		if kind := dataset.Kind(data); kind == "empty" {
			return nil, errors.NewMalformedDatasetError("no JSON value found", err)
		}
		return nil, dataset.SyntaxError(data, err)
	}

	offset := int(dec.InputOffset())
	rest := bytes.TrimLeft(data[offset:], " \t\r\n")

	res := &Result{
		Value:    value,
		Kind:     dataset.Kind(value),
		Offset:   offset,
		Trailing: len(rest) > 0,
	}

	switch res.Kind {
	case "array":
		var elems []json.RawMessage
		if err := json.Unmarshal(value, &elems); err == nil {
			res.Length = len(elems)
		}
	case "object":
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(value, &fields); err == nil {
			res.Length = len(fields)
		}
	}

	return res, nil
}

// Indent re-serializes value with indent spaces per level, keeping field
// order and non-ASCII text as they were. The output ends with a newline.
func Indent(value json.RawMessage, indent int) ([]byte, error) {
	var out bytes.Buffer
	if indent <= 0 {
		if err := json.Compact(&out, value); err != nil {
			return nil, err
		}
	} else if err := json.Indent(&out, value, "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
