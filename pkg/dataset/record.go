package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/agentstation/transitdata/pkg/errors"
)

// Record is one transit line: an opaque JSON object.
// The zero Record is not valid; build records with ParseRecord or Decode.
type Record struct {
	raw    json.RawMessage            // compacted object bytes
	fields map[string]json.RawMessage // top-level fields, last duplicate wins
}

// ParseRecord builds a Record from a JSON object.
func ParseRecord(data []byte) (Record, error) {
	if kind := valueKind(data); kind != "object" {
		return Record{}, errors.NewMalformedDatasetError(
			fmt.Sprintf("record is a JSON %s, not an object", kind), nil)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return Record{}, SyntaxError(data, err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(compact.Bytes(), &fields); err != nil {
		return Record{}, SyntaxError(compact.Bytes(), err)
	}

	return Record{raw: compact.Bytes(), fields: fields}, nil
}

// MustParseRecord is like ParseRecord but panics on error.
// It simplifies building fixed records in tests and examples.
func MustParseRecord(data string) Record {
	r, err := ParseRecord([]byte(data))
	if err != nil {
		panic(err)
	}
	return r
}

// Raw returns a copy of the record's compacted JSON bytes.
func (r Record) Raw() json.RawMessage {
	return bytes.Clone(r.raw)
}

// Field returns the raw value of a top-level field.
func (r Record) Field(name string) (json.RawMessage, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Len returns the number of distinct top-level fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Equal reports whether two records have identical compacted bytes.
func (r Record) Equal(other Record) bool {
	return bytes.Equal(r.raw, other.raw)
}

// String returns the compacted JSON text.
func (r Record) String() string {
	return string(r.raw)
}

// Key extracts the record's identity from field.
// A missing field or a null value yields a MissingKeyError; any value other
// than a string or a number yields a MalformedDatasetError.
func (r Record) Key(field string) (Key, error) {
	v, ok := r.fields[field]
	if !ok || valueKind(v) == "null" {
		return Key{}, &errors.MissingKeyError{Field: field, Index: -1}
	}

	switch kind := valueKind(v); kind {
	case "string":
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return Key{}, SyntaxError(v, err)
		}
		return StringKey(s), nil
	case "number":
		return NumberKey(string(v)), nil
	default:
		return Key{}, errors.NewMalformedDatasetError(
			fmt.Sprintf("field %q is a JSON %s; keys must be strings or numbers", field, kind), nil)
	}
}

// MarshalJSON returns the record's compacted bytes.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.raw == nil {
		return []byte("null"), nil
	}
	return r.Raw(), nil
}

// UnmarshalJSON parses a JSON object into the record.
func (r *Record) UnmarshalJSON(data []byte) error {
	parsed, err := ParseRecord(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
