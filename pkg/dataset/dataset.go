package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/transitdata/pkg/errors"
)

// Dataset is an ordered sequence of records.
type Dataset []Record

// Decode parses a JSON array of objects. Any other top-level shape, a non
// object element or trailing data after the array is a MalformedDatasetError.
func Decode(data []byte) (Dataset, error) {
	if kind := valueKind(data); kind != "array" {
		if kind == "empty" {
			return nil, errors.NewMalformedDatasetError("no JSON value found", nil)
		}
		if !json.Valid(data) {
			var v any
			return nil, SyntaxError(data, json.Unmarshal(data, &v))
		}
		return nil, errors.NewMalformedDatasetError(
			fmt.Sprintf("expected a JSON array of records, found a JSON %s", kind), nil)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, SyntaxError(data, err)
	}

	ds := make(Dataset, 0, len(elems))
	for i, elem := range elems {
		rec, err := ParseRecord(elem)
		if err != nil {
			if mde, ok := err.(*errors.MalformedDatasetError); ok {
				mde.Message = fmt.Sprintf("record %d: %s", i, mde.Message)
			}
			return nil, err
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

// Read decodes a dataset from r.
func Read(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Marshal encodes ds as a JSON array. Records are indented with indent
// spaces; zero produces compact output. The result ends with a newline.
func Marshal(ds Dataset, indent int) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, rec := range ds {
		if rec.raw == nil {
			return nil, errors.NewValidationError("record", i, "zero Record cannot be encoded")
		}
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.Write(rec.raw)
	}
	compact.WriteByte(']')

	if indent <= 0 {
		compact.WriteByte('\n')
		return compact.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Encode writes ds to w as Marshal does.
func Encode(w io.Writer, ds Dataset, indent int) error {
	data, err := Marshal(ds, indent)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Clone returns a shallow copy of ds. Records are immutable, so sharing
// them between datasets is safe.
func (ds Dataset) Clone() Dataset {
	if ds == nil {
		return Dataset{}
	}
	out := make(Dataset, len(ds))
	copy(out, ds)
	return out
}

// Equal reports whether two datasets hold equal records in the same order.
func (ds Dataset) Equal(other Dataset) bool {
	if len(ds) != len(other) {
		return false
	}
	for i := range ds {
		if !ds[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// KeyAt returns the key of the i-th record, with the index recorded in any
// MissingKeyError.
func (ds Dataset) KeyAt(i int, field string) (Key, error) {
	k, err := ds[i].Key(field)
	if err != nil {
		if mke, ok := err.(*errors.MissingKeyError); ok {
			mke.Index = i
		}
		if mde, ok := err.(*errors.MalformedDatasetError); ok {
			mde.Message = fmt.Sprintf("record %d: %s", i, mde.Message)
		}
		return Key{}, err
	}
	return k, nil
}

// Keys returns every record's key in order.
func (ds Dataset) Keys(field string) ([]Key, error) {
	keys := make([]Key, 0, len(ds))
	for i := range ds {
		k, err := ds.KeyAt(i, field)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
