// Package validate checks that a file is well-formed JSON and, optionally,
// that it has the shape of a line dataset.
package validate

import (
	"bytes"
	"encoding/json"

	"github.com/tailscale/hujson"

	"github.com/agentstation/transitdata/pkg/dataset"
	"github.com/agentstation/transitdata/pkg/errors"
)

// Report is the outcome of a successful validation.
type Report struct {
	// Kind is the JSON type of the top-level value.
	Kind string `json:"kind" yaml:"kind"`

	// Records is the record count when dataset checks ran.
	Records int `json:"records,omitempty" yaml:"records,omitempty"`

	// KeyField is the key checked by dataset validation.
	KeyField string `json:"key_field,omitempty" yaml:"key_field,omitempty"`

	// DuplicateKeys lists keys (in JSON form) seen more than once.
	DuplicateKeys []string `json:"duplicate_keys,omitempty" yaml:"duplicate_keys,omitempty"`
}

// HasWarnings returns true if validation passed with findings.
func (r *Report) HasWarnings() bool {
	return len(r.DuplicateKeys) > 0
}

type options struct {
	jsonc    bool
	dataset  bool
	keyField string
}

// Option configures validation.
type Option func(*options)

// WithJSONC accepts comments and trailing commas.
func WithJSONC() Option {
	return func(o *options) {
		o.jsonc = true
	}
}

// WithDataset also requires an array of records that all carry keyField.
func WithDataset(keyField string) Option {
	return func(o *options) {
		o.dataset = true
		o.keyField = keyField
	}
}

// JSON fully parses data. Any syntax error, including data after the first
// value, is returned as a MalformedDatasetError with its position.
func JSON(data []byte, opts ...Option) (*Report, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.jsonc {
		std, err := hujson.Standardize(bytes.Clone(data))
		if err != nil {
			return nil, errors.NewMalformedDatasetError(err.Error(), err)
		}
		data = std
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewMalformedDatasetError("no JSON value found", nil)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, dataset.SyntaxError(data, err)
	}

	report := &Report{Kind: dataset.Kind(data)}
	if !o.dataset {
		return report, nil
	}

	ds, err := dataset.Decode(data)
	if err != nil {
		return nil, err
	}
	report.Records = len(ds)
	report.KeyField = o.keyField

	seen := make(map[dataset.Key]int, len(ds))
	for i := range ds {
		k, err := ds.KeyAt(i, o.keyField)
		if err != nil {
			return nil, err
		}
		seen[k]++
		if seen[k] == 2 {
			report.DuplicateKeys = append(report.DuplicateKeys, k.JSON())
		}
	}

	return report, nil
}
