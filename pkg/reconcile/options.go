package reconcile

import (
	"strings"

	"github.com/agentstation/transitdata/pkg/constants"
	"github.com/agentstation/transitdata/pkg/errors"
)

// options configures a Reconciler.
type options struct {
	keyField       string
	strictIncoming bool
}

func defaultOptions() *options {
	return &options{
		keyField: constants.DefaultKeyField,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithKeyField sets the field that identifies a record. Defaults to idLigne.
func WithKeyField(field string) Option {
	return func(o *options) error {
		if strings.TrimSpace(field) == "" {
			return &errors.ValidationError{
				Field:   "key_field",
				Message: "cannot be empty",
			}
		}
		o.keyField = field
		return nil
	}
}

// WithStrictIncoming rejects an incoming batch that repeats a key instead of
// letting the later record win.
func WithStrictIncoming() Option {
	return func(o *options) error {
		o.strictIncoming = true
		return nil
	}
}
