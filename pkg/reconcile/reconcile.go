// Package reconcile merges an incoming batch of transit-line records into a
// base dataset. Records are matched by key; the incoming record replaces the
// base record whole, and the result keeps each key at the position where it
// was first seen.
//
// Reconciliation is pure: it performs no I/O, holds no shared state and may
// run concurrently on independent inputs.
package reconcile

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/agentstation/transitdata/pkg/dataset"
	"github.com/agentstation/transitdata/pkg/errors"
)

const (
	sourceBase     = "base"
	sourceIncoming = "incoming"
)

// Reconciler merges datasets with a fixed configuration.
type Reconciler struct {
	keyField       string
	strictIncoming bool
}

// New creates a Reconciler with options.
func New(opts ...Option) (*Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Reconciler{
		keyField:       options.keyField,
		strictIncoming: options.strictIncoming,
	}, nil
}

// Reconcile is a convenience wrapper around New and Reconciler.Reconcile.
func Reconcile(base, incoming dataset.Dataset, opts ...Option) (*Result, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Reconcile(base, incoming)
}

// Merge returns only the merged dataset using the default key field.
func Merge(base, incoming dataset.Dataset) (dataset.Dataset, error) {
	res, err := Reconcile(base, incoming)
	if err != nil {
		return nil, err
	}
	return res.Dataset, nil
}

// KeyField returns the field records are keyed on.
func (r *Reconciler) KeyField() string {
	return r.keyField
}

// slot is the merge state of one key.
type slot struct {
	record   dataset.Record
	base     dataset.Record
	inBase   bool
	incoming bool
}

// Reconcile merges incoming into base. Later records win over earlier ones
// with the same key, incoming over base. A record without a key fails the
// whole operation and no partial result is returned.
func (r *Reconciler) Reconcile(base, incoming dataset.Dataset) (*Result, error) {
	merged := orderedmap.New[dataset.Key, slot]()
	changes := &Changeset{}

	for i := range base {
		k, err := r.keyAt(base, i, sourceBase)
		if err != nil {
			return nil, err
		}
		if _, dup := merged.Get(k); dup {
			changes.BaseDuplicates++
		}
		merged.Set(k, slot{record: base[i], base: base[i], inBase: true})
	}

	seen := make(map[dataset.Key]int, len(incoming))
	for i := range incoming {
		k, err := r.keyAt(incoming, i, sourceIncoming)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[k]; dup {
			if r.strictIncoming {
				return nil, &errors.DuplicateKeyError{
					Key:    k.JSON(),
					First:  first,
					Second: i,
					Source: sourceIncoming,
				}
			}
			changes.IncomingDuplicates++
		} else {
			seen[k] = i
		}

		s, _ := merged.Get(k)
		s.record = incoming[i]
		s.incoming = true
		merged.Set(k, s)
	}

	out := make(dataset.Dataset, 0, merged.Len())
	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		s := pair.Value
		out = append(out, s.record)
		switch {
		case !s.incoming:
			changes.Retained = append(changes.Retained, pair.Key)
		case !s.inBase:
			changes.Added = append(changes.Added, pair.Key)
		case s.record.Equal(s.base):
			changes.Unchanged = append(changes.Unchanged, pair.Key)
		default:
			changes.Updated = append(changes.Updated, pair.Key)
		}
	}

	return &Result{
		Dataset:   out,
		Changeset: changes,
		KeyField:  r.keyField,
	}, nil
}

// keyAt returns the key of ds[i], tagging errors with the input's name.
func (r *Reconciler) keyAt(ds dataset.Dataset, i int, source string) (dataset.Key, error) {
	k, err := ds.KeyAt(i, r.keyField)
	if err == nil {
		return k, nil
	}
	var mke *errors.MissingKeyError
	if errors.As(err, &mke) {
		mke.Source = source
		return dataset.Key{}, mke
	}
	var mde *errors.MalformedDatasetError
	if errors.As(err, &mde) {
		mde.Source = source
	}
	return dataset.Key{}, err
}
