package reconcile

import (
	"fmt"

	"github.com/agentstation/transitdata/pkg/dataset"
)

// Result represents the outcome of a reconciliation.
type Result struct {
	// Dataset is the merged dataset, unique by key.
	Dataset dataset.Dataset

	// Changeset describes the merged dataset relative to the base.
	Changeset *Changeset

	// KeyField is the field records were keyed on.
	KeyField string
}

// Changeset classifies every key of the merged dataset.
type Changeset struct {
	Added     []dataset.Key // only in incoming
	Updated   []dataset.Key // in both, incoming record differs
	Unchanged []dataset.Key // in both, records identical
	Retained  []dataset.Key // only in base

	// Records dropped because a later record in the same input reused the key
	BaseDuplicates     int
	IncomingDuplicates int
}

// HasChanges returns true if the merge alters the base dataset.
func (c *Changeset) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Updated) > 0 || c.BaseDuplicates > 0
}

// String returns a one-line description of the changeset.
func (c *Changeset) String() string {
	s := fmt.Sprintf("%d added, %d updated, %d unchanged, %d retained",
		len(c.Added), len(c.Updated), len(c.Unchanged), len(c.Retained))
	if c.BaseDuplicates > 0 || c.IncomingDuplicates > 0 {
		s += fmt.Sprintf(" (duplicates dropped: %d base, %d incoming)", c.BaseDuplicates, c.IncomingDuplicates)
	}
	return s
}

// Len returns the number of records in the merged dataset.
func (r *Result) Len() int {
	return len(r.Dataset)
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if r.Changeset == nil || !r.Changeset.HasChanges() {
		return fmt.Sprintf("Reconciliation completed. No changes detected. Total lines: %d", r.Len())
	}
	return fmt.Sprintf("Reconciliation completed. %s. Total lines: %d", r.Changeset.String(), r.Len())
}
