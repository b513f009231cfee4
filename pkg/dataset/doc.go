// Package dataset models the transit-line dataset: an ordered JSON array of
// records, each an object identified by a key field (idLigne by default).
//
// Records are opaque. A Record keeps the compacted bytes it was decoded from
// and never re-marshals them, so field order, number spelling and string
// escapes are preserved across a decode/encode round trip.
package dataset
