// Package constants provides shared constants used throughout transitdata.
// This includes file permissions, default paths and formatting values that
// must agree between the reconciler, the store and the CLI.
package constants

// FilePermissions is the permission for newly created dataset files (rw-r--r--).
const FilePermissions = 0644

// Dataset constants
const (
	// DefaultKeyField is the field that identifies a transit line record
	DefaultKeyField = "idLigne"

	// NameField holds the human-readable line name
	NameField = "nomLigne"

	// RouteField holds the outbound/return stop lists
	RouteField = "itineraire"
)

// Formatting constants
const (
	// DefaultMergeIndent is the indentation used when writing a merged dataset
	DefaultMergeIndent = 4

	// DefaultRepairIndent is the indentation used when rewriting a repaired file
	DefaultRepairIndent = 2

	// MaxIndent bounds indentation flags
	MaxIndent = 16
)

// Default file locations, relative to the working directory
const (
	// DefaultBasePath is the durable line dataset
	DefaultBasePath = "src/data/etusa_raw.json"

	// DefaultIncomingPath is the batch merged into the base dataset
	DefaultIncomingPath = "src/data/new_batch.json"

	// DefaultStopsPath is the stops file checked by validate and repair
	DefaultStopsPath = "src/data/alger_stops.json"
)

// Application constants
const (
	// AppName is the binary and config file stem
	AppName = "transitdata"

	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "TRANSITDATA"
)
