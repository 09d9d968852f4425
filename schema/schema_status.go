package schema

import "time"

// CatalogStatus represents status information about a SQL catalog store.
type CatalogStatus struct {
	Backend    string           `json:"backend"`
	Connected  bool             `json:"connected"`
	Languages  int64            `json:"languages"`
	LastImport time.Time        `json:"last_import"`
	TableSizes map[string]int64 `json:"table_sizes"`
}

// MigrationResult describes what a schema migration did.
type MigrationResult struct {
	FromVersion uint `json:"from_version"`
	ToVersion   uint `json:"to_version"`
	Changed     bool `json:"changed"`
}
