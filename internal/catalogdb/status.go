package catalogdb

import (
	"fmt"
	"io"
	"slices"

	"github.com/langradar/langradar/schema"
)

// PrintCatalogStatus prints catalog store status information.
func PrintCatalogStatus(w io.Writer, status schema.CatalogStatus) {
	_, _ = fmt.Fprintf(w, "Catalog Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Languages: %d\n", status.Languages)
	if status.Languages > 0 {
		_, _ = fmt.Fprintf(w, "Last Import: %s\n", status.LastImport.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintln(w, "Table Sizes:")
	tables := make([]string, 0, len(status.TableSizes))
	for table := range status.TableSizes {
		tables = append(tables, table)
	}
	slices.Sort(tables)
	for _, table := range tables {
		_, _ = fmt.Fprintf(w, "  %s: %d rows\n", table, status.TableSizes[table])
	}
}

// PrintMigrationResult prints the outcome of a migration run.
func PrintMigrationResult(w io.Writer, result schema.MigrationResult) {
	if !result.Changed {
		_, _ = fmt.Fprintf(w, "No migration needed. Database is already at version %d\n", result.ToVersion)
		return
	}
	_, _ = fmt.Fprintf(w, "Successfully migrated from version %d to version %d\n", result.FromVersion, result.ToVersion)
}
