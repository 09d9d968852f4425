package schema

import "strings"

// Custom string types for type safety.
type (
	// Subject is one of the six fixed metric categories.
	Subject string

	// SortKey is either NoSort or a Subject label.
	SortKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// CatalogBackend represents where the catalog is loaded from.
	CatalogBackend string

	// ToggleOutcome describes what a selection toggle did.
	ToggleOutcome string
)

// The six fixed subjects, in canonical axis order.
const (
	Performance Subject = "Performans"
	Learning    Subject = "Öğrenme"
	Ecosystem   Subject = "Ekosistem"
	Flexibility Subject = "Esneklik"
	DevSpeed    Subject = "Geliştirme Hızı"
	Career      Subject = "Kariyer"
)

// NoSort keeps the natural catalog order.
const NoSort SortKey = "none"

// MaxSelection is the comparison cap.
const MaxSelection = 3

// PreviewItems is how many pros/cons a list card shows.
const PreviewItems = 2

// Scale bounds shared by every metric point.
const (
	ScaleMin = 0.0
	ScaleMax = 10.0
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	SVGOut     OutputMode = "svg"
)

// All catalog backends supported.
const (
	EmbeddedBackend   CatalogBackend = "embedded" // default
	FileBackend       CatalogBackend = "file"
	SQLiteBackend     CatalogBackend = "sqlite"
	MySQLBackend      CatalogBackend = "mysql"
	PostgreSQLBackend CatalogBackend = "postgresql"
)

// All toggle outcomes.
const (
	ToggleAdded    ToggleOutcome = "added"
	ToggleRemoved  ToggleOutcome = "removed"
	ToggleIgnored  ToggleOutcome = "ignored"  // unknown id
	ToggleRejected ToggleOutcome = "rejected" // selection already full
)

// SubjectInfo describes a subject for display and ranking.
type SubjectInfo struct {
	Subject        Subject `json:"subject"`
	Alias          string  `json:"alias"`            // ASCII name accepted on the command line
	Description    string  `json:"description"`      // English gloss
	SortLabel      string  `json:"sort_label"`       // Label of the sort option
	HigherIsBetter bool    `json:"higher_is_better"` // Ranking direction; every bundled subject ranks highest first
}

// Subjects lists every subject in canonical order.
var Subjects = []SubjectInfo{
	{Performance, "performance", "Runtime performance", "En Yüksek Performans", true},
	{Learning, "learning", "Ease of learning", "En Kolay Öğrenme", true},
	{Ecosystem, "ecosystem", "Ecosystem breadth", "En Geniş Ekosistem", true},
	{Flexibility, "flexibility", "Flexibility", "En Esnek", true},
	{DevSpeed, "devspeed", "Development speed", "En Hızlı Geliştirme", true},
	{Career, "career", "Career prospects", "En İyi Kariyer İmkanı", true},
}

// AllSubjects returns the canonical subject order.
func AllSubjects() []Subject {
	out := make([]Subject, len(Subjects))
	for i, s := range Subjects {
		out[i] = s.Subject
	}
	return out
}

// AllSortKeys returns NoSort followed by every subject.
func AllSortKeys() []SortKey {
	keys := []SortKey{NoSort}
	for _, s := range Subjects {
		keys = append(keys, SortKey(s.Subject))
	}
	return keys
}

// LookupSubject returns the info of a subject label.
func LookupSubject(s Subject) (SubjectInfo, bool) {
	for _, info := range Subjects {
		if info.Subject == s {
			return info, true
		}
	}
	return SubjectInfo{}, false
}

// ParseSortKey resolves user input into a sort key. It accepts "none", "default" and
// the empty string for the natural order, and subject labels or aliases (case-insensitive).
func ParseSortKey(s string) (SortKey, bool) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "", "none", "default":
		return NoSort, true
	}
	for _, info := range Subjects {
		if strings.EqualFold(trimmed, string(info.Subject)) || strings.EqualFold(trimmed, info.Alias) {
			return SortKey(info.Subject), true
		}
	}
	return "", false
}

// Subject returns the subject a sort key ranks by. It is false for NoSort.
func (k SortKey) Subject() (Subject, bool) {
	if k == NoSort || k == "" {
		return "", false
	}
	return Subject(k), true
}

// Valid reports whether the key is NoSort or a known subject.
func (k SortKey) Valid() bool {
	if k == NoSort {
		return true
	}
	_, ok := LookupSubject(Subject(k))
	return ok
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	SVGOut:     {},
}

// ValidCatalogBackends lists all valid catalog backends.
var ValidCatalogBackends = map[CatalogBackend]struct{}{
	EmbeddedBackend:   {},
	FileBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// IsDatabase reports whether the backend is a SQL store.
func (b CatalogBackend) IsDatabase() bool {
	switch b {
	case SQLiteBackend, MySQLBackend, PostgreSQLBackend:
		return true
	default:
		return false
	}
}
