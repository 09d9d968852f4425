package schema

// EnrichedLanguage adds presentation data to a Language.
type EnrichedLanguage struct {
	Rank     int     `json:"rank"`
	Selected bool    `json:"selected"`
	Average  float64 `json:"average"`
	Language
}

// EnrichLanguages adds rank, selection mark and average score to a list of languages.
func EnrichLanguages(langs []Language, selected func(id string) bool) []EnrichedLanguage {
	output := make([]EnrichedLanguage, len(langs))
	for i, l := range langs {
		output[i] = EnrichedLanguage{
			Rank:     i + 1,
			Selected: selected != nil && selected(l.ID),
			Average:  AverageScore(l),
			Language: l,
		}
	}
	return output
}

// Preview returns at most PreviewItems leading items, as shown on list cards.
func Preview(items []string) []string {
	if len(items) <= PreviewItems {
		return items
	}
	return items[:PreviewItems]
}

// AverageScore returns the mean of a language's scores over the six subjects.
// Missing subjects count as zero.
func AverageScore(l Language) float64 {
	subjects := AllSubjects()
	idx := l.Index()
	sum := 0.0
	for _, s := range subjects {
		sum += idx[s]
	}
	return sum / float64(len(subjects))
}

// ListResult is the ranked list view printed by the list command and the browse session.
type ListResult struct {
	SearchQuery string             `json:"search_query"`
	SortKey     SortKey            `json:"sort_key"`
	CatalogSize int                `json:"catalog_size"`
	Selection   []string           `json:"selection"`
	Entries     []EnrichedLanguage `json:"entries"`
	Charts      []MetricChart      `json:"-"` // Aligned with Entries; only filled for card previews
	ResetHint   string             `json:"-"` // How the caller clears filters, shown with the empty-result notice
}

// DetailResult is the full card of one language with its radar chart.
type DetailResult struct {
	Language
	Average float64     `json:"average"`
	Chart   MetricChart `json:"-"`
}

// ComparisonResult is the comparison panel: overlaid chart data plus full detail cards.
type ComparisonResult struct {
	Selection []string        `json:"selection"`         // Ids in selection order
	Languages []Language      `json:"languages"`         // Detail cards in selection order
	Series    []ComparisonRow `json:"comparison_series"` // Six rows when the selection is non-empty
	Unknown   []string        `json:"unknown,omitempty"`
	Rejected  []string        `json:"rejected,omitempty"`
	Chart     ComparisonChart `json:"-"`
}

// SubjectsResult describes the sort keys and the shared metric scale.
type SubjectsResult struct {
	Subjects []SubjectInfo `json:"subjects"`
	Scale    Scale         `json:"scale"`
}
