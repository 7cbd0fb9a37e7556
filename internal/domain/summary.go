package domain

import "github.com/shopspring/decimal"

// ChartPalette is the fixed color cycle used by the dashboard pie charts.
// Colors are assigned to categories by sort rank, wrapping around.
var ChartPalette = []string{
	"#4F8EF7",
	"#00C853",
	"#FF7043",
	"#AB47BC",
	"#29B6F6",
	"#FFA000",
}

// CategorySlice is one category's share of a summary.
type CategorySlice struct {
	Label      string          `json:"label"`
	Total      decimal.Decimal `json:"total"`
	ColorIndex int             `json:"colorIndex"`
	Color      string          `json:"color"`
}

// CategorySummary is the categorized breakdown for a single view, sorted by
// total descending. It is derived data, recomputed on every call and never
// stored.
type CategorySummary struct {
	Slices []CategorySlice `json:"slices"`
	Total  decimal.Decimal `json:"total"`
}
