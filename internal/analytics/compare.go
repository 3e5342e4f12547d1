package analytics

import (
	"sort"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryChange describes how one category's spend moved between two
// periods. DeltaPercent is nil when the previous total is zero and the
// current total is not: the percent change is undefined there, and callers
// see an explicit null rather than a division fault.
type CategoryChange struct {
	DeltaPercent *float64        `json:"delta_percent"`
	CategoryName string          `json:"category_name"`
	CategoryIcon string          `json:"category_icon,omitempty"`
	Current      decimal.Decimal `json:"current_total"`
	Previous     decimal.Decimal `json:"previous_total"`
	Delta        decimal.Decimal `json:"delta"`
	IsNew        bool            `json:"is_new"`
	IsDropped    bool            `json:"is_dropped"`
}

// Comparison is the full diff of two aggregated periods.
type Comparison struct {
	TotalDeltaPercent *float64         `json:"total_delta_percent"`
	Categories        []CategoryChange `json:"categories"`
	CurrentTotal      decimal.Decimal  `json:"current_total"`
	PreviousTotal     decimal.Decimal  `json:"previous_total"`
	TotalDelta        decimal.Decimal  `json:"total_delta"`
}

// Compare diffs two category-spending sets. Categories present in only one
// period appear with the other side's total at zero and are flagged as new
// or dropped.
func Compare(current, previous []model.CategorySpending) Comparison {
	names := make([]string, 0, len(current)+len(previous))
	curByName := make(map[string]model.CategorySpending, len(current))
	prevByName := make(map[string]model.CategorySpending, len(previous))

	for _, cs := range current {
		curByName[cs.CategoryName] = cs
		names = append(names, cs.CategoryName)
	}
	for _, cs := range previous {
		if _, seen := curByName[cs.CategoryName]; !seen {
			names = append(names, cs.CategoryName)
		}
		prevByName[cs.CategoryName] = cs
	}

	changes := make([]CategoryChange, 0, len(names))
	for _, name := range names {
		cur, inCurrent := curByName[name]
		prev, inPrevious := prevByName[name]

		change := CategoryChange{
			CategoryName: name,
			Current:      cur.Total,
			Previous:     prev.Total,
			Delta:        cur.Total.Sub(prev.Total),
			DeltaPercent: PercentChange(cur.Total, prev.Total),
			IsNew:        inCurrent && !inPrevious,
			IsDropped:    inPrevious && !inCurrent,
		}
		if change.CategoryIcon = cur.CategoryIcon; change.CategoryIcon == "" {
			change.CategoryIcon = prev.CategoryIcon
		}
		changes = append(changes, change)
	}

	// Biggest absolute movement first; ties alphabetical.
	sort.Slice(changes, func(i, j int) bool {
		ai, aj := changes[i].Delta.Abs(), changes[j].Delta.Abs()
		if !ai.Equal(aj) {
			return ai.GreaterThan(aj)
		}
		return changes[i].CategoryName < changes[j].CategoryName
	})

	currentTotal := TotalSpending(current)
	previousTotal := TotalSpending(previous)

	return Comparison{
		Categories:        changes,
		CurrentTotal:      currentTotal,
		PreviousTotal:     previousTotal,
		TotalDelta:        currentTotal.Sub(previousTotal),
		TotalDeltaPercent: PercentChange(currentTotal, previousTotal),
	}
}

// PercentChange computes (current-previous)/previous as a percentage.
// A zero previous with nonzero current yields nil, the undefined sentinel.
func PercentChange(current, previous decimal.Decimal) *float64 {
	if previous.IsZero() {
		if current.IsZero() {
			zero := 0.0
			return &zero
		}
		return nil
	}

	pct := current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
	return &pct
}
