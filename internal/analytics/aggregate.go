// Package analytics implements the spending aggregation, comparison,
// forecasting and alerting computations behind the analytics endpoints.
// Every function is a single pass over records the caller has already
// fetched; nothing here touches the store.
package analytics

import (
	"sort"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/shopspring/decimal"
)

// AggregateByCategory groups expenses by category, producing per-category
// totals and counts. Expenses without a category fall into the
// "Uncategorized" bucket. Totals use exact decimal addition; the result is
// ordered by total descending, then name, so output is deterministic.
func AggregateByCategory(expenses []model.Expense) []model.CategorySpending {
	byName := make(map[string]*model.CategorySpending)

	for i := range expenses {
		e := &expenses[i]
		label := e.CategoryLabel()

		cs, ok := byName[label]
		if !ok {
			cs = &model.CategorySpending{
				CategoryName: label,
			}
			if label != model.UncategorizedName {
				cs.CategoryID = e.CategoryID
				cs.CategoryIcon = e.CategoryIcon
			}
			byName[label] = cs
		}

		cs.Total = cs.Total.Add(e.Amount)
		cs.Count++
	}

	result := make([]model.CategorySpending, 0, len(byName))
	for _, cs := range byName {
		result = append(result, *cs)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].CategoryName < result[j].CategoryName
	})

	return result
}

// TotalSpending sums an aggregation's per-category totals.
func TotalSpending(spending []model.CategorySpending) decimal.Decimal {
	total := decimal.Zero
	for _, cs := range spending {
		total = total.Add(cs.Total)
	}
	return total
}
