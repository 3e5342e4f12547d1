package analytics

import (
	"testing"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func budget(categoryID *int64, categoryName, amount string, threshold *float64) model.Budget {
	return model.Budget{
		UserID:         "user-1",
		CategoryID:     categoryID,
		CategoryName:   categoryName,
		Amount:         dec(amount),
		Period:         "monthly",
		AlertThreshold: threshold,
		IsActive:       true,
	}
}

func categorySpend(id int64, name, total string) model.CategorySpending {
	return model.CategorySpending{
		CategoryID:   &id,
		CategoryName: name,
		Total:        dec(total),
	}
}

func TestGenerateAlerts_BudgetThreshold(t *testing.T) {
	forecast := model.Forecast{CurrentSpent: dec("900")}
	current := []model.CategorySpending{
		categorySpend(1, "Groceries", "450"),
		categorySpend(2, "Dining", "100"),
	}

	tests := []struct {
		name          string
		budgets       []model.Budget
		wantCount     int
		wantSeverity  model.AlertSeverity
		wantCategory  string
	}{
		{
			name:         "at threshold fires warning",
			budgets:      []model.Budget{budget(int64Ptr(1), "Groceries", "500", floatPtr(0.9))},
			wantCount:    1,
			wantSeverity: model.SeverityWarning,
			wantCategory: "Groceries",
		},
		{
			name:         "over budget fires critical",
			budgets:      []model.Budget{budget(int64Ptr(1), "Groceries", "400", floatPtr(0.8))},
			wantCount:    1,
			wantSeverity: model.SeverityCritical,
			wantCategory: "Groceries",
		},
		{
			name:      "under threshold stays quiet",
			budgets:   []model.Budget{budget(int64Ptr(2), "Dining", "500", floatPtr(0.8))},
			wantCount: 0,
		},
		{
			name:         "overall budget uses total spend",
			budgets:      []model.Budget{budget(nil, "", "1000", floatPtr(0.9))},
			wantCount:    1,
			wantSeverity: model.SeverityWarning,
		},
		{
			name:      "category with no spend stays quiet",
			budgets:   []model.Budget{budget(int64Ptr(99), "Ghost", "100", floatPtr(0.5))},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateAlerts(forecast, tt.budgets, current, decimal.Zero)

			require.Len(t, got, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, model.AlertBudgetThreshold, got[0].Kind)
				assert.Equal(t, tt.wantSeverity, got[0].Severity)
				assert.Equal(t, tt.wantCategory, got[0].CategoryName)
				assert.NotEmpty(t, got[0].Message)
			}
		})
	}
}

func TestGenerateAlerts_MalformedBudgetSkippedNotFatal(t *testing.T) {
	forecast := model.Forecast{CurrentSpent: dec("450")}
	current := []model.CategorySpending{categorySpend(1, "Groceries", "450")}

	budgets := []model.Budget{
		budget(int64Ptr(1), "Groceries", "500", nil),           // no threshold
		budget(int64Ptr(1), "Groceries", "0", floatPtr(0.9)),   // zero amount
		budget(int64Ptr(1), "Groceries", "500", floatPtr(1.5)), // threshold out of range
		budget(int64Ptr(1), "Groceries", "500", floatPtr(0.9)), // valid, should fire
	}

	var got []model.Alert
	require.NotPanics(t, func() {
		got = GenerateAlerts(forecast, budgets, current, decimal.Zero)
	})

	require.Len(t, got, 1, "only the well-formed budget produces an alert")
	assert.Equal(t, "Groceries", got[0].CategoryName)
}

func TestGenerateAlerts_SpendingTrend(t *testing.T) {
	tests := []struct {
		name          string
		projected     string
		previousMonth string
		want          bool
	}{
		{name: "well above last month", projected: "1200", previousMonth: "1000", want: true},
		{name: "within margin", projected: "1050", previousMonth: "1000", want: false},
		{name: "exactly at margin", projected: "1100", previousMonth: "1000", want: false},
		{name: "no previous month", projected: "1200", previousMonth: "0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast := model.Forecast{ProjectedTotal: dec(tt.projected)}
			got := GenerateAlerts(forecast, nil, nil, dec(tt.previousMonth))

			if !tt.want {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, model.AlertSpendingTrend, got[0].Kind)
			assert.Equal(t, model.SeverityWarning, got[0].Severity)
		})
	}
}

func TestGenerateAlerts_MultipleRulesFireIndependently(t *testing.T) {
	forecast := model.Forecast{
		CurrentSpent:   dec("900"),
		ProjectedTotal: dec("1500"),
	}
	current := []model.CategorySpending{categorySpend(1, "Groceries", "450")}
	budgets := []model.Budget{
		budget(int64Ptr(1), "Groceries", "500", floatPtr(0.9)),
		budget(nil, "", "1000", floatPtr(0.8)),
	}

	got := GenerateAlerts(forecast, budgets, current, dec("1000"))

	require.Len(t, got, 3)
	assert.Equal(t, model.AlertBudgetThreshold, got[0].Kind)
	assert.Equal(t, model.AlertBudgetThreshold, got[1].Kind)
	assert.Equal(t, model.AlertSpendingTrend, got[2].Kind)
}
