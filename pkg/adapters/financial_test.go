package adapters

import (
	"testing"

	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapFinancialSummaryApiToDomain(t *testing.T) {
	testCases := []struct {
		name         string
		payload      *api.FinancialSummaryPayload
		gross        float64
		net          float64
		profitMargin float64
	}{
		{
			name:         "profitable period",
			payload:      &api.FinancialSummaryPayload{Summary: &api.FinancialSummary{TotalRevenue: 1000, TotalExpenses: 600, NetIncome: 400}},
			gross:        400,
			net:          400,
			profitMargin: 40,
		},
		{
			name:    "loss without revenue",
			payload: &api.FinancialSummaryPayload{Summary: &api.FinancialSummary{TotalRevenue: 0, TotalExpenses: 50, NetIncome: -50}},
			net:     -50,
		},
		{
			name:    "no summary",
			payload: &api.FinancialSummaryPayload{},
		},
		{
			name: "nil payload",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapFinancialSummaryApiToDomain(tc.payload, domain.DefaultEstimates())

			assert.InDelta(t, tc.gross, got.GrossProfit, 1e-9)
			assert.InDelta(t, tc.net, got.NetProfit, 1e-9)
			assert.Equal(t, tc.profitMargin, got.ProfitMargin)
			assert.NotNil(t, got.IncomeByCategory)
			assert.NotNil(t, got.ExpensesByCategory)
		})
	}
}
