package adapters

import (
	"maps"

	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/models/domain"
)

// MapFinancialSummaryApiToDomain derives gross profit and margin from the
// upstream summary. Category maps are passed through verbatim.
func MapFinancialSummaryApiToDomain(payload *api.FinancialSummaryPayload, est domain.Estimates) domain.FinancialSummaryRecord {
	record := domain.EmptyFinancialSummary()
	if payload == nil {
		return record
	}

	if s := payload.Summary; s != nil {
		record.TotalRevenue = s.TotalRevenue
		record.TotalExpenses = s.TotalExpenses
		record.NetProfit = s.NetIncome
		record.GrossProfit = s.TotalRevenue * est.GrossMarginRatio
		record.ProfitMargin = domain.Percent(s.NetIncome, s.TotalRevenue)
	}
	if payload.IncomeByCategory != nil {
		record.IncomeByCategory = maps.Clone(payload.IncomeByCategory)
	}
	if payload.ExpensesByCategory != nil {
		record.ExpensesByCategory = maps.Clone(payload.ExpensesByCategory)
	}
	return record
}

func MapFinancialDomainToApi(f domain.FinancialSummaryRecord) api.Financial {
	income := f.IncomeByCategory
	if income == nil {
		income = map[string]float64{}
	}
	expenses := f.ExpensesByCategory
	if expenses == nil {
		expenses = map[string]float64{}
	}
	return api.Financial{
		TotalRevenue:       f.TotalRevenue,
		TotalExpenses:      f.TotalExpenses,
		GrossProfit:        f.GrossProfit,
		NetProfit:          f.NetProfit,
		ProfitMargin:       f.ProfitMargin,
		IncomeByCategory:   income,
		ExpensesByCategory: expenses,
	}
}

func MapMonthlyTrendDomainToApi(p domain.MonthlyTrendPoint) api.MonthlyTrend {
	return api.MonthlyTrend{
		Month:        p.Label,
		Revenue:      p.Revenue,
		Profit:       p.Profit,
		Transactions: p.Transactions,
	}
}

func MapYearlyBreakdownDomainToApi(p domain.YearlyBreakdownPoint) api.YearlyBreakdown {
	return api.YearlyBreakdown{
		Year:              p.Year,
		Revenue:           p.Revenue,
		Profit:            p.Profit,
		Transactions:      p.Transactions,
		AvgMonthlyRevenue: p.AvgMonthlyRevenue,
		GrowthRate:        p.GrowthRate,
	}
}
