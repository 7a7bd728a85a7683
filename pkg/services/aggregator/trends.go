package aggregator

import (
	"github.com/fsms/report-atlas/pkg/models/domain"
)

// GrowthRate is the percentage change from prev to cur, 0 when prev is 0.
func GrowthRate(cur, prev float64) float64 {
	return domain.Percent(cur-prev, prev)
}

func MonthlyTrends(months []domain.MonthlySalesRecord, est domain.Estimates) []domain.MonthlyTrendPoint {
	points := make([]domain.MonthlyTrendPoint, 0, len(months))
	for _, m := range months {
		points = append(points, domain.MonthlyTrendPoint{
			Label:        m.Period().Label(),
			Year:         m.Year,
			Month:        int(m.Month),
			Revenue:      m.TotalSales,
			Profit:       m.TotalSales * est.TrendProfitRatio,
			Transactions: m.TotalTransactions,
		})
	}
	return points
}

// YearlyBreakdown sums monthly records per year, in the order of years, and
// computes each year's growth against the entry before it. Months of years not
// listed are ignored.
func YearlyBreakdown(years []int, months []domain.MonthlySalesRecord, est domain.Estimates) []domain.YearlyBreakdownPoint {
	index := make(map[int]int, len(years))
	points := make([]domain.YearlyBreakdownPoint, len(years))
	for i, y := range years {
		index[y] = i
		points[i].Year = y
	}

	for _, m := range months {
		i, ok := index[m.Year]
		if !ok {
			continue
		}
		points[i].Revenue += m.TotalSales
		points[i].Transactions += m.TotalTransactions
	}

	for i := range points {
		points[i].Profit = points[i].Revenue * est.TrendProfitRatio
		points[i].AvgMonthlyRevenue = points[i].Revenue / 12
	}
	ApplyGrowth(points)
	return points
}

// ApplyGrowth sets GrowthRate relative to the immediately preceding entry. The
// first entry has no predecessor and always gets 0.
func ApplyGrowth(points []domain.YearlyBreakdownPoint) {
	for i := range points {
		if i == 0 {
			points[i].GrowthRate = 0
			continue
		}
		points[i].GrowthRate = GrowthRate(points[i].Revenue, points[i-1].Revenue)
	}
}
