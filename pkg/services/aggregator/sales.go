package aggregator

import (
	"math"
	"slices"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

// AggregatePumps sums per-pump sales across the window. Volume and transaction
// counts are estimated from the summed sales with the configured divisors.
func AggregatePumps(days []domain.DailySalesRecord, est domain.Estimates) []domain.PumpPerformanceRecord {
	totals := make(map[string]float64)
	for _, day := range days {
		for pump, sales := range day.SalesByPump {
			totals[pump] += sales
		}
	}

	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	pumps := make([]domain.PumpPerformanceRecord, 0, len(ids))
	for _, id := range ids {
		sales := totals[id]
		transactions := int64(math.Floor(domain.SafeDiv(sales, est.AverageTicket)))
		pumps = append(pumps, domain.PumpPerformanceRecord{
			PumpID:            id,
			TotalSales:        sales,
			Volume:            domain.SafeDiv(sales, est.PricePerLiter),
			Transactions:      transactions,
			AvgPerTransaction: domain.SafeDiv(sales, float64(transactions)),
			Estimated:         true,
		})
	}
	return pumps
}

type SalesTotals struct {
	TotalSales        float64
	TotalTransactions int64
}

func SumDailySales(days []domain.DailySalesRecord) SalesTotals {
	var t SalesTotals
	for _, d := range days {
		t.TotalSales += d.TotalSales
		t.TotalTransactions += d.TotalTransactions
	}
	return t
}

// Overview combines the financial summary with the transaction count of a
// daily window.
func Overview(summary domain.FinancialSummaryRecord, days []domain.DailySalesRecord) domain.OverviewMetrics {
	totals := SumDailySales(days)
	return domain.OverviewMetrics{
		TotalRevenue:      summary.TotalRevenue,
		NetProfit:         summary.NetProfit,
		TotalTransactions: totals.TotalTransactions,
		AvgTransaction:    domain.SafeDiv(summary.TotalRevenue, float64(totals.TotalTransactions)),
	}
}
