package adapters

import (
	"maps"
	"time"

	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/models/domain"
)

func MapDailySalesApiToDomain(date time.Time, payload *api.DailySalesPayload) domain.DailySalesRecord {
	record := domain.ZeroDailySales(date)
	if payload == nil {
		return record
	}
	if payload.Summary != nil {
		record.TotalSales = payload.Summary.TotalSales
		record.TotalTransactions = payload.Summary.TotalTransactions
	}
	if payload.SalesByFuelType != nil {
		record.SalesByFuelType = maps.Clone(payload.SalesByFuelType)
	}
	if payload.SalesByPump != nil {
		record.SalesByPump = maps.Clone(payload.SalesByPump)
	}
	return record
}

func MapMonthlySalesApiToDomain(period domain.MonthPeriod, payload *api.MonthlySalesPayload) domain.MonthlySalesRecord {
	record := domain.ZeroMonthlySales(period)
	if payload == nil || payload.Summary == nil {
		return record
	}
	record.TotalSales = payload.Summary.TotalSales
	record.TotalTransactions = payload.Summary.TotalTransactions
	return record
}

func MapDailySalesDomainToApi(record domain.DailySalesRecord) api.DailySales {
	return api.DailySales{
		Date:         record.Date.Format(domain.DateLayout),
		TotalSales:   record.TotalSales,
		Petrol:       record.FuelSales(domain.FuelPetrol),
		Diesel:       record.FuelSales(domain.FuelDiesel),
		Premium:      record.FuelSales(domain.FuelPremium),
		Transactions: record.TotalTransactions,
	}
}

func MapPumpDomainToApi(record domain.PumpPerformanceRecord) api.PumpPerformance {
	return api.PumpPerformance{
		PumpNumber:        record.PumpID,
		TotalSales:        record.TotalSales,
		Volume:            record.Volume,
		Transactions:      record.Transactions,
		AvgPerTransaction: record.AvgPerTransaction,
		Estimated:         record.Estimated,
	}
}

func MapOverviewDomainToApi(m domain.OverviewMetrics) api.Overview {
	return api.Overview{
		TotalRevenue:      m.TotalRevenue,
		NetProfit:         m.NetProfit,
		TotalTransactions: m.TotalTransactions,
		AvgTransaction:    m.AvgTransaction,
	}
}
