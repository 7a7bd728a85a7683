package domain

import "time"

// Fuel types broken out as columns in daily sales exports.
const (
	FuelPetrol  = "Petrol"
	FuelDiesel  = "Diesel"
	FuelPremium = "Premium"
)

type DailySalesRecord struct {
	Date              time.Time
	TotalSales        float64
	SalesByFuelType   map[string]float64
	SalesByPump       map[string]float64
	TotalTransactions int64
}

// ZeroDailySales is the placeholder used for a day whose fetch failed.
func ZeroDailySales(date time.Time) DailySalesRecord {
	return DailySalesRecord{
		Date:            TruncateDay(date),
		SalesByFuelType: map[string]float64{},
		SalesByPump:     map[string]float64{},
	}
}

func (d DailySalesRecord) FuelSales(fuel string) float64 {
	return d.SalesByFuelType[fuel]
}

func (d DailySalesRecord) Fields() []Field {
	return []Field{
		{Key: "date", Value: d.Date.Format(DateLayout)},
		{Key: "totalSales", Value: d.TotalSales},
		{Key: "petrol", Value: d.FuelSales(FuelPetrol)},
		{Key: "diesel", Value: d.FuelSales(FuelDiesel)},
		{Key: "premium", Value: d.FuelSales(FuelPremium)},
		{Key: "transactions", Value: d.TotalTransactions},
	}
}

type MonthlySalesRecord struct {
	Year              int
	Month             time.Month
	TotalSales        float64
	TotalTransactions int64
}

func ZeroMonthlySales(p MonthPeriod) MonthlySalesRecord {
	return MonthlySalesRecord{Year: p.Year, Month: p.Month}
}

func (m MonthlySalesRecord) Period() MonthPeriod {
	return MonthPeriod{Year: m.Year, Month: m.Month}
}

func (m MonthlySalesRecord) Fields() []Field {
	return []Field{
		{Key: "year", Value: m.Year},
		{Key: "month", Value: int(m.Month)},
		{Key: "totalSales", Value: m.TotalSales},
		{Key: "totalTransactions", Value: m.TotalTransactions},
	}
}

// PumpPerformanceRecord aggregates per-pump sales over a window. Volume and
// Transactions are estimates derived from sales, not measurements.
type PumpPerformanceRecord struct {
	PumpID            string
	TotalSales        float64
	Volume            float64
	Transactions      int64
	AvgPerTransaction float64
	Estimated         bool
}

func (p PumpPerformanceRecord) Fields() []Field {
	return []Field{
		{Key: "pumpNumber", Value: p.PumpID},
		{Key: "totalSales", Value: p.TotalSales},
		{Key: "volume", Value: p.Volume},
		{Key: "transactions", Value: p.Transactions},
		{Key: "avgPerTransaction", Value: p.AvgPerTransaction},
	}
}

// OverviewMetrics backs the dashboard overview cards.
type OverviewMetrics struct {
	TotalRevenue      float64
	NetProfit         float64
	TotalTransactions int64
	AvgTransaction    float64
	Partial           bool
}
