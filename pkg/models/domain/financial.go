package domain

type FinancialSummaryRecord struct {
	TotalRevenue       float64
	TotalExpenses      float64
	GrossProfit        float64 // estimate: TotalRevenue * Estimates.GrossMarginRatio
	NetProfit          float64
	ProfitMargin       float64 // percent
	IncomeByCategory   map[string]float64
	ExpensesByCategory map[string]float64
}

// EmptyFinancialSummary is the zero-valued summary with non-nil category maps.
func EmptyFinancialSummary() FinancialSummaryRecord {
	return FinancialSummaryRecord{
		IncomeByCategory:   map[string]float64{},
		ExpensesByCategory: map[string]float64{},
	}
}

// CostOfGoodsSold is the revenue not covered by gross profit.
func (f FinancialSummaryRecord) CostOfGoodsSold() float64 {
	return f.TotalRevenue - f.GrossProfit
}

func (f FinancialSummaryRecord) Fields() []Field {
	return []Field{
		{Key: "totalRevenue", Value: f.TotalRevenue},
		{Key: "totalExpenses", Value: f.TotalExpenses},
		{Key: "grossProfit", Value: f.GrossProfit},
		{Key: "netProfit", Value: f.NetProfit},
		{Key: "profitMargin", Value: f.ProfitMargin},
	}
}

type MonthlyTrendPoint struct {
	Label        string
	Year         int
	Month        int
	Revenue      float64
	Profit       float64 // estimate: Revenue * Estimates.TrendProfitRatio
	Transactions int64
}

func (p MonthlyTrendPoint) Fields() []Field {
	return []Field{
		{Key: "month", Value: p.Label},
		{Key: "revenue", Value: p.Revenue},
		{Key: "profit", Value: p.Profit},
		{Key: "transactions", Value: p.Transactions},
	}
}

type YearlyBreakdownPoint struct {
	Year              int
	Revenue           float64
	Profit            float64 // estimate
	Transactions      int64
	AvgMonthlyRevenue float64
	GrowthRate        float64 // percent versus the preceding entry
}

func (p YearlyBreakdownPoint) Fields() []Field {
	return []Field{
		{Key: "year", Value: p.Year},
		{Key: "revenue", Value: p.Revenue},
		{Key: "profit", Value: p.Profit},
		{Key: "transactions", Value: p.Transactions},
		{Key: "avgMonthlyRevenue", Value: p.AvgMonthlyRevenue},
		{Key: "growthRate", Value: p.GrowthRate},
	}
}

// FinancialOverview is the all-time financial view: a long-range summary plus
// trailing trends.
type FinancialOverview struct {
	Summary         FinancialSummaryRecord
	MonthlyTrends   []MonthlyTrendPoint
	YearlyBreakdown []YearlyBreakdownPoint
	MissingPeriods  []string
}

func (o FinancialOverview) Partial() bool {
	return len(o.MissingPeriods) > 0
}
