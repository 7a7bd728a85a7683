package api

import "time"

// Response models served by the web API.

type DailySales struct {
	Date         string  `json:"date"`
	TotalSales   float64 `json:"totalSales"`
	Petrol       float64 `json:"petrol"`
	Diesel       float64 `json:"diesel"`
	Premium      float64 `json:"premium"`
	Transactions int64   `json:"transactions"`
}

type PumpPerformance struct {
	PumpNumber        string  `json:"pumpNumber"`
	TotalSales        float64 `json:"totalSales"`
	Volume            float64 `json:"volume"`
	Transactions      int64   `json:"transactions"`
	AvgPerTransaction float64 `json:"avgPerTransaction"`
	Estimated         bool    `json:"estimated"`
}

type InventoryLine struct {
	FuelType     string  `json:"fuelType"`
	OpeningStock float64 `json:"openingStock"`
	StockIn      float64 `json:"stockIn"`
	StockOut     float64 `json:"stockOut"`
	ClosingStock float64 `json:"closingStock"`
	Value        float64 `json:"value"`
}

type InventoryDiscrepancy struct {
	FuelType        string  `json:"fuelType"`
	ExpectedClosing float64 `json:"expectedClosing"`
	ReportedClosing float64 `json:"reportedClosing"`
	Difference      float64 `json:"difference"`
}

type Financial struct {
	TotalRevenue       float64            `json:"totalRevenue"`
	TotalExpenses      float64            `json:"totalExpenses"`
	GrossProfit        float64            `json:"grossProfit"`
	NetProfit          float64            `json:"netProfit"`
	ProfitMargin       float64            `json:"profitMargin"`
	IncomeByCategory   map[string]float64 `json:"incomeByCategory"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}

type MonthlyTrend struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	Transactions int64   `json:"transactions"`
}

type YearlyBreakdown struct {
	Year              int     `json:"year"`
	Revenue           float64 `json:"revenue"`
	Profit            float64 `json:"profit"`
	Transactions      int64   `json:"transactions"`
	AvgMonthlyRevenue float64 `json:"avgMonthlyRevenue"`
	GrowthRate        float64 `json:"growthRate"`
}

type Overview struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	NetProfit         float64 `json:"netProfit"`
	TotalTransactions int64   `json:"totalTransactions"`
	AvgTransaction    float64 `json:"avgTransaction"`
}

type SalesView struct {
	Days           []DailySales      `json:"days"`
	Pumps          []PumpPerformance `json:"pumps"`
	MissingPeriods []string          `json:"missingPeriods,omitempty"`
}

type InventoryView struct {
	Lines         []InventoryLine        `json:"lines"`
	Discrepancies []InventoryDiscrepancy `json:"discrepancies,omitempty"`
}

type FinancialView struct {
	Summary         Financial         `json:"summary"`
	AllTime         Financial         `json:"allTime"`
	MonthlyTrends   []MonthlyTrend    `json:"monthlyTrends"`
	YearlyBreakdown []YearlyBreakdown `json:"yearlyBreakdown"`
	MissingPeriods  []string          `json:"missingPeriods,omitempty"`
}

type Dashboard struct {
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Overview  Overview      `json:"overview"`
	Sales     SalesView     `json:"sales"`
	Inventory InventoryView `json:"inventory"`
	Financial FinancialView `json:"financial"`
}

type GenerateResponse struct {
	Token       string    `json:"token"`
	FileName    string    `json:"fileName"`
	ReportType  string    `json:"reportType"`
	Format      string    `json:"format"`
	Partial     bool      `json:"partial"`
	ExpiresAt   time.Time `json:"expiresAt"`
	DownloadURL string    `json:"downloadUrl"`
}

type ExportHistoryEntry struct {
	ID         string    `json:"id"`
	ReportType string    `json:"reportType"`
	Format     string    `json:"format"`
	FileName   string    `json:"fileName"`
	SizeBytes  int64     `json:"sizeBytes"`
	Partial    bool      `json:"partial"`
	Location   string    `json:"location,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
