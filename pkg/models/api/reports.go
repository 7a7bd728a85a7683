package api

// Envelope wraps every reporting API response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data"`
}

type SalesSummary struct {
	TotalSales        float64 `json:"totalSales"`
	TotalTransactions int64   `json:"totalTransactions"`
}

type DailySalesPayload struct {
	Summary         *SalesSummary      `json:"summary"`
	SalesByFuelType map[string]float64 `json:"salesByFuelType"`
	SalesByPump     map[string]float64 `json:"salesByPump"`
}

type MonthlySalesPayload struct {
	Summary *SalesSummary `json:"summary"`
}

type InventoryItem struct {
	FuelType     string  `json:"fuelType"`
	OpeningStock float64 `json:"openingStock"`
	CurrentStock float64 `json:"currentStock"`
	StockIn      float64 `json:"stockIn"`
	StockOut     float64 `json:"stockOut"`
	CostPerLiter float64 `json:"costPerLiter"`
}

type InventoryPayload struct {
	Inventory []InventoryItem `json:"inventory"`
}

type FinancialSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetIncome     float64 `json:"netIncome"`
}

type FinancialSummaryPayload struct {
	Summary            *FinancialSummary  `json:"summary"`
	IncomeByCategory   map[string]float64 `json:"incomeByCategory"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}
