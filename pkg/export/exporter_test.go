package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fixedClock() time.Time {
	return time.Date(2025, time.May, 7, 9, 0, 0, 0, time.UTC)
}

func newTestExporter() *Exporter {
	return New(Options{Now: fixedClock})
}

func sampleDays() []domain.DailySalesRecord {
	days := make([]domain.DailySalesRecord, 3)
	for i := range days {
		days[i] = domain.ZeroDailySales(time.Date(2025, time.May, i+1, 0, 0, 0, 0, time.UTC))
	}
	days[0].TotalSales = 100
	days[0].SalesByFuelType[domain.FuelPetrol] = 60
	days[0].SalesByFuelType[domain.FuelDiesel] = 40
	days[0].TotalTransactions = 3
	days[2].TotalSales = 150.5
	days[2].TotalTransactions = 2
	return days
}

func TestDelimitedText_RoundTripKeepsHeadersAndRowCount(t *testing.T) {
	// Given
	days := sampleDays()

	// When
	a, err := newTestExporter().DelimitedText(domain.Records(days), "daily_sales")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "daily_sales.csv", a.Name)
	assert.Equal(t, "text/csv; charset=utf-8", a.ContentType)
	assert.NotContains(t, string(a.Data), "\r\n")

	rows, err := csv.NewReader(bytes.NewReader(a.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(days)+1)
	assert.Equal(t, []string{"date", "totalSales", "petrol", "diesel", "premium", "transactions"}, rows[0])
	assert.Equal(t, []string{"2025-05-01", "100", "60", "40", "0", "3"}, rows[1])
	assert.Equal(t, []string{"2025-05-03", "150.5", "0", "0", "0", "2"}, rows[3])
}

func TestDelimitedText_QuotesDelimiterAndFillsMissing(t *testing.T) {
	records := []domain.Record{
		domain.MapRecord{{Key: "name", Value: "Shop, Main"}, {Key: "amount", Value: 12.5}},
		domain.MapRecord{{Key: "name", Value: "Lube bay"}},
	}

	a, err := newTestExporter().DelimitedText(records, "income")

	require.NoError(t, err)
	assert.Equal(t, "name,amount\n\"Shop, Main\",12.5\nLube bay,\n", string(a.Data))
}

func TestTabularExports_EmptyInputFails(t *testing.T) {
	e := newTestExporter()
	tests := []struct {
		name    string
		records []domain.Record
	}{
		{name: "no records", records: nil},
		{name: "first record without fields", records: []domain.Record{domain.MapRecord{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csvArtifact, err := e.DelimitedText(tt.records, "x")
			assert.ErrorIs(t, err, domain.ErrEmptyData)
			assert.Nil(t, csvArtifact)

			xlsx, err := e.Spreadsheet(tt.records, "x", "")
			assert.ErrorIs(t, err, domain.ErrEmptyData)
			assert.Nil(t, xlsx)
		})
	}
}

func TestSpreadsheet_InventoryLine(t *testing.T) {
	// Given
	lines := []domain.InventoryLineRecord{{
		FuelType:     domain.FuelPetrol,
		OpeningStock: 1000,
		StockIn:      500,
		StockOut:     300,
		ClosingStock: 1200,
		Value:        7800,
	}}

	// When
	a, err := newTestExporter().Spreadsheet(domain.Records(lines), "inventory", "")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "inventory.xlsx", a.Name)

	wb, err := excelize.OpenReader(bytes.NewReader(a.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"fuelType", "openingStock", "stockIn", "stockOut", "closingStock", "value"}, rows[0])
	assert.Equal(t, []string{"Petrol", "1000", "500", "300", "1200", "7800"}, rows[1])
}

func TestSpreadsheet_CustomSheetName(t *testing.T) {
	a, err := newTestExporter().Spreadsheet(domain.Records(sampleDays()), "sales", "Daily Sales")
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(a.Data))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Daily Sales"}, wb.GetSheetList())
	rows, err := wb.GetRows("Daily Sales")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestBuildDocument_ProfitLoss(t *testing.T) {
	// Given
	summary := domain.FinancialSummaryRecord{
		TotalRevenue:     1000,
		GrossProfit:      400,
		TotalExpenses:    300,
		NetProfit:        400,
		IncomeByCategory: map[string]float64{"Shop": 50, "Car wash": 25.5},
	}
	period := domain.DateRange{
		Start: time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC),
	}

	// When
	doc := BuildDocument(domain.ReportProfitLoss, summary, &period, fixedClock(), "GHS")

	// Then
	lines := doc.Lines()
	assert.Equal(t, "Profit & Loss Statement", doc.Title)
	assert.Equal(t, []string{"Generated on: 2025-05-07", "Period: 2025-04-07 - 2025-05-07"}, doc.Header)
	assert.Contains(t, lines, "Cost of Goods Sold: GHS 600.00")
	assert.Contains(t, lines, "Net Profit: GHS 400.00")
	assert.Contains(t, lines, "Profit Margin: 40.00%")
	assert.Contains(t, lines, "Operating Expenses: GHS 300.00")
	assert.Empty(t, doc.Tables())

	carWash := indexOf(lines, "Car wash: GHS 25.50")
	shop := indexOf(lines, "Shop: GHS 50.00")
	assert.Greater(t, carWash, indexOf(lines, "Income by Category"))
	assert.Less(t, carWash, shop)
}

func TestBuildDocument_ProfitLossWithoutCategories(t *testing.T) {
	doc := BuildDocument(domain.ReportProfitLoss, &domain.FinancialSummaryRecord{TotalRevenue: 0}, nil, fixedClock(), "GHS")

	assert.Len(t, doc.Header, 1)
	assert.Contains(t, doc.Lines(), "Profit Margin: 0.00%")
	assert.NotContains(t, doc.Lines(), "Income by Category")
}

func TestBuildDocument_DailySales(t *testing.T) {
	doc := BuildDocument(domain.ReportDailySales, sampleDays(), nil, fixedClock(), "GHS")

	tables := doc.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Date", "Total Sales", "Petrol", "Diesel", "Premium", "Transactions"}, tables[0].Header)
	require.Len(t, tables[0].Rows, 3)
	assert.Equal(t, []string{"2025-05-01", "100.00", "60.00", "40.00", "0.00", "3"}, tables[0].Rows[0])
	assert.Contains(t, doc.Lines(), "Total Sales: GHS 250.50")
	assert.Contains(t, doc.Lines(), "Total Transactions: 5")
}

func TestBuildDocument_Inventory(t *testing.T) {
	lines := []domain.InventoryLineRecord{
		{FuelType: domain.FuelPetrol, ClosingStock: 1200, Value: 7800},
		{FuelType: domain.FuelDiesel, ClosingStock: 300.25, Value: 1950},
	}

	doc := BuildDocument(domain.ReportInventory, lines, nil, fixedClock(), "GHS")

	require.Len(t, doc.Tables(), 1)
	assert.Equal(t, []string{"Fuel Type", "Opening", "Stock In", "Stock Out", "Closing", "Value"}, doc.Tables()[0].Header)
	assert.Contains(t, doc.Lines(), "Total Stock: 1500.25 L")
	assert.Contains(t, doc.Lines(), "Total Value: GHS 9750.00")
}

func TestBuildDocument_UnknownTypeRendersPlaceholder(t *testing.T) {
	doc := BuildDocument("Shift Report", sampleDays(), nil, fixedClock(), "GHS")

	require.Len(t, doc.Body, 1)
	assert.Equal(t, "No data available", doc.Body[0].Text)
	assert.True(t, doc.Body[0].Centered)
}

func TestBuildDocument_EmptyDailySales(t *testing.T) {
	doc := BuildDocument(domain.ReportDailySales, []domain.DailySalesRecord{}, nil, fixedClock(), "GHS")

	assert.Contains(t, doc.Lines(), "No sales data available")
	assert.Empty(t, doc.Tables())
}

func TestExport_DispatchesByFormat(t *testing.T) {
	e := newTestExporter()
	tests := []struct {
		format     string
		wantName   string
		wantType   string
		wantPrefix string
	}{
		{format: "PDF", wantName: "Daily_Sales_Report_2025-05-07.pdf", wantType: "application/pdf", wantPrefix: "%PDF"},
		{format: "csv", wantName: "Daily_Sales_Report.csv", wantType: "text/csv; charset=utf-8", wantPrefix: "date,"},
		{format: "Excel", wantName: "Daily_Sales_Report.xlsx", wantType: domain.FormatExcel.ContentType(), wantPrefix: "PK"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			a, err := e.Export(domain.ReportDailySales, tt.format, sampleDays(), nil)

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, a.Name)
			assert.Equal(t, tt.wantType, a.ContentType)
			assert.Equal(t, domain.ReportDailySales, a.ReportType)
			assert.True(t, strings.HasPrefix(string(a.Data), tt.wantPrefix))
			assert.Equal(t, fixedClock(), a.GeneratedAt)
		})
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	a, err := newTestExporter().Export(domain.ReportDailySales, "docx", sampleDays(), nil)

	var formatErr *domain.UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "docx", formatErr.Format)
	assert.Nil(t, a)
}

func TestExport_SingleRecordAndEmptySlices(t *testing.T) {
	e := newTestExporter()

	a, err := e.Export(domain.ReportProfitLoss, "csv", domain.FinancialSummaryRecord{TotalRevenue: 1000}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Profit_&_Loss_Statement.csv", a.Name)

	_, err = e.Export(domain.ReportInventory, "excel", []domain.InventoryLineRecord{}, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyData)

	_, err = e.Export(domain.ReportInventory, "csv", nil, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyData)
}

func TestDocumentFileName_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "Profit_&_Loss_Statement_2025-05-07.pdf", DocumentFileName("Profit &  Loss\tStatement", fixedClock()))
}

func TestMoneyFormatting(t *testing.T) {
	assert.Equal(t, "GHS 0.10", money("GHS", 0.1))
	assert.Equal(t, "1234.57", money("", 1234.567))
	assert.Equal(t, "40.00%", percent(40))
}

func indexOf(lines []string, s string) int {
	for i, l := range lines {
		if l == s {
			return i
		}
	}
	return -1
}

func TestDocument_SameInputRendersSameBytes(t *testing.T) {
	// Given
	e := newTestExporter()
	lines := []domain.InventoryLineRecord{
		{FuelType: domain.FuelPetrol, OpeningStock: 1000, StockIn: 500, StockOut: 300, ClosingStock: 1200, Value: 7800},
	}

	// When
	first, err := e.Document(domain.ReportInventory, lines, nil)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	second, err := e.Document(domain.ReportInventory, lines, nil)
	require.NoError(t, err)

	// Then
	assert.Contains(t, string(first.Data), "/CreationDate (D:20250507090000")
	assert.True(t, bytes.Equal(first.Data, second.Data), "rendered PDFs differ")
}

func TestBuildDocument_ProfitLossWithLossAndNoRevenue(t *testing.T) {
	summary := &domain.FinancialSummaryRecord{TotalRevenue: 0, TotalExpenses: 50, NetProfit: -50}

	doc := BuildDocument(domain.ReportProfitLoss, summary, nil, fixedClock(), "GHS")

	assert.Contains(t, doc.Lines(), "Net Profit: GHS -50.00")
	assert.Contains(t, doc.Lines(), "Profit Margin: 0.00%")
}
