package export

import (
	"fmt"
	"slices"
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

type BlockKind int

const (
	BlockText BlockKind = iota
	BlockHeading
	BlockTable
)

// Block is one element of a Document body, laid out top to bottom.
type Block struct {
	Kind     BlockKind
	Text     string
	Bold     bool
	Indent   bool
	Centered bool
	Table    *Table
}

type Table struct {
	Header []string
	Rows   [][]string
}

// Document is the page layout of a PDF report before rendering.
type Document struct {
	Title  string
	Header []string
	Body   []Block
}

// Lines returns every text line of the document in order, tables excluded.
func (d Document) Lines() []string {
	lines := append([]string{d.Title}, d.Header...)
	for _, b := range d.Body {
		if b.Kind != BlockTable {
			lines = append(lines, b.Text)
		}
	}
	return lines
}

// Tables returns the tables of the document body.
func (d Document) Tables() []Table {
	var tables []Table
	for _, b := range d.Body {
		if b.Kind == BlockTable && b.Table != nil {
			tables = append(tables, *b.Table)
		}
	}
	return tables
}

func (d *Document) heading(text string) {
	d.Body = append(d.Body, Block{Kind: BlockHeading, Text: text, Bold: true})
}

func (d *Document) text(text string) {
	d.Body = append(d.Body, Block{Kind: BlockText, Text: text})
}

func (d *Document) item(text string, bold bool) {
	d.Body = append(d.Body, Block{Kind: BlockText, Text: text, Bold: bold, Indent: true})
}

func (d *Document) total(text string) {
	d.Body = append(d.Body, Block{Kind: BlockText, Text: text, Bold: true})
}

func (d *Document) table(header []string, rows [][]string) {
	d.Body = append(d.Body, Block{Kind: BlockTable, Table: &Table{Header: header, Rows: rows}})
}

// BuildDocument lays out a report. Unknown report types get a placeholder
// body instead of an error.
func BuildDocument(reportType string, data any, period *domain.DateRange, generated time.Time, currency string) Document {
	doc := Document{
		Title:  reportType,
		Header: []string{"Generated on: " + generated.Format(domain.DateLayout)},
	}
	if period != nil {
		doc.Header = append(doc.Header, fmt.Sprintf("Period: %s - %s", period.StartDate(), period.EndDate()))
	}

	switch reportType {
	case domain.ReportDailySales:
		days, _ := data.([]domain.DailySalesRecord)
		dailySalesBody(&doc, days, currency)
	case domain.ReportInventory:
		lines, _ := data.([]domain.InventoryLineRecord)
		inventoryBody(&doc, lines, currency)
	case domain.ReportProfitLoss:
		profitLossBody(&doc, financialData(data), currency)
	default:
		doc.Body = append(doc.Body, Block{Kind: BlockText, Text: "No data available", Centered: true})
	}
	return doc
}

func financialData(data any) *domain.FinancialSummaryRecord {
	switch v := data.(type) {
	case domain.FinancialSummaryRecord:
		return &v
	case *domain.FinancialSummaryRecord:
		return v
	}
	return nil
}

func dailySalesBody(doc *Document, days []domain.DailySalesRecord, currency string) {
	if len(days) == 0 {
		doc.text("No sales data available")
		return
	}

	rows := make([][]string, 0, len(days))
	var totalSales float64
	var totalTransactions int64
	for _, d := range days {
		rows = append(rows, []string{
			d.Date.Format(domain.DateLayout),
			amount(d.TotalSales),
			amount(d.FuelSales(domain.FuelPetrol)),
			amount(d.FuelSales(domain.FuelDiesel)),
			amount(d.FuelSales(domain.FuelPremium)),
			fmt.Sprintf("%d", d.TotalTransactions),
		})
		totalSales += d.TotalSales
		totalTransactions += d.TotalTransactions
	}

	doc.table([]string{"Date", "Total Sales", "Petrol", "Diesel", "Premium", "Transactions"}, rows)
	doc.total("Total Sales: " + money(currency, totalSales))
	doc.total(fmt.Sprintf("Total Transactions: %d", totalTransactions))
}

func inventoryBody(doc *Document, lines []domain.InventoryLineRecord, currency string) {
	if len(lines) == 0 {
		doc.text("No inventory data available")
		return
	}

	rows := make([][]string, 0, len(lines))
	var totalStock, totalValue float64
	for _, l := range lines {
		rows = append(rows, []string{
			l.FuelType,
			amount(l.OpeningStock),
			amount(l.StockIn),
			amount(l.StockOut),
			amount(l.ClosingStock),
			amount(l.Value),
		})
		totalStock += l.ClosingStock
		totalValue += l.Value
	}

	doc.table([]string{"Fuel Type", "Opening", "Stock In", "Stock Out", "Closing", "Value"}, rows)
	doc.total(fmt.Sprintf("Total Stock: %s L", amount(totalStock)))
	doc.total("Total Value: " + money(currency, totalValue))
}

func profitLossBody(doc *Document, f *domain.FinancialSummaryRecord, currency string) {
	if f == nil {
		doc.text("No financial data available")
		return
	}

	doc.heading("Revenue")
	doc.item("Fuel Sales: "+money(currency, f.TotalRevenue), false)
	doc.item("Total Revenue: "+money(currency, f.TotalRevenue), true)

	doc.heading("Expenses")
	doc.item("Cost of Goods Sold: "+money(currency, f.CostOfGoodsSold()), false)
	doc.item("Operating Expenses: "+money(currency, f.TotalExpenses), false)
	doc.item("Total Expenses: "+money(currency, f.TotalExpenses), true)

	doc.heading("Summary")
	doc.item("Gross Profit: "+money(currency, f.GrossProfit), false)
	doc.item("Net Profit: "+money(currency, f.NetProfit), true)
	doc.item("Profit Margin: "+percent(domain.Percent(f.NetProfit, f.TotalRevenue)), true)
	doc.item("Gross profit and cost of goods sold are estimates.", false)

	if len(f.IncomeByCategory) == 0 {
		return
	}
	doc.heading("Income by Category")
	categories := make([]string, 0, len(f.IncomeByCategory))
	for c := range f.IncomeByCategory {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	for _, c := range categories {
		doc.item(fmt.Sprintf("%s: %s", c, money(currency, f.IncomeByCategory[c])), false)
	}
}
