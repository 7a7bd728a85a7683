package export

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/models/store"
	"github.com/fsms/report-atlas/pkg/services/aggregator"
	"github.com/fsms/report-atlas/pkg/services/dashboard"
)

const overviewTemplate = `
Fuel Station Reports
Period: {{.Range.StartDate}} to {{.Range.EndDate}}
Total Revenue: {{money .Overview.TotalRevenue}}
Net Profit: {{money .Overview.NetProfit}}
Transactions (7 days): {{.Overview.TotalTransactions}}
Average Transaction: {{money .Overview.AvgTransaction}}{{if .Overview.Partial}} (partial){{end}}
`

func (c *Reporter) Overview(st dashboard.State) error {
	t, err := template.New("overview").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%s %.2f", c.config.Currency, v) },
	}).Parse(overviewTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, st)
}

func (c *Reporter) Sales(st dashboard.State) error {
	note := missingNote(st.Sales.MissingPeriods)
	if err := c.Table("Daily Sales", domain.Records(st.Sales.Days), note); err != nil {
		return err
	}
	return c.Table("Pump Performance (estimated)", domain.Records(st.Sales.Pumps), "")
}

func (c *Reporter) Inventory(st dashboard.State) error {
	var notes []string
	if len(st.Inventory.Lines) > 0 {
		totals := aggregator.SumInventory(st.Inventory.Lines)
		notes = append(notes, fmt.Sprintf("Total Stock: %.2f L, Total Value: %s %.2f",
			totals.ClosingStock, c.config.Currency, totals.Value))
	}
	if n := len(st.Inventory.Discrepancies); n > 0 {
		parts := make([]string, 0, n)
		for _, d := range st.Inventory.Discrepancies {
			parts = append(parts, fmt.Sprintf("%s (%+.2f L)", d.FuelType, d.Difference))
		}
		notes = append(notes, "Closing stock mismatch: "+strings.Join(parts, ", "))
	}
	return c.Table("Inventory Movement", domain.Records(st.Inventory.Lines), strings.Join(notes, "\n"))
}

func (c *Reporter) Financial(st dashboard.State) error {
	summary := st.Financial.Summary
	if err := c.Table("Financial Summary", []domain.Record{summary}, "Gross profit is an estimate."); err != nil {
		return err
	}
	allTime := st.Financial.AllTime
	note := missingNote(allTime.MissingPeriods)
	if err := c.Table("Monthly Trends", domain.Records(allTime.MonthlyTrends), note); err != nil {
		return err
	}
	return c.Table("Yearly Breakdown", domain.Records(allTime.YearlyBreakdown), "")
}

// Tab prints one dashboard tab, or every tab for an empty name.
func (c *Reporter) Tab(tab dashboard.Tab, st dashboard.State) error {
	switch tab {
	case dashboard.TabOverview:
		return c.Overview(st)
	case dashboard.TabSales:
		return c.Sales(st)
	case dashboard.TabInventory:
		return c.Inventory(st)
	case dashboard.TabFinancial:
		return c.Financial(st)
	}
	for _, show := range []func(dashboard.State) error{c.Overview, c.Sales, c.Inventory, c.Financial} {
		if err := show(st); err != nil {
			return err
		}
	}
	return nil
}

func (c *Reporter) History(records []store.ExportRecord) error {
	rows := make([]domain.Record, 0, len(records))
	for _, r := range records {
		rows = append(rows, domain.MapRecord{
			{Key: "created", Value: r.CreatedAt.Format("2006-01-02 15:04")},
			{Key: "report", Value: r.ReportType},
			{Key: "format", Value: r.Format},
			{Key: "file", Value: r.FileName},
			{Key: "bytes", Value: r.SizeBytes},
			{Key: "partial", Value: r.Partial},
			{Key: "location", Value: r.Location},
		})
	}
	return c.Table("Export History", rows, "")
}

func missingNote(periods []string) string {
	if len(periods) == 0 {
		return ""
	}
	return "Missing data (shown as zero): " + strings.Join(periods, ", ")
}
