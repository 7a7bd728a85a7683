package reports

import (
	"github.com/fsms/report-atlas/pkg/adapters"
	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/services/dashboard"
)

func mapStateToApi(st dashboard.State) api.Dashboard {
	days := make([]api.DailySales, 0, len(st.Sales.Days))
	for _, d := range st.Sales.Days {
		days = append(days, adapters.MapDailySalesDomainToApi(d))
	}
	pumps := make([]api.PumpPerformance, 0, len(st.Sales.Pumps))
	for _, p := range st.Sales.Pumps {
		pumps = append(pumps, adapters.MapPumpDomainToApi(p))
	}

	lines := make([]api.InventoryLine, 0, len(st.Inventory.Lines))
	for _, l := range st.Inventory.Lines {
		lines = append(lines, adapters.MapInventoryDomainToApi(l))
	}
	var discrepancies []api.InventoryDiscrepancy
	for _, d := range st.Inventory.Discrepancies {
		discrepancies = append(discrepancies, adapters.MapDiscrepancyDomainToApi(d))
	}

	allTime := st.Financial.AllTime
	trends := make([]api.MonthlyTrend, 0, len(allTime.MonthlyTrends))
	for _, p := range allTime.MonthlyTrends {
		trends = append(trends, adapters.MapMonthlyTrendDomainToApi(p))
	}
	yearly := make([]api.YearlyBreakdown, 0, len(allTime.YearlyBreakdown))
	for _, p := range allTime.YearlyBreakdown {
		yearly = append(yearly, adapters.MapYearlyBreakdownDomainToApi(p))
	}

	return api.Dashboard{
		StartDate: st.Range.StartDate(),
		EndDate:   st.Range.EndDate(),
		Overview:  adapters.MapOverviewDomainToApi(st.Overview),
		Sales: api.SalesView{
			Days:           days,
			Pumps:          pumps,
			MissingPeriods: st.Sales.MissingPeriods,
		},
		Inventory: api.InventoryView{
			Lines:         lines,
			Discrepancies: discrepancies,
		},
		Financial: api.FinancialView{
			Summary:         adapters.MapFinancialDomainToApi(st.Financial.Summary),
			AllTime:         adapters.MapFinancialDomainToApi(allTime.Summary),
			MonthlyTrends:   trends,
			YearlyBreakdown: yearly,
			MissingPeriods:  allTime.MissingPeriods,
		},
	}
}
