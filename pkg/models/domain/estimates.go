package domain

// Estimates holds the fixed ratios layered on top of authoritative revenue
// figures. Everything derived from them is an approximation.
type Estimates struct {
	// GrossMarginRatio derives gross profit from revenue.
	GrossMarginRatio float64 `mapstructure:"gross_margin_ratio"`
	// TrendProfitRatio derives profit for monthly trends and yearly breakdowns.
	TrendProfitRatio float64 `mapstructure:"trend_profit_ratio"`
	// PricePerLiter converts pump sales into volume.
	PricePerLiter float64 `mapstructure:"price_per_liter"`
	// AverageTicket converts pump sales into a transaction count.
	AverageTicket float64 `mapstructure:"average_ticket"`
	// DefaultCostPerLiter values stock when upstream has no cost.
	DefaultCostPerLiter float64 `mapstructure:"default_cost_per_liter"`
}

func DefaultEstimates() Estimates {
	return Estimates{
		GrossMarginRatio:    0.4,
		TrendProfitRatio:    0.25,
		PricePerLiter:       6.5,
		AverageTicket:       300,
		DefaultCostPerLiter: 6.5,
	}
}
