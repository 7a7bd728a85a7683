package domain

// InventoryLineRecord is a stock movement line for one fuel type. ClosingStock
// is taken from upstream as is; the pipeline never recomputes it.
type InventoryLineRecord struct {
	FuelType     string
	OpeningStock float64
	StockIn      float64
	StockOut     float64
	ClosingStock float64
	Value        float64
}

// ExpectedClosing is openingStock + stockIn - stockOut.
func (l InventoryLineRecord) ExpectedClosing() float64 {
	return l.OpeningStock + l.StockIn - l.StockOut
}

func (l InventoryLineRecord) Fields() []Field {
	return []Field{
		{Key: "fuelType", Value: l.FuelType},
		{Key: "openingStock", Value: l.OpeningStock},
		{Key: "stockIn", Value: l.StockIn},
		{Key: "stockOut", Value: l.StockOut},
		{Key: "closingStock", Value: l.ClosingStock},
		{Key: "value", Value: l.Value},
	}
}

// InventoryDiscrepancy flags a line whose closing stock does not match its
// movements. Upstream may have reasons (shrinkage, spillage) not modelled here.
type InventoryDiscrepancy struct {
	FuelType        string
	ExpectedClosing float64
	ReportedClosing float64
	Difference      float64
}
