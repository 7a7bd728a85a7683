package aggregator

import (
	"math"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

// DefaultStockTolerance is the largest closing-stock mismatch, in liters,
// treated as rounding.
const DefaultStockTolerance = 0.01

// InventoryDiscrepancies lists lines where closing != opening + in - out
// beyond tolerance. Lines are reported, never corrected.
func InventoryDiscrepancies(lines []domain.InventoryLineRecord, tolerance float64) []domain.InventoryDiscrepancy {
	var out []domain.InventoryDiscrepancy
	for _, l := range lines {
		expected := l.ExpectedClosing()
		diff := l.ClosingStock - expected
		if math.Abs(diff) <= tolerance {
			continue
		}
		out = append(out, domain.InventoryDiscrepancy{
			FuelType:        l.FuelType,
			ExpectedClosing: expected,
			ReportedClosing: l.ClosingStock,
			Difference:      diff,
		})
	}
	return out
}

type InventoryTotals struct {
	ClosingStock float64
	Value        float64
}

func SumInventory(lines []domain.InventoryLineRecord) InventoryTotals {
	var t InventoryTotals
	for _, l := range lines {
		t.ClosingStock += l.ClosingStock
		t.Value += l.Value
	}
	return t
}
