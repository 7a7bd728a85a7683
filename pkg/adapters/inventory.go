package adapters

import (
	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/models/domain"
)

// MapInventoryItemApiToDomain normalizes an upstream stock line. A missing
// opening stock is reconstructed from the movements; a missing cost per liter
// falls back to defaultCostPerLiter.
func MapInventoryItemApiToDomain(item api.InventoryItem, defaultCostPerLiter float64) domain.InventoryLineRecord {
	opening := item.OpeningStock
	if opening == 0 {
		opening = item.CurrentStock - item.StockIn + item.StockOut
	}
	cost := item.CostPerLiter
	if cost == 0 {
		cost = defaultCostPerLiter
	}

	return domain.InventoryLineRecord{
		FuelType:     item.FuelType,
		OpeningStock: opening,
		StockIn:      item.StockIn,
		StockOut:     item.StockOut,
		ClosingStock: item.CurrentStock,
		Value:        item.CurrentStock * cost,
	}
}

func MapInventoryApiToDomain(payload *api.InventoryPayload, defaultCostPerLiter float64) []domain.InventoryLineRecord {
	if payload == nil {
		return []domain.InventoryLineRecord{}
	}
	lines := make([]domain.InventoryLineRecord, 0, len(payload.Inventory))
	for _, item := range payload.Inventory {
		lines = append(lines, MapInventoryItemApiToDomain(item, defaultCostPerLiter))
	}
	return lines
}

func MapInventoryDomainToApi(line domain.InventoryLineRecord) api.InventoryLine {
	return api.InventoryLine{
		FuelType:     line.FuelType,
		OpeningStock: line.OpeningStock,
		StockIn:      line.StockIn,
		StockOut:     line.StockOut,
		ClosingStock: line.ClosingStock,
		Value:        line.Value,
	}
}

func MapDiscrepancyDomainToApi(d domain.InventoryDiscrepancy) api.InventoryDiscrepancy {
	return api.InventoryDiscrepancy{
		FuelType:        d.FuelType,
		ExpectedClosing: d.ExpectedClosing,
		ReportedClosing: d.ReportedClosing,
		Difference:      d.Difference,
	}
}
