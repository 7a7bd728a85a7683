package export

import (
	"fmt"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

// headers returns the column order taken from the first record.
func headers(records []domain.Record) ([]string, error) {
	if len(records) == 0 || records[0] == nil {
		return nil, domain.ErrEmptyData
	}
	fields := records[0].Fields()
	if len(fields) == 0 {
		return nil, domain.ErrEmptyData
	}
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys, nil
}

// row aligns a record to the header order. Keys the record lacks come back
// with ok=false.
func row(record domain.Record, keys []string) []cell {
	values := make(map[string]any)
	if record != nil {
		for _, f := range record.Fields() {
			values[f.Key] = f.Value
		}
	}
	cells := make([]cell, len(keys))
	for i, k := range keys {
		v, ok := values[k]
		cells[i] = cell{value: v, ok: ok && v != nil}
	}
	return cells
}

type cell struct {
	value any
	ok    bool
}

// toRecords accepts the shapes the report services hand to the exporter.
func toRecords(data any) ([]domain.Record, error) {
	switch v := data.(type) {
	case nil:
		return nil, domain.ErrEmptyData
	case []domain.Record:
		return v, nil
	case []domain.DailySalesRecord:
		return domain.Records(v), nil
	case []domain.MonthlySalesRecord:
		return domain.Records(v), nil
	case []domain.PumpPerformanceRecord:
		return domain.Records(v), nil
	case []domain.InventoryLineRecord:
		return domain.Records(v), nil
	case []domain.MonthlyTrendPoint:
		return domain.Records(v), nil
	case []domain.YearlyBreakdownPoint:
		return domain.Records(v), nil
	case []domain.FinancialSummaryRecord:
		return domain.Records(v), nil
	case []domain.MapRecord:
		return domain.Records(v), nil
	case *domain.FinancialSummaryRecord:
		if v == nil {
			return nil, domain.ErrEmptyData
		}
		return []domain.Record{*v}, nil
	case domain.Record:
		return []domain.Record{v}, nil
	}
	return nil, fmt.Errorf("cannot export data of type %T", data)
}
