package export

import (
	"fmt"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Spreadsheet writes records to a single-sheet workbook. The header row is
// bold and numbers are stored as numeric cells.
func (e *Exporter) Spreadsheet(records []domain.Record, name, sheetName string) (*domain.Artifact, error) {
	keys, err := headers(records)
	if err != nil {
		return nil, err
	}
	if sheetName == "" {
		sheetName = defaultSheet
	}

	wb := excelize.NewFile()
	defer func() {
		_ = wb.Close()
	}()

	if sheetName != defaultSheet {
		if err := wb.SetSheetName(defaultSheet, sheetName); err != nil {
			return nil, fmt.Errorf("failed to name sheet %q: %w", sheetName, err)
		}
	}

	for col, k := range keys {
		if err := setCell(wb, sheetName, col+1, 1, k); err != nil {
			return nil, err
		}
	}
	bold, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := wb.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for i, r := range records {
		for col, c := range row(r, keys) {
			if !c.ok {
				continue
			}
			if err := setCell(wb, sheetName, col+1, i+2, c.value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return e.artifact(name, domain.FormatExcel, buf.Bytes()), nil
}

func setCell(wb *excelize.File, sheet string, col, rowNum int, v any) error {
	ref, err := excelize.CoordinatesToCellName(col, rowNum)
	if err != nil {
		return err
	}
	if err := wb.SetCellValue(sheet, ref, v); err != nil {
		return fmt.Errorf("failed to set %s!%s: %w", sheet, ref, err)
	}
	return nil
}
