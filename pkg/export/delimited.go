package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

// DelimitedText writes records as comma separated text with a header row and
// LF line endings. Values containing the delimiter, quotes or newlines are
// quoted.
func (e *Exporter) DelimitedText(records []domain.Record, name string) (*domain.Artifact, error) {
	keys, err := headers(records)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(keys); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, r := range records {
		cells := row(r, keys)
		line := make([]string, len(cells))
		for j, c := range cells {
			if c.ok {
				line[j] = cellText(c.value)
			}
		}
		if err := w.Write(line); err != nil {
			return nil, fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return e.artifact(name, domain.FormatCSV, buf.Bytes()), nil
}
