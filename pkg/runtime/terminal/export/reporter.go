package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

type TableConfig struct {
	MinColumnWidth int
	MaxColumnWidth int
	Currency       string
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MinColumnWidth: 8,
		MaxColumnWidth: 40,
		Currency:       "GHS",
	}
}

// Reporter prints records as fixed-width text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// WithCurrency sets the currency code printed next to money values.
func (c *Reporter) WithCurrency(currency string) *Reporter {
	if currency != "" {
		c.config.Currency = currency
	}
	return c
}

type table struct {
	Title  string
	Header []string
	Rows   [][]string
	Note   string
}

// Table prints records under a title. The first record's fields name the
// columns; note, when set, is printed under the table.
func (c *Reporter) Table(title string, records []domain.Record, note string) error {
	t := table{Title: title, Note: note}
	if len(records) > 0 {
		for _, f := range records[0].Fields() {
			t.Header = append(t.Header, f.Key)
		}
	}
	for _, r := range records {
		row := make([]string, 0, len(t.Header))
		for _, f := range r.Fields() {
			row = append(row, formatValue(f.Value))
		}
		t.Rows = append(t.Rows, row)
	}

	widths := c.widths(t)
	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				var cell string
				if i < len(cells) {
					cell = truncate(cells[i], w)
				}
				parts[i] = fmt.Sprintf(" %-*s ", w, cell)
			}
			return "|" + strings.Join(parts, "|") + "|"
		},
		"separator": func() string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				parts[i] = strings.Repeat("-", w+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl := `
=== {{.Title}} ===
{{if .Header}}{{separator}}
{{formatRow .Header}}
{{separator}}
{{range .Rows}}{{formatRow .}}
{{end}}{{separator}}
{{else}}No data available
{{end}}{{if .Note}}{{.Note}}
{{end}}`

	tp, err := template.New("table").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return tp.Execute(c.writer, t)
}

func (c *Reporter) widths(t table) []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = max(c.config.MinColumnWidth, utf8.RuneCountInString(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], c.config.MaxColumnWidth)
	}
	return widths
}

func formatValue(v any) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", val)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "~"
}
