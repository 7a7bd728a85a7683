package export

import (
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

const DefaultCurrency = "GHS"

type Options struct {
	// Now stamps the generation date line and the PDF file name.
	Now       func() time.Time
	Currency  string
	SheetName string
}

// Exporter turns records into downloadable artifacts. It holds no state
// between calls.
type Exporter struct {
	opts Options
}

func New(opts Options) *Exporter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if opts.SheetName == "" {
		opts.SheetName = defaultSheet
	}
	return &Exporter{opts: opts}
}

// Document lays out and renders a PDF report.
func (e *Exporter) Document(reportType string, data any, period *domain.DateRange) (*domain.Artifact, error) {
	now := e.opts.Now()
	doc := BuildDocument(reportType, data, period, now, e.opts.Currency)
	content, err := renderPDF(doc, now)
	if err != nil {
		return nil, err
	}
	return &domain.Artifact{
		Name:        DocumentFileName(reportType, now),
		ReportType:  reportType,
		Format:      domain.FormatPDF,
		ContentType: domain.FormatPDF.ContentType(),
		Data:        content,
		GeneratedAt: now,
	}, nil
}

// Export dispatches on a case-insensitive format name: pdf, excel or csv.
func (e *Exporter) Export(reportType, format string, data any, period *domain.DateRange) (*domain.Artifact, error) {
	f, err := domain.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return e.ExportFormat(reportType, f, data, period)
}

func (e *Exporter) ExportFormat(reportType string, f domain.Format, data any, period *domain.DateRange) (*domain.Artifact, error) {
	if f == domain.FormatPDF {
		return e.Document(reportType, data, period)
	}

	records, err := toRecords(data)
	if err != nil {
		return nil, err
	}
	a, err := e.Tabular(records, BaseName(reportType), f)
	if err != nil {
		return nil, err
	}
	a.ReportType = reportType
	return a, nil
}

// Tabular writes records as csv or excel.
func (e *Exporter) Tabular(records []domain.Record, name string, f domain.Format) (*domain.Artifact, error) {
	switch f {
	case domain.FormatCSV:
		return e.DelimitedText(records, name)
	case domain.FormatExcel:
		return e.Spreadsheet(records, name, e.opts.SheetName)
	}
	return nil, &domain.UnsupportedFormatError{Format: string(f)}
}

func (e *Exporter) artifact(name string, f domain.Format, data []byte) *domain.Artifact {
	return &domain.Artifact{
		Name:        fileName(name, f),
		ReportType:  name,
		Format:      f,
		ContentType: f.ContentType(),
		Data:        data,
		GeneratedAt: e.opts.Now(),
	}
}
