package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Report types understood by the document exporter.
const (
	ReportDailySales = "Daily Sales Report"
	ReportInventory  = "Inventory Report"
	ReportProfitLoss = "Profit & Loss Statement"
)

type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
)

var ErrEmptyData = errors.New("no data available for this report")

type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q", e.Format)
}

type UnknownReportTypeError struct {
	Name string
}

func (e *UnknownReportTypeError) Error() string {
	return fmt.Sprintf("unknown report type: %q", e.Name)
}

// ParseFormat is case-insensitive; "xlsx" is accepted for excel.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", &UnsupportedFormatError{Format: s}
}

func (f Format) Extension() string {
	switch f {
	case FormatExcel:
		return "xlsx"
	default:
		return string(f)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	}
	return "application/octet-stream"
}

// ParseReportType resolves the names used by dashboard actions to a report type.
func ParseReportType(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "daily sales", "daily sales report", "daily-sales", "sales":
		return ReportDailySales, nil
	case "inventory", "inventory report":
		return ReportInventory, nil
	case "p&l statement", "profit & loss", "profit & loss statement", "profit-loss", "pnl":
		return ReportProfitLoss, nil
	}
	return "", &UnknownReportTypeError{Name: name}
}

// Artifact is a generated download.
type Artifact struct {
	Name        string
	ReportType  string
	Format      Format
	ContentType string
	Data        []byte
	GeneratedAt time.Time
	Partial     bool
}
