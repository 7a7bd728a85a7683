package export

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// BaseName turns a report type into a file name stem, e.g. "Daily_Sales_Report".
func BaseName(reportType string) string {
	return whitespaceRun.ReplaceAllString(reportType, "_")
}

// DocumentFileName is <ReportType>_<YYYY-MM-DD>.pdf.
func DocumentFileName(reportType string, generated time.Time) string {
	return fmt.Sprintf("%s_%s.%s", BaseName(reportType), generated.Format(domain.DateLayout), domain.FormatPDF.Extension())
}

func fileName(name string, f domain.Format) string {
	return name + "." + f.Extension()
}

// amount renders v with exactly two decimals, rounding half away from zero.
func amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func money(currency string, v float64) string {
	if currency == "" {
		return amount(v)
	}
	return currency + " " + amount(v)
}

func percent(v float64) string {
	return amount(v) + "%"
}

// cellText renders a record value for delimited text. Missing values are "".
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(domain.DateLayout)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
