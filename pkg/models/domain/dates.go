package domain

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("invalid date range: start date must not be after end date")

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: TruncateDay(start), End: TruncateDay(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// ParseDateRange parses two YYYY-MM-DD dates.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return NewDateRange(s, e)
}

// LastDays returns the range ending on now's date and starting days before it.
func LastDays(now time.Time, days int) DateRange {
	end := TruncateDay(now)
	return DateRange{Start: end.AddDate(0, 0, -days), End: end}
}

func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return ErrInvalidDateRange
	}
	return nil
}

// Days is the number of calendar days covered, both ends included. Dates are
// compared in UTC so daylight saving shifts do not change the count.
func (r DateRange) Days() int {
	start := civilDay(r.Start)
	end := civilDay(r.End)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether both ranges cover the same instants.
func (r DateRange) Equal(o DateRange) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

func (r DateRange) StartDate() string {
	return r.Start.Format(DateLayout)
}

func (r DateRange) EndDate() string {
	return r.End.Format(DateLayout)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s - %s", r.StartDate(), r.EndDate())
}

// MonthPeriod identifies a calendar month.
type MonthPeriod struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) MonthPeriod {
	return MonthPeriod{Year: t.Year(), Month: t.Month()}
}

// AddMonths steps whole calendar months, always landing on the first of the month.
func (p MonthPeriod) AddMonths(n int) MonthPeriod {
	return MonthOf(time.Date(p.Year, p.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// Label renders the short chart label, e.g. "Jan 25".
func (p MonthPeriod) Label() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}

func (p MonthPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
