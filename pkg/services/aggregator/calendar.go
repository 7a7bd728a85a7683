package aggregator

import (
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
)

// TrailingDays returns n calendar days ending on now's date, oldest first.
func TrailingDays(now time.Time, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	today := domain.TruncateDay(now)
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = today.AddDate(0, 0, i-(n-1))
	}
	return days
}

// TrailingMonths returns n calendar months ending on now's month, oldest first.
func TrailingMonths(now time.Time, n int) []domain.MonthPeriod {
	if n <= 0 {
		return []domain.MonthPeriod{}
	}
	current := domain.MonthOf(now)
	months := make([]domain.MonthPeriod, n)
	for i := 0; i < n; i++ {
		months[i] = current.AddMonths(i - (n - 1))
	}
	return months
}

// TrailingYears returns n calendar years ending on now's year, oldest first.
func TrailingYears(now time.Time, n int) []int {
	if n <= 0 {
		return []int{}
	}
	years := make([]int, n)
	for i := 0; i < n; i++ {
		years[i] = now.Year() - (n - 1) + i
	}
	return years
}

// MonthsOfYears lists January through December of every year in order.
func MonthsOfYears(years []int) []domain.MonthPeriod {
	months := make([]domain.MonthPeriod, 0, len(years)*12)
	for _, y := range years {
		for m := time.January; m <= time.December; m++ {
			months = append(months, domain.MonthPeriod{Year: y, Month: m})
		}
	}
	return months
}
