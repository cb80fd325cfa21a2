package utils

import (
	"fmt"
	"strconv"
	"time"
)

// RecentMonths returns the last n YYYYMM strings ending at now, newest first.
func RecentMonths(now time.Time, n int) []string {
	months := make([]string, 0, n)
	y, m := now.Year(), int(now.Month())
	for i := 0; i < n; i++ {
		months = append(months, fmt.Sprintf("%d%02d", y, m))
		m--
		if m == 0 {
			m = 12
			y--
		}
	}
	return months
}

// MonthLabel renders "202501" as "2025년 1월".
func MonthLabel(ym string) string {
	if len(ym) != 6 {
		return ym
	}
	month, err := strconv.Atoi(ym[4:])
	if err != nil {
		return ym
	}
	return fmt.Sprintf("%s년 %d월", ym[:4], month)
}
