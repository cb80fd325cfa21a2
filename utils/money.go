package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatPrice renders a 10,000 KRW amount the way Korean listings do:
// 억 with one decimal from 1억 upward, comma-grouped 만 below.
func FormatPrice(tenK float64) string {
	if tenK >= 10000 {
		return fmt.Sprintf("%.1f억", tenK/10000)
	}
	return humanize.Comma(int64(math.Round(tenK))) + "만"
}

// FormatCount renders a row count as "1,234건".
func FormatCount(n int) string {
	return humanize.Comma(int64(n)) + "건"
}
