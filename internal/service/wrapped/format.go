package wrapped

import (
	"strconv"
	"strings"
)

// formatCompact renders counts in en-US compact notation: 1200000 becomes
// "1.2M", 12345678 becomes "12M", values under 1000 stay plain integers.
func formatCompact(n int) string {
	if n < 0 {
		return "-" + formatCompact(-n)
	}

	switch {
	case n >= 1_000_000_000:
		return scaled(float64(n)/1_000_000_000) + "B"
	case n >= 1_000_000:
		return scaled(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return scaled(float64(n)/1_000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// scaled keeps one fractional digit below 10 and none above, matching how
// compact notation rounds (1.2M, 12M, 123M).
func scaled(v float64) string {
	if v >= 10 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}
