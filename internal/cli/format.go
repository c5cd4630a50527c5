// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a USD amount, scaling precision down as magnitude
// grows. e.g., 4.25 -> "$4.25", 1250 -> "$1,250", 1250000 -> "$1.25M"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	switch {
	case amount >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", amount/1_000_000_000)
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.2fM", amount/1_000_000)
	case amount >= 1_000:
		return "$" + FormatNumber(int64(math.Round(amount)))
	case amount >= 100:
		return fmt.Sprintf("$%.0f", amount)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}

// FormatSignedMoney is FormatMoney with an explicit + on positive values.
func FormatSignedMoney(amount float64) string {
	if amount > 0 {
		return "+" + FormatMoney(amount)
	}
	return FormatMoney(amount)
}

// FormatMonths renders a month count; horizon-saturated values read as
// open-ended. e.g., 7 -> "7 months", saturated 24 -> "24+ months"
func FormatMonths(months, horizon int) string {
	if months >= horizon {
		return fmt.Sprintf("%d+ months", horizon)
	}
	if months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatGrowthRate renders an annualized decimal rate with its sign.
// e.g., 0.18 -> "+18%/yr"
func FormatGrowthRate(rate float64) string {
	return fmt.Sprintf("%+.0f%%/yr", rate*100)
}
