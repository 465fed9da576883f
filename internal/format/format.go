// Package format provides display formatting helpers for durations and
// simulation quantities.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatCHF formats a Swiss franc amount with apostrophe digit grouping,
// rounded to whole francs, e.g. 1234567.8 -> "CHF 1'234'568".
func FormatCHF(amount float64) string {
	return "CHF " + groupDigits(math.Round(amount))
}

// FormatColonies formats a colony count with apostrophe digit grouping,
// rounded to the nearest whole colony.
func FormatColonies(colonies float64) string {
	return groupDigits(math.Round(colonies))
}

// FormatTons formats a mass in metric tons with one decimal place.
func FormatTons(tons float64) string {
	return fmt.Sprintf("%.1f t", tons)
}

// FormatKg formats a per-colony yield in kilograms with one decimal place.
func FormatKg(kg float64) string {
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatSigned formats a value with an explicit sign, used for deltas.
func FormatSigned(v float64) string {
	if v >= 0 {
		return "+" + groupDigits(math.Round(v))
	}
	return "-" + groupDigits(math.Round(-v))
}

// groupDigits renders a rounded float with apostrophes every three digits,
// the conventional Swiss thousands separator.
func groupDigits(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte('\'')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte('\'')
		}
	}
	return b.String()
}
