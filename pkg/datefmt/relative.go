package datefmt

import (
	"math"
	"strings"
	"time"
)

// Thresholds at which relative times switch to the next unit.
const (
	thresholdFewSeconds = 44
	thresholdSeconds    = 45
	thresholdMinutes    = 45
	thresholdHours      = 22
	thresholdDays       = 26
	thresholdMonths     = 11

	daysPerMonth = 146097.0 / 4800
	daysPerYear  = 146097.0 / 400
)

// FromNow describes t relative to now with a suffix: "5 minutes ago",
// "viiden minuutin päästä".
func (l *Locale) FromNow(t, now time.Time) string {
	return l.Humanize(t.Sub(now), true)
}

// Humanize describes d. Positive durations lie in the future.
func (l *Locale) Humanize(d time.Duration, withSuffix bool) string {
	future := d > 0
	abs := d
	if abs < 0 {
		abs = -abs
	}

	seconds := int(math.Round(abs.Seconds()))
	minutes := int(math.Round(abs.Minutes()))
	hours := int(math.Round(abs.Hours()))
	days := int(math.Round(abs.Hours() / 24))
	months := int(math.Round(abs.Hours() / 24 / daysPerMonth))
	years := int(math.Round(abs.Hours() / 24 / daysPerYear))

	var key string
	n := 1
	switch {
	case seconds <= thresholdFewSeconds:
		key, n = "s", seconds
	case seconds < thresholdSeconds:
		key, n = "ss", seconds
	case minutes <= 1:
		key = "m"
	case minutes < thresholdMinutes:
		key, n = "mm", minutes
	case hours <= 1:
		key = "h"
	case hours < thresholdHours:
		key, n = "hh", hours
	case days <= 1:
		key = "d"
	case days < thresholdDays:
		key, n = "dd", days
	case months <= 1:
		key = "M"
	case months < thresholdMonths:
		key, n = "MM", months
	case years <= 1:
		key = "y"
	default:
		key, n = "yy", years
	}
	if n == 0 {
		n = 1
	}

	out := l.Relative(n, key, future)
	if !withSuffix {
		return out
	}
	layout := l.Past
	if future {
		layout = l.Future
	}
	return strings.Replace(layout, "%s", out, 1)
}
