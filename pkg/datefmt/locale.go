// Package datefmt formats instants with moment.js style patterns, calendar
// phrases and relative times for the locales the bot ships.
package datefmt

import (
	"strings"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// CalendarFormats holds the patterns Calendar picks from.
type CalendarFormats struct {
	SameDay  string
	NextDay  string
	NextWeek string
	LastDay  string
	LastWeek string
	SameElse string
}

// RelativeFunc renders a duration unit. key is one of s, ss, m, mm, h, hh,
// d, dd, M, MM, y, yy; n is the unit count.
type RelativeFunc func(n int, key string, future bool) string

// Locale carries the names and patterns of one language.
type Locale struct {
	Code          string
	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string // Sunday first
	WeekdaysShort [7]string
	WeekdaysMin   [7]string

	// LongDateFormat maps LT, LTS, L, LL, LLL and LLLL to patterns.
	LongDateFormat map[string]string
	CalendarFormat CalendarFormats

	Future   string // "in %s"
	Past     string // "%s ago"
	Relative RelativeFunc

	Ordinal  func(n int) string
	Meridiem func(hour int, lower bool) string

	// MondayLocale translates names in Go layouts.
	MondayLocale monday.Locale
}

var registry = map[string]*Locale{}

func register(l *Locale) *Locale {
	registry[l.Code] = l
	return l
}

// Get returns the locale for code ("fi", "fi_FI", "en-US"). Unknown codes
// get English.
func Get(code string) *Locale {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if l, ok := registry[code]; ok {
		return l
	}
	tag, err := language.Parse(code)
	if err != nil {
		return English
	}
	base, _ := tag.Base()
	if l, ok := registry[base.String()]; ok {
		return l
	}
	return English
}
