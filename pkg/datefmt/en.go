package datefmt

import (
	"strconv"

	"github.com/goodsign/monday"
)

// English is also the fallback for unknown codes.
var English = register(&Locale{
	Code: "en",
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsShort: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysMin:   [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	LongDateFormat: map[string]string{
		"LT":   "h:mm A",
		"LTS":  "h:mm:ss A",
		"L":    "MM/DD/YYYY",
		"LL":   "MMMM D, YYYY",
		"LLL":  "MMMM D, YYYY h:mm A",
		"LLLL": "dddd, MMMM D, YYYY h:mm A",
	},
	CalendarFormat: CalendarFormats{
		SameDay:  "[Today at] LT",
		NextDay:  "[Tomorrow at] LT",
		NextWeek: "dddd [at] LT",
		LastDay:  "[Yesterday at] LT",
		LastWeek: "[Last] dddd [at] LT",
		SameElse: "L",
	},
	Future:   "in %s",
	Past:     "%s ago",
	Relative: englishRelative,
	Ordinal:  englishOrdinal,
	Meridiem: func(hour int, lower bool) string {
		if hour < 12 {
			return ternary(lower, "am", "AM")
		}
		return ternary(lower, "pm", "PM")
	},
	MondayLocale: monday.LocaleEnUS,
})

var englishUnits = map[string]string{
	"s": "a few seconds", "ss": "seconds",
	"m": "a minute", "mm": "minutes",
	"h": "an hour", "hh": "hours",
	"d": "a day", "dd": "days",
	"M": "a month", "MM": "months",
	"y": "a year", "yy": "years",
}

func englishRelative(n int, key string, _ bool) string {
	unit := englishUnits[key]
	if len(key) == 2 {
		return strconv.Itoa(n) + " " + unit
	}
	return unit
}

func englishOrdinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
