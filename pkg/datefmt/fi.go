package datefmt

import (
	"strconv"

	"github.com/goodsign/monday"
)

var (
	finnishNumbersPast   = [...]string{"nolla", "yksi", "kaksi", "kolme", "neljä", "viisi", "kuusi", "seitsemän", "kahdeksan", "yhdeksän"}
	finnishNumbersFuture = [...]string{"nolla", "yhden", "kahden", "kolmen", "neljän", "viiden", "kuuden", "seitsemän", "kahdeksan", "yhdeksän"}
)

// Finnish inflects relative times: "viisi minuuttia sitten" but
// "viiden minuutin päästä".
var Finnish = register(&Locale{
	Code: "fi",
	Months: [12]string{
		"tammikuu", "helmikuu", "maaliskuu", "huhtikuu", "toukokuu", "kesäkuu",
		"heinäkuu", "elokuu", "syyskuu", "lokakuu", "marraskuu", "joulukuu",
	},
	MonthsShort: [12]string{
		"tammi", "helmi", "maalis", "huhti", "touko", "kesä",
		"heinä", "elo", "syys", "loka", "marras", "joulu",
	},
	Weekdays:      [7]string{"sunnuntai", "maanantai", "tiistai", "keskiviikko", "torstai", "perjantai", "lauantai"},
	WeekdaysShort: [7]string{"su", "ma", "ti", "ke", "to", "pe", "la"},
	WeekdaysMin:   [7]string{"su", "ma", "ti", "ke", "to", "pe", "la"},
	LongDateFormat: map[string]string{
		"LT":   "HH.mm",
		"LTS":  "HH.mm.ss",
		"L":    "DD.MM.YYYY",
		"LL":   "Do MMMM[ta] YYYY",
		"LLL":  "Do MMMM[ta] YYYY, [klo] HH.mm",
		"LLLL": "dddd, Do MMMM[ta] YYYY, [klo] HH.mm",
	},
	CalendarFormat: CalendarFormats{
		SameDay:  "[tänään] [klo] LT",
		NextDay:  "[huomenna] [klo] LT",
		NextWeek: "dddd [klo] LT",
		LastDay:  "[eilen] [klo] LT",
		LastWeek: "[viime] dddd[na] [klo] LT",
		SameElse: "L",
	},
	Future:   "%s päästä",
	Past:     "%s sitten",
	Relative: finnishRelative,
	Ordinal:  func(n int) string { return strconv.Itoa(n) + "." },
	Meridiem: func(hour int, lower bool) string {
		if hour < 12 {
			return ternary(lower, "ap", "AP")
		}
		return ternary(lower, "ip", "IP")
	},
	MondayLocale: monday.Locale("fi_FI"),
})

func finnishRelative(n int, key string, future bool) string {
	var unit string
	switch key {
	case "s":
		return ternary(future, "muutaman sekunnin", "muutama sekunti")
	case "ss":
		unit = ternary(future, "sekunnin", "sekuntia")
	case "m":
		return ternary(future, "minuutin", "minuutti")
	case "mm":
		unit = ternary(future, "minuutin", "minuuttia")
	case "h":
		return ternary(future, "tunnin", "tunti")
	case "hh":
		unit = ternary(future, "tunnin", "tuntia")
	case "d":
		return ternary(future, "päivän", "päivä")
	case "dd":
		unit = ternary(future, "päivän", "päivää")
	case "M":
		return ternary(future, "kuukauden", "kuukausi")
	case "MM":
		unit = ternary(future, "kuukauden", "kuukautta")
	case "y":
		return ternary(future, "vuoden", "vuosi")
	case "yy":
		unit = ternary(future, "vuoden", "vuotta")
	}
	return finnishNumber(n, future) + " " + unit
}

func finnishNumber(n int, future bool) string {
	if n < 0 || n >= len(finnishNumbersPast) {
		return strconv.Itoa(n)
	}
	if future {
		return finnishNumbersFuture[n]
	}
	return finnishNumbersPast[n]
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
