package datefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"localebot/pkg/tz"
)

var (
	longDateRE = regexp.MustCompile(`\[[^\[]*\]|LTS|LT|LLLL|LLL|LL|L`)
	tokenRE    = regexp.MustCompile(`\[[^\[]*\]|YYYY|YY|MMMM|MMM|MM|Mo|M|Do|DD|D|dddd|ddd|dd|d|HH|H|hh|h|mm|m|ss|s|SSS|A|a|ZZ|Z|zz|z|X|x|.`)
)

// Format renders t with a moment.js style pattern. Text in square brackets
// is copied verbatim; the long date tokens (LT, LL, ...) expand to the
// locale's patterns.
func (l *Locale) Format(t time.Time, pattern string) string {
	pattern = l.expandLongDate(pattern)

	var b strings.Builder
	for _, tok := range tokenRE.FindAllString(pattern, -1) {
		if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") && len(tok) >= 2 {
			b.WriteString(tok[1 : len(tok)-1])
			continue
		}
		b.WriteString(l.token(t, tok))
	}
	return b.String()
}

func (l *Locale) expandLongDate(pattern string) string {
	for i := 0; i < 5 && longDateRE.MatchString(pattern); i++ {
		expanded := longDateRE.ReplaceAllStringFunc(pattern, func(tok string) string {
			if f, ok := l.LongDateFormat[tok]; ok {
				return f
			}
			return tok
		})
		if expanded == pattern {
			break
		}
		pattern = expanded
	}
	return pattern
}

func (l *Locale) token(t time.Time, tok string) string {
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return l.Months[t.Month()-1]
	case "MMM":
		return l.MonthsShort[t.Month()-1]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "Mo":
		return l.Ordinal(int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "Do":
		return l.Ordinal(t.Day())
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return l.Weekdays[t.Weekday()]
	case "ddd":
		return l.WeekdaysShort[t.Weekday()]
	case "dd":
		return l.WeekdaysMin[t.Weekday()]
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t.Hour()))
	case "h":
		return strconv.Itoa(hour12(t.Hour()))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "A":
		return l.Meridiem(t.Hour(), false)
	case "a":
		return l.Meridiem(t.Hour(), true)
	case "Z", "ZZ":
		_, offset := t.Zone()
		sep := ":"
		if tok == "ZZ" {
			sep = ""
		}
		return tz.FormatOffset(time.Duration(offset)*time.Second, sep)
	case "z", "zz":
		abbr, _ := t.Zone()
		return abbr
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	default:
		return tok
	}
}

func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

// Calendar renders t relative to now: "tänään klo 14.05", "Last Monday at
// 9:00 AM", or a plain date when more than a week apart. now is converted to
// t's location first.
func (l *Locale) Calendar(t, now time.Time) string {
	now = now.In(t.Location())
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	diff := t.Sub(startOfDay).Hours() / 24

	var pattern string
	switch {
	case diff < -6:
		pattern = l.CalendarFormat.SameElse
	case diff < -1:
		pattern = l.CalendarFormat.LastWeek
	case diff < 0:
		pattern = l.CalendarFormat.LastDay
	case diff < 1:
		pattern = l.CalendarFormat.SameDay
	case diff < 2:
		pattern = l.CalendarFormat.NextDay
	case diff < 7:
		pattern = l.CalendarFormat.NextWeek
	default:
		pattern = l.CalendarFormat.SameElse
	}
	return l.Format(t, pattern)
}

// Strftime formats t with a Go layout, translating month and day names.
func (l *Locale) Strftime(t time.Time, layout string) string {
	return monday.Format(t, layout, l.MondayLocale)
}
