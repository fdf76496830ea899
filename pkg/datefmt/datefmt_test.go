package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localebot/pkg/datefmt"
	"localebot/pkg/tz"
)

var friday = time.Date(2026, 10, 16, 14, 5, 9, 0, tz.Helsinki)

func TestGet(t *testing.T) {
	t.Parallel()

	require.Same(t, datefmt.Finnish, datefmt.Get("fi"))
	require.Same(t, datefmt.Finnish, datefmt.Get("fi_FI"))
	require.Same(t, datefmt.English, datefmt.Get("en-US"))
	require.Same(t, datefmt.English, datefmt.Get("xx"))
	require.Same(t, datefmt.English, datefmt.Get(""))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		locale  *datefmt.Locale
		pattern string
		want    string
	}{
		{"fi long date", datefmt.Finnish, "LL", "16. lokakuuta 2026"},
		{"fi full", datefmt.Finnish, "LLLL", "perjantai, 16. lokakuuta 2026, klo 14.05"},
		{"fi short date", datefmt.Finnish, "L", "16.10.2026"},
		{"fi bundle pattern", datefmt.Finnish, "D. MMMM[ta] H:mm", "16. lokakuuta 14:05"},
		{"en long date time", datefmt.English, "LLL", "October 16, 2026 2:05 PM"},
		{"en ordinal", datefmt.English, "Do MMM YY", "16th Oct 26"},
		{"en time with zone", datefmt.English, "dddd [at] HH:mm:ss Z z", "Friday at 14:05:09 +03:00 EEST"},
		{"compact offset", datefmt.English, "ZZ", "+0300"},
		{"lower meridiem", datefmt.English, "h:mm a", "2:05 pm"},
		{"escaped tokens", datefmt.English, "[YYYY] YYYY", "YYYY 2026"},
		{"weekday names", datefmt.Finnish, "ddd dd d", "pe pe 5"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.locale.Format(friday, tt.pattern))
		})
	}
}

func TestEnglishOrdinals(t *testing.T) {
	t.Parallel()

	for day, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 31: "31st"} {
		d := time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, datefmt.English.Format(d, "Do"))
	}
}

func TestCalendar(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 9, 0, 0, 0, tz.Helsinki)
	at := func(day, hour, minute int) time.Time {
		return time.Date(2026, 10, day, hour, minute, 0, 0, tz.Helsinki)
	}

	tests := []struct {
		name   string
		when   time.Time
		wantFi string
		wantEn string
	}{
		{"same day", at(16, 14, 5), "tänään klo 14.05", "Today at 2:05 PM"},
		{"next day", at(17, 10, 0), "huomenna klo 10.00", "Tomorrow at 10:00 AM"},
		{"last day", at(15, 18, 30), "eilen klo 18.30", "Yesterday at 6:30 PM"},
		{"last week", at(13, 8, 0), "viime tiistaina klo 08.00", "Last Tuesday at 8:00 AM"},
		{"next week", at(19, 12, 0), "maanantai klo 12.00", "Monday at 12:00 PM"},
		{"far past", time.Date(2026, 9, 1, 12, 0, 0, 0, tz.Helsinki), "01.09.2026", "09/01/2026"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantFi, datefmt.Finnish.Calendar(tt.when, now))
			assert.Equal(t, tt.wantEn, datefmt.English.Calendar(tt.when, now))
		})
	}
}

func TestFromNow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name   string
		offset time.Duration
		wantFi string
		wantEn string
	}{
		{"seconds ago", -30 * time.Second, "muutama sekunti sitten", "a few seconds ago"},
		{"minutes ago", -5 * time.Minute, "viisi minuuttia sitten", "5 minutes ago"},
		{"minutes ahead", 5 * time.Minute, "viiden minuutin päästä", "in 5 minutes"},
		{"rounds up to an hour", -50 * time.Minute, "tunti sitten", "an hour ago"},
		{"hours ago", -3 * time.Hour, "kolme tuntia sitten", "3 hours ago"},
		{"rounds up to a day", -23 * time.Hour, "päivä sitten", "a day ago"},
		{"many days", -15 * day, "15 päivää sitten", "15 days ago"},
		{"a month", -40 * day, "kuukausi sitten", "a month ago"},
		{"months ahead", 90 * day, "kolmen kuukauden päästä", "in 3 months"},
		{"a year", -400 * day, "vuosi sitten", "a year ago"},
		{"years", -3 * 365 * day, "kolme vuotta sitten", "3 years ago"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			when := now.Add(tt.offset)
			assert.Equal(t, tt.wantFi, datefmt.Finnish.FromNow(when, now))
			assert.Equal(t, tt.wantEn, datefmt.English.FromNow(when, now))
		})
	}
}

func TestHumanizeWithoutSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2 hours", datefmt.English.Humanize(-2*time.Hour, false))
	assert.Equal(t, "kaksi tuntia", datefmt.Finnish.Humanize(-2*time.Hour, false))
}

func TestStrftime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Friday 16 October 2026", datefmt.English.Strftime(friday, "Monday 2 January 2006"))
}
