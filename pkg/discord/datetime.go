package discord

import (
	"strings"
	"time"

	"localebot/pkg/datefmt"
	"localebot/pkg/tz"
)

// ZoneReport is the localized description of a time zone at one instant.
type ZoneReport struct {
	Zone         string
	Time         string
	Abbreviation string
	Offset       string
	// NextChange and NextRelative are empty when the zone has no
	// transition within a year.
	NextChange       string
	NextAbbreviation string
	NextOffset       string
	NextRelative     string
}

// DescribeZone formats now in zone for locale and finds the next offset change.
func DescribeZone(zone string, now time.Time, locale string) (ZoneReport, error) {
	zone = strings.TrimSpace(zone)
	current, err := tz.Lookup(zone, now)
	if err != nil {
		return ZoneReport{}, err
	}
	lf := datefmt.Get(locale)
	local := now.In(current.Location)

	report := ZoneReport{
		Zone:         current.Name,
		Time:         lf.Format(local, "LLLL"),
		Abbreviation: current.Abbreviation,
		Offset:       current.OffsetString(),
	}

	periods, err := tz.Transitions(zone, now, now.AddDate(1, 0, 0), 2)
	if err != nil {
		return ZoneReport{}, err
	}
	if len(periods) == 2 {
		next := periods[1]
		at := next.Start.In(next.Location)
		report.NextChange = lf.Format(at, "LLL")
		report.NextAbbreviation = next.Abbreviation
		report.NextOffset = next.OffsetString()
		report.NextRelative = lf.FromNow(at, now)
	}
	return report, nil
}
