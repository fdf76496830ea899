// Package tz resolves IANA zone names to offsets and abbreviations using the
// Go time zone database.
package tz

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// ErrUnknownZone is returned for names missing from the zone database.
var ErrUnknownZone = errors.New("tz: unknown zone")

// Helsinki is the Europe/Helsinki location (EET/EEST with automatic DST).
var Helsinki *time.Location

func init() {
	var err error
	Helsinki, err = time.LoadLocation("Europe/Helsinki")
	if err != nil {
		panic("tz: load Europe/Helsinki: " + err.Error())
	}
}

// Zone describes a location at one instant.
type Zone struct {
	Location     *time.Location
	Name         string
	Abbreviation string
	Offset       time.Duration
	// Start and End bound the period during which Abbreviation and Offset
	// hold. Zero values mean unbounded.
	Start time.Time
	End   time.Time
}

// Load returns the location for name. "Local" is rejected so results do not
// depend on the host.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return loc, nil
}

// Lookup returns the abbreviation and UTC offset of zone name at instant at.
func Lookup(name string, at time.Time) (Zone, error) {
	loc, err := Load(name)
	if err != nil {
		return Zone{}, err
	}
	return zoneAt(loc, at), nil
}

func zoneAt(loc *time.Location, at time.Time) Zone {
	local := at.In(loc)
	abbr, offset := local.Zone()
	start, end := local.ZoneBounds()
	return Zone{
		Location:     loc,
		Name:         loc.String(),
		Abbreviation: abbr,
		Offset:       time.Duration(offset) * time.Second,
		Start:        start,
		End:          end,
	}
}

// Transitions lists the zone periods of name that overlap [from, to), oldest
// first. At most limit periods are returned; limit <= 0 means no limit.
func Transitions(name string, from, to time.Time, limit int) ([]Zone, error) {
	loc, err := Load(name)
	if err != nil {
		return nil, err
	}
	var out []Zone
	at := from
	for at.Before(to) {
		z := zoneAt(loc, at)
		out = append(out, z)
		if limit > 0 && len(out) >= limit {
			break
		}
		if z.End.IsZero() || !z.End.After(at) {
			break
		}
		at = z.End
	}
	return out, nil
}

// OffsetString formats the offset as "+02:00".
func (z Zone) OffsetString() string {
	return FormatOffset(z.Offset, ":")
}

// FormatOffset renders d as a signed hours/minutes offset joined by sep.
func FormatOffset(d time.Duration, sep string) string {
	sign := '+'
	if d < 0 {
		sign = '-'
		d = -d
	}
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%c%02d%s%02d", sign, h, sep, m)
}
