// Package localtime interprets zone-less server timestamps in a named IANA
// zone and converts them to UTC, refusing local times that fall into a
// daylight-saving gap or overlap.
package localtime

import (
	"time"
	_ "time/tzdata" // Zone database for hosts without /usr/share/zoneinfo.

	"ppauth/internal/errors"
)

const (
	// Layout is the server's expires_at format.
	Layout = "2006-01-02 15:04:05"

	// DefaultZone is used when no zone name is supplied.
	DefaultZone = "UTC"

	// Transitions are months apart in practice, so sampling every few hours
	// across two days on each side sees every offset a wall time could map to.
	sampleWindow = 48 * time.Hour
	sampleStep   = 6 * time.Hour
)

// LoadZone resolves an IANA zone name, defaulting to UTC when empty.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.NewInvalidTimezoneError(name, err)
	}
	return loc, nil
}

// Resolve parses value as a naive date-time, interprets it in zone and
// returns the matching UTC instant.
func Resolve(value, zone string) (time.Time, error) {
	naive, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.NewParseError("expires_at", value, err)
	}

	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}

	return FromNaive(naive, loc)
}

// FromNaive interprets the wall clock fields of naive in loc. It fails with
// an AmbiguousLocalTimeError unless exactly one instant carries that wall time.
func FromNaive(naive time.Time, loc *time.Location) (time.Time, error) {
	var matches []time.Time
	for _, offset := range offsetsAround(naive, loc) {
		candidate := time.Date(
			naive.Year(), naive.Month(), naive.Day(),
			naive.Hour(), naive.Minute(), naive.Second(), naive.Nanosecond(),
			time.UTC,
		).Add(-time.Duration(offset) * time.Second)

		if !sameWallClock(candidate.In(loc), naive) {
			continue
		}
		if !containsInstant(matches, candidate) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0].UTC(), nil
	case 0:
		return time.Time{}, errors.NewAmbiguousLocalTimeError(
			naive.Format(Layout), loc.String(), errors.ReasonNonexistent)
	default:
		return time.Time{}, errors.NewAmbiguousLocalTimeError(
			naive.Format(Layout), loc.String(), errors.ReasonAmbiguous)
	}
}

// offsetsAround collects the distinct UTC offsets loc uses near naive.
func offsetsAround(naive time.Time, loc *time.Location) []int {
	base := time.Date(
		naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), 0,
		time.UTC,
	)

	var offsets []int
	for d := -sampleWindow; d <= sampleWindow; d += sampleStep {
		_, offset := base.Add(d).In(loc).Zone()
		if !containsOffset(offsets, offset) {
			offsets = append(offsets, offset)
		}
	}
	return offsets
}

func sameWallClock(t, naive time.Time) bool {
	return t.Year() == naive.Year() &&
		t.Month() == naive.Month() &&
		t.Day() == naive.Day() &&
		t.Hour() == naive.Hour() &&
		t.Minute() == naive.Minute() &&
		t.Second() == naive.Second()
}

func containsOffset(offsets []int, offset int) bool {
	for _, o := range offsets {
		if o == offset {
			return true
		}
	}
	return false
}

func containsInstant(instants []time.Time, t time.Time) bool {
	for _, i := range instants {
		if i.Equal(t) {
			return true
		}
	}
	return false
}
