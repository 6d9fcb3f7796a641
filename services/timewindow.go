package services

import (
	"fmt"
	"strconv"
	"time"
	// Bundle the IANA database so zone lookups work on bare containers.
	_ "time/tzdata"

	"github.com/iamchrisas/macrotracker-back/models"
)

const dayLayout = "2006-01-02"

// defaultZone matches the historical client fallback of UTC+1 when no
// timezone is sent with the request.
var defaultZone = time.FixedZone("UTC+1", 3600)

// ResolveDayWindow turns a calendar date plus a timezone into the UTC
// interval [local 00:00:00.000, local 23:59:59.999]. The boundaries are
// computed in the local zone and then converted, so DST transitions and
// odd offsets come out right. An empty date means today; an empty tz
// falls back to UTC+1.
func ResolveDayWindow(dateStr, tz string) (time.Time, time.Time, error) {
	loc, err := resolveLocation(tz)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	var day time.Time
	if dateStr == "" {
		day = time.Now().In(loc)
	} else {
		day, err = parseDate(dateStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start.UTC(), end.UTC(), nil
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp,
// interpreted in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dayLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, models.ErrInvalidDate
}

// resolveLocation accepts an IANA zone name ("Europe/Madrid") or a fixed
// offset of the form ±HH:MM.
func resolveLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return defaultZone, nil
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc, nil
	}
	if loc, ok := fixedOffsetZone(tz); ok {
		return loc, nil
	}
	return nil, models.NewDomainError(models.ErrCodeValidation, fmt.Sprintf("Unknown timezone %q", tz))
}

func fixedOffsetZone(tz string) (*time.Location, bool) {
	if len(tz) != 6 || (tz[0] != '+' && tz[0] != '-') || tz[3] != ':' {
		return nil, false
	}
	h, err := strconv.Atoi(tz[1:3])
	if err != nil {
		return nil, false
	}
	m, err := strconv.Atoi(tz[4:6])
	if err != nil || h > 14 || m > 59 {
		return nil, false
	}
	offset := h*3600 + m*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset), true
}
