package normalize

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts is the parse cascade for textual dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
	"01-02-2006",
	"02-01-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// excel serial plausibility window: 1900-01-01 .. ~2173. Numbers outside
// it are not dates.
const (
	minSerial = 1
	maxSerial = 100000
)

// ParseHours reads a numeric cell permissively. Thousands separators are
// stripped; anything unparseable or negative reads as zero, so a dirty
// cell degrades to "no hours" instead of poisoning a batch.
func ParseHours(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseNumber reads a numeric identifier cell (operation number). Same
// permissive policy as ParseHours but without the negative clamp.
func ParseNumber(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseText trims a text cell; empty cells read as "N/A" so grouping keys
// never split on whitespace variants of missing.
func ParseText(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "N/A"
	}
	return s
}

// ParseDate runs the date cascade: textual layouts first, then 1900-epoch
// spreadsheet serials. Unparseable cells read as nil, and the row keeps
// flowing; a nil finish date only drops the row from time-bucketed
// rollups later.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return serialDate(serial)
	}

	return nil
}

// serialDate converts a 1900-epoch spreadsheet serial. Serials above 60
// step back one day to absorb the phantom 1900-02-29 the epoch carries.
func serialDate(serial float64) *time.Time {
	if serial < minSerial || serial > maxSerial {
		return nil
	}
	days := int(serial)
	if days > 60 {
		days--
	}
	t := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days-1)
	return &t
}
