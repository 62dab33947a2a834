// Package dateutils resolves the temporal expressions understood by the
// conversational interpreter: explicit or relative dates on the recording
// path and period phrases on the query path.
package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cofrim/internal/models"
)

// Entries carrying a relative or explicit date get this placeholder
// time-of-day, since the message never states one.
const (
	PlaceholderHour   = 10
	PlaceholderMinute = 0
)

// dayMonthPattern matches explicit D/M or D-M dates inside a message.
var dayMonthPattern = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})`)

// ExtractEntryDate resolves the date of an entry from normalized text.
// "ontem" wins over an explicit day/month; an explicit date uses the
// current year; an invalid calendar combination (e.g. 31/02) is silently
// discarded. With no usable match the entry is dated now.
func ExtractEntryDate(normalized string, now time.Time) time.Time {
	if strings.Contains(normalized, "ontem") {
		y := now.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), PlaceholderHour, PlaceholderMinute, 0, 0, now.Location())
	}

	if m := dayMonthPattern.FindStringSubmatch(normalized); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if validCalendarDay(now.Year(), month, day) {
			return time.Date(now.Year(), time.Month(month), day, PlaceholderHour, PlaceholderMinute, 0, 0, now.Location())
		}
		// Invalid day/month falls through to now.
	}

	return now
}

// ResolvePeriod maps a period phrase in normalized query text to a date
// range. Phrases are checked in a fixed priority order and the first hit
// wins; text with no period phrase yields an unbounded range. Weeks start
// on Monday.
func ResolvePeriod(normalized string, now time.Time) models.DateRange {
	today := truncateToDay(now)

	switch {
	case strings.Contains(normalized, "hoje"):
		return rangeOf(today, today)

	case strings.Contains(normalized, "ontem"):
		d := today.AddDate(0, 0, -1)
		return rangeOf(d, d)

	case strings.Contains(normalized, "essa semana"):
		return rangeOf(startOfWeek(today), today)

	case strings.Contains(normalized, "semana passada"):
		end := startOfWeek(today).AddDate(0, 0, -1)
		return rangeOf(end.AddDate(0, 0, -6), end)

	case strings.Contains(normalized, "esse mes"):
		return rangeOf(StartOfMonth(today), today)

	case strings.Contains(normalized, "mes passado"):
		prev := StartOfMonth(today).AddDate(0, -1, 0)
		return rangeOf(prev, EndOfMonth(prev))
	}

	return models.DateRange{}
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// startOfWeek returns the Monday of the week containing the given day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func rangeOf(start, end time.Time) models.DateRange {
	start = truncateToDay(start)
	end = truncateToDay(end)
	return models.DateRange{Start: &start, End: &end}
}

// validCalendarDay rejects day/month combinations that do not exist in the
// given year. time.Date would silently normalize them instead.
func validCalendarDay(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(t.Month()) == month && t.Day() == day
}
