// Package hours normalizes free-form, multilingual opening-hours text into
// the subset of the OpenStreetMap opening_hours syntax used downstream.
//
// The pipeline: a regex grammar built from vocab tables extracts
// (days, open, close) triples from a source fragment; the OpeningHours
// accumulator records time ranges and explicitly closed days per weekday;
// the serializer splits over-midnight ranges and compacts consecutive days
// with identical hours into day runs.
package hours

import (
	"fmt"
	"strings"
	"unicode"

	"opening-hours-normalizer/internal/vocab"
	errs "opening-hours-normalizer/pkg/errors"
)

// Week orderings and subsets exported for adapter use. Days is the canonical
// Monday-first sequence; all schedule operations are in this order.
var (
	Days                  = vocab.DayCodes
	DaysFromSunday        = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	Days3Letters          = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	Days3LettersFromSunday = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	DaysFull              = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	DaysWeekday           = []string{"Mo", "Tu", "We", "Th", "Fr"}
	DaysWeekend           = []string{"Sa", "Su"}
)

// dayIndex returns the Monday-first index of a canonical day code, or -1.
func dayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// titleCase lowercases s and capitalizes the first rune of each
// space-separated word, matching how the vocab tables key their entries.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToTitle(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// SanitiseDay resolves a raw day token to a canonical day code using the
// given tables in priority order (vocab.DaysEN when none are given). It
// strips surrounding punctuation and schema.org-style prefixes some source
// formats embed, then title-cases before lookup. Returns "" when no table
// resolves the token; it never fails.
func SanitiseDay(day string, tables ...map[string]string) string {
	if day == "" {
		return ""
	}
	if len(tables) == 0 {
		tables = []map[string]string{vocab.DaysEN}
	}

	day = strings.ToLower(strings.Trim(day, "-.\t "))
	day = strings.ReplaceAll(day, "https://", "")
	day = strings.ReplaceAll(day, "http://", "")
	day = strings.ReplaceAll(day, "schema.org/", "")
	if i := strings.Index(day, "#"); i >= 0 {
		day = day[i+1:]
	}
	day = titleCase(day)

	for _, table := range tables {
		if code, ok := table[day]; ok {
			return code
		}
	}
	return ""
}

// DayRange expands start..end (inclusive) to canonical days, wrapping around
// the week when start falls after end (Sa..Tu = Sa Su Mo Tu). Both ends pass
// through SanitiseDay against the given table; an unresolvable end is a
// validation error.
func DayRange(startDay, endDay string, table map[string]string) ([]string, error) {
	start := SanitiseDay(startDay, table)
	if start == "" {
		return nil, errs.NewValidation("hours.DayRange", fmt.Sprintf("unresolvable day token %q", startDay), nil)
	}
	end := SanitiseDay(endDay, table)
	if end == "" {
		return nil, errs.NewValidation("hours.DayRange", fmt.Sprintf("unresolvable day token %q", endDay), nil)
	}

	startIx, endIx := dayIndex(start), dayIndex(end)
	if startIx <= endIx {
		return append([]string{}, Days[startIx:endIx+1]...), nil
	}
	return append(append([]string{}, Days[startIx:]...), Days[:endIx+1]...), nil
}

// DaysInDayRange resolves the one or two day tokens captured by the
// extraction grammar into a list of canonical days. Dispatch order is a
// contract: a single token is checked against named day ranges before
// single-day resolution, while two distinct tokens are always treated as a
// literal day range (named ranges never apply there). Two tokens resolving
// to the same day collapse to that single day.
func DaysInDayRange(dayRange []string, days map[string]string, namedDayRanges map[string][]string) ([]string, error) {
	switch len(dayRange) {
	case 1:
		if expansion, ok := namedDayRanges[titleCase(dayRange[0])]; ok {
			return append([]string{}, expansion...), nil
		}
		day := SanitiseDay(dayRange[0], days)
		if day == "" {
			return nil, errs.NewValidation("hours.DaysInDayRange",
				fmt.Sprintf("unresolvable day token %q", dayRange[0]), nil)
		}
		return []string{day}, nil
	case 2:
		start := SanitiseDay(dayRange[0], days)
		if start == "" {
			return nil, errs.NewValidation("hours.DaysInDayRange",
				fmt.Sprintf("unresolvable day token %q", dayRange[0]), nil)
		}
		end := SanitiseDay(dayRange[1], days)
		if end == "" {
			return nil, errs.NewValidation("hours.DaysInDayRange",
				fmt.Sprintf("unresolvable day token %q", dayRange[1]), nil)
		}
		if start == end {
			return []string{start}, nil
		}
		return DayRange(dayRange[0], dayRange[1], days)
	default:
		return nil, errs.NewValidation("hours.DaysInDayRange",
			fmt.Sprintf("want 1 or 2 day tokens, got %d", len(dayRange)), nil)
	}
}
