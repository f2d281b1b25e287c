package hours

import (
	"fmt"
	"sort"
	"strings"

	"opening-hours-normalizer/internal/vocab"
	errs "opening-hours-normalizer/pkg/errors"
)

// timeRange is an open/close pair. close < open denotes an over-midnight
// span; the serializer splits those, they are never rendered as stored.
type timeRange struct {
	open  TimeOfDay
	close TimeOfDay
}

// OpeningHours accumulates time ranges and explicitly closed days per
// weekday for one scraped location, then serializes to the canonical string.
// An instance belongs to the single goroutine building it; there is no
// internal locking.
type OpeningHours struct {
	dayHours   map[string][]timeRange
	daysClosed map[string]struct{}
}

// NewOpeningHours returns an empty accumulator.
func NewOpeningHours() *OpeningHours {
	return &OpeningHours{
		dayHours:   make(map[string][]timeRange),
		daysClosed: make(map[string]struct{}),
	}
}

// HasData reports whether any day carries time ranges or a closed marking.
// The empty accumulator serializes to "".
func (o *OpeningHours) HasData() bool {
	return len(o.dayHours) > 0 || len(o.daysClosed) > 0
}

// RangeOptions configures AddRange. The zero value is the documented
// default: HH:MM layout, English closed tokens, English day table.
type RangeOptions struct {
	Layout string            // time layout for raw values; "" = DefaultTimeLayout
	Closed []string          // closed tokens; nil = vocab.ClosedEN
	Days   map[string]string // table for resolving the day argument; nil = vocab.DaysEN
}

// zeroTimes are the literal forms sources use for a midnight boundary.
var zeroTimes = map[string]bool{"00:00": true, "0:00": true, "00:00:00": true}

// AddRange records one open/close range for a day. The day is resolved via
// SanitiseDay and an unresolvable day is the only error. Everything else is
// policy, applied in order:
//
//   - a missing open or close is a no-op;
//   - both values matching a closed token marks the day closed, clearing any
//     accumulated ranges; only one side matching is ambiguous input and a
//     no-op;
//   - a literal 00:00-00:00 pair is dropped: sources commonly use it to mean
//     "closed", so it is not a real range, but absent an explicit closed
//     token we record nothing rather than guess;
//   - a close of 24:00/00:00 becomes 23:59 ("end of day" without crossing
//     into the next day; rendered back as 24:00);
//   - values that fail to parse are absorbed as a no-op;
//   - equal open and close is a single time of day, not a range: no-op.
//
// A successfully parsed range removes any closed marking for the day.
func (o *OpeningHours) AddRange(day string, open, close TimeValue, opts RangeOptions) error {
	table := opts.Days
	if table == nil {
		table = vocab.DaysEN
	}
	d := SanitiseDay(day, table)
	if d == "" {
		return errs.NewValidation("hours.AddRange",
			fmt.Sprintf("day must be one of %v, not %q", Days, day), nil)
	}

	if open.missing() || close.missing() {
		return nil
	}

	closedTokens := opts.Closed
	if closedTokens == nil {
		closedTokens = vocab.ClosedEN
	}
	openClosed, closeClosed := open.matchesToken(closedTokens), close.matchesToken(closedTokens)
	if openClosed && closeClosed {
		delete(o.dayHours, d)
		o.daysClosed[d] = struct{}{}
		return nil
	}
	if openClosed || closeClosed {
		return nil
	}

	if !open.isTime && !close.isTime && zeroTimes[open.raw] && zeroTimes[close.raw] {
		return nil
	}
	if !close.isTime {
		switch close.raw {
		case "24:00", "00:00", "0:00":
			close.raw = "23:59"
		case "24:00:00", "00:00:00":
			close.raw = "23:59:00"
		}
	}

	openTime := open.parsed
	if !open.isTime {
		var err error
		if openTime, err = ParseTimeOfDay(open.raw, opts.Layout); err != nil {
			return nil
		}
	}
	closeTime := close.parsed
	if !close.isTime {
		var err error
		if closeTime, err = ParseTimeOfDay(close.raw, opts.Layout); err != nil {
			return nil
		}
		if closeTime.Minutes() == 0 {
			// A midnight close in a form the literal checks above missed
			// (exotic layouts); still means end of day.
			closeTime = TimeOfDay{Hour: 23, Minute: 59}
		}
	}

	if openTime == closeTime {
		return nil
	}

	delete(o.daysClosed, d)
	o.addDayRange(d, timeRange{open: openTime, close: closeTime})
	return nil
}

// addDayRange appends with set semantics: exact duplicates collapse.
func (o *OpeningHours) addDayRange(day string, r timeRange) {
	for _, existing := range o.dayHours[day] {
		if existing == r {
			return
		}
	}
	o.dayHours[day] = append(o.dayHours[day], r)
}

// AddDaysRange records the same range for several days.
func (o *OpeningHours) AddDaysRange(days []string, open, close TimeValue, opts RangeOptions) error {
	for _, day := range days {
		if err := o.AddRange(day, open, close, opts); err != nil {
			return err
		}
	}
	return nil
}

// SetClosed marks days the source explicitly states are closed, clearing any
// accumulated ranges. Closure is never inferred: a day absent from source
// data stays unknown, only an explicit statement of closure belongs here.
func (o *OpeningHours) SetClosed(days ...string) error {
	for _, day := range days {
		d := SanitiseDay(day)
		if d == "" {
			return errs.NewValidation("hours.SetClosed",
				fmt.Sprintf("day must be one of %v, not %q", Days, day), nil)
		}
		delete(o.dayHours, d)
		o.daysClosed[d] = struct{}{}
	}
	return nil
}

// AddRangesFromString extracts all opening time information from a localized
// fragment and records it. Unmatchable fragments record nothing.
func (o *OpeningHours) AddRangesFromString(rangesString string, v vocab.Vocabulary) error {
	results, err := ExtractHoursFromString(rangesString, v)
	if err != nil {
		return err
	}
	opts := RangeOptions{Closed: v.Closed}
	for _, result := range results {
		for _, day := range result.Days {
			if err := o.AddRange(day, Text(result.Open), Text(result.Close), opts); err != nil {
				return err
			}
		}
	}
	return nil
}

// dayGroup is a run of consecutive days sharing identical rendered hours.
type dayGroup struct {
	fromDay string
	toDay   string
	hours   string
}

// AsOpeningHours serializes the accumulator to the canonical string:
// semicolon-separated day-run/hours clauses in the OpenStreetMap
// opening_hours subset used downstream.
//
// In the full opening_hours syntax a later rule overrides earlier ones, so
// "Mo-Sa 10:00-02:00; Su 09:00-02:00" would close the object at midnight
// Saturday. We only emit the plain subset and therefore split over-midnight
// ranges into two regular ranges before rendering. A day gaining rollover
// hours from the previous day loses any closed marking: hours crossing
// midnight mean the next day genuinely is open for those early hours.
func (o *OpeningHours) AsOpeningHours() string {
	midnightEnd := TimeOfDay{Hour: 23, Minute: 59}
	midnightStart := TimeOfDay{}

	split := make(map[string][]timeRange, len(o.dayHours))
	appendUnique := func(day string, r timeRange) {
		for _, existing := range split[day] {
			if existing == r {
				return
			}
		}
		split[day] = append(split[day], r)
	}
	for index, day := range Days {
		for _, r := range o.dayHours[day] {
			if r.open.Minutes() > r.close.Minutes() {
				appendUnique(day, timeRange{open: r.open, close: midnightEnd})
				nextDay := Days[(index+1)%len(Days)]
				appendUnique(nextDay, timeRange{open: midnightStart, close: r.close})
				delete(o.daysClosed, nextDay)
			} else {
				appendUnique(day, r)
			}
		}
	}

	var groups []dayGroup
	for _, day := range Days {
		var hours string
		if _, closed := o.daysClosed[day]; closed {
			hours = "closed"
		} else {
			ranges := append([]timeRange{}, split[day]...)
			sort.Slice(ranges, func(i, j int) bool {
				if ranges[i].open != ranges[j].open {
					return ranges[i].open.Minutes() < ranges[j].open.Minutes()
				}
				return ranges[i].close.Minutes() < ranges[j].close.Minutes()
			})
			parts := make([]string, len(ranges))
			for i, r := range ranges {
				closeStr := r.close.String()
				if r.close == midnightEnd {
					// Output prefers 24:00 for end-of-day spans; 23:59 is
					// internal only.
					closeStr = "24:00"
				}
				parts[i] = r.open.String() + "-" + closeStr
			}
			hours = strings.Join(parts, ",")
		}

		if len(groups) == 0 || groups[len(groups)-1].hours != hours {
			groups = append(groups, dayGroup{fromDay: day, toDay: day, hours: hours})
		} else {
			groups[len(groups)-1].toDay = day
		}
	}

	var sb strings.Builder
	for _, group := range groups {
		switch {
		case group.hours == "":
			continue
		case group.fromDay == group.toDay:
			fmt.Fprintf(&sb, "%s %s; ", group.fromDay, group.hours)
		case group.fromDay == "Mo" && group.toDay == "Su":
			// A run spanning the whole week omits the day prefix, the
			// canonical all-week convention of the target format.
			fmt.Fprintf(&sb, "%s; ", group.hours)
		default:
			fmt.Fprintf(&sb, "%s-%s %s; ", group.fromDay, group.toDay, group.hours)
		}
	}
	return strings.TrimSuffix(sb.String(), "; ")
}

// String implements fmt.Stringer as the canonical serialization.
func (o *OpeningHours) String() string { return o.AsOpeningHours() }
