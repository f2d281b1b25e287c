package hours

import (
	"fmt"
	"strings"
	"time"

	errs "opening-hours-normalizer/pkg/errors"
)

// DefaultTimeLayout parses the zero-padded 24h HH:MM strings produced by the
// extraction grammar. Sources supplying seconds pass "15:04:05" instead.
const DefaultTimeLayout = "15:04"

// TimeOfDay is a wall-clock time with no date component. Ordering is by
// minutes since midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns minutes since midnight, the comparison key for ranges.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// ParseTimeOfDay parses a time string with the given layout ("15:04" style).
func ParseTimeOfDay(value, layout string) (TimeOfDay, error) {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return TimeOfDay{}, errs.NewParse("hours.ParseTimeOfDay",
			fmt.Sprintf("time %q does not match layout %q", value, layout), err)
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// TimeValue is either raw source text or an already parsed time of day.
// Source adapters deal in both; the union is resolved to TimeOfDay at the
// AddRange boundary and never deeper in the pipeline.
type TimeValue struct {
	raw    string
	parsed TimeOfDay
	isTime bool
}

// Text wraps raw source text (a time string or a closed token).
func Text(s string) TimeValue { return TimeValue{raw: s} }

// Clock wraps an already parsed time of day.
func Clock(t TimeOfDay) TimeValue { return TimeValue{parsed: t, isTime: true} }

// missing reports whether the value carries nothing (empty raw text).
func (v TimeValue) missing() bool { return !v.isTime && v.raw == "" }

// matchesToken reports whether the raw text equals one of the tokens,
// case-insensitively. Parsed times never match.
func (v TimeValue) matchesToken(tokens []string) bool {
	if v.isTime {
		return false
	}
	for _, t := range tokens {
		if strings.EqualFold(v.raw, t) {
			return true
		}
	}
	return false
}
