package vocab

import (
	"sort"
	"strings"
)

// DayCodes is the canonical Monday-first week. Every day representation in
// the engine is normalized to one of these two-letter codes before any
// schedule operation.
var DayCodes = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// IsDayCode reports whether s is one of the seven canonical day codes.
func IsDayCode(s string) bool {
	for _, d := range DayCodes {
		if s == d {
			return true
		}
	}
	return false
}

// Vocabulary bundles the four localized table artifacts the engine consumes
// for one language. Pass it explicitly at call sites instead of relying on
// ambient defaults so grammar construction stays deterministic and testable.
type Vocabulary struct {
	Language       string
	Days           map[string]string
	NamedDayRanges map[string][]string
	NamedTimes     map[string]NamedTime
	Delimiters     []string
	Closed         []string
}

// Default returns the English vocabulary, the documented default for all
// engine entry points.
func Default() Vocabulary {
	return Vocabulary{
		Language:       "en",
		Days:           DaysEN,
		NamedDayRanges: NamedDayRangesEN,
		NamedTimes:     NamedTimesEN,
		Delimiters:     DelimitersEN,
		Closed:         ClosedEN,
	}
}

// builtin assembles the per-language bundles. Languages without their own
// named ranges, named times, delimiters or closed tokens fall back to the
// English artifacts, which carry the dash variants and tokens most sites mix
// into non-English text anyway.
var builtin = map[string]Vocabulary{
	"at": {Days: DaysAT, Delimiters: DelimitersDE, Closed: ClosedAT},
	"bg": {Days: DaysBG},
	"br": {Days: DaysBR, Delimiters: DelimitersPT},
	"ch": {Days: DaysCH, Delimiters: DelimitersDE, Closed: ClosedDE},
	"cn": {Days: DaysCN},
	"cz": {Days: DaysCZ},
	"de": {Days: DaysDE, Delimiters: DelimitersDE, Closed: ClosedDE},
	"dk": {Days: DaysDK, NamedDayRanges: NamedDayRangesDK},
	"en": {Days: DaysEN, NamedDayRanges: NamedDayRangesEN, NamedTimes: NamedTimesEN},
	"es": {Days: DaysES, Delimiters: DelimitersES},
	"fi": {Days: DaysFI},
	"fr": {Days: DaysFR, Delimiters: DelimitersFR},
	"gr": {Days: DaysGR},
	"hr": {Days: DaysHR},
	"hu": {Days: DaysHU},
	"id": {Days: DaysID},
	"il": {Days: DaysIL},
	"it": {Days: DaysIT, NamedDayRanges: NamedDayRangesIT, NamedTimes: NamedTimesIT, Delimiters: DelimitersIT, Closed: ClosedIT},
	"kr": {Days: DaysKR, NamedDayRanges: NamedDayRangesKR, Delimiters: DelimitersKR},
	"lt": {Days: DaysLT},
	"nl": {Days: DaysNL, Closed: ClosedNL},
	"no": {Days: DaysNO},
	"pl": {Days: DaysPL, Delimiters: DelimitersPL},
	"pt": {Days: DaysPT, Delimiters: DelimitersPT},
	"ro": {Days: DaysRO},
	"rs": {Days: DaysRS},
	"ru": {Days: DaysRU, NamedDayRanges: NamedDayRangesRU, NamedTimes: NamedTimesRU, Delimiters: DelimitersRU},
	"se": {Days: DaysSE},
	"si": {Days: DaysSI},
	"sk": {Days: DaysSK},
	"sr": {Days: DaysSR},
	"th": {Days: DaysTH, Closed: ClosedTH},
	"tr": {Days: DaysTR},
}

// For returns the vocabulary for a language tag (case-insensitive), with
// English fallbacks filled in for any missing artifact. The second return is
// false when the language is unknown.
func For(lang string) (Vocabulary, bool) {
	v, ok := builtin[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return Vocabulary{}, false
	}
	v.Language = strings.ToLower(strings.TrimSpace(lang))
	if len(v.NamedDayRanges) == 0 {
		v.NamedDayRanges = NamedDayRangesEN
	}
	if len(v.NamedTimes) == 0 {
		v.NamedTimes = NamedTimesEN
	}
	if len(v.Delimiters) == 0 {
		v.Delimiters = DelimitersEN
	}
	if len(v.Closed) == 0 {
		v.Closed = ClosedEN
	}
	return v, true
}

// Languages returns the sorted tags of all built-in vocabularies.
func Languages() []string {
	tags := make([]string, 0, len(builtin))
	for tag := range builtin {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
