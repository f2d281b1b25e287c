package hours

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"opening-hours-normalizer/internal/vocab"
)

// The grammar is composed from named sub-patterns: a day matcher (literal
// day ranges with wrap-around, then named ranges, then single days — the
// priority order is a contract), a delimiter matcher and a time-of-day
// matcher, one variant per notation. RE2 has no lookaround assertions and \b
// cannot guard tokens in non-ASCII scripts, so word boundaries around
// localized tokens are enforced in two parts: alternations are ordered
// longest-first so a full synonym always wins before one of its prefixes,
// and Extract rejects matches whose tokens adjoin a word rune on either
// side (boundedToken), so "Salmon" never yields a Monday.

// meridiemRe decides the notation branch: any digit followed by an AM/PM
// marker (periods optional) makes the whole fragment 12h.
var meridiemRe = regexp.MustCompile(`(?i)\d\s*[AP]\.?M\.?`)

// sortTokensLongestFirst orders tokens by descending length, then
// lexicographically for determinism.
func sortTokensLongestFirst(tokens []string) []string {
	out := append([]string{}, tokens...)
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func wordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// boundedToken reports whether the capture at s[start:end] sits on word
// boundaries: it must not adjoin a word rune on either side. Matches that
// fail this landed inside a larger word and are discarded.
func boundedToken(s string, start, end int) bool {
	if r, size := utf8.DecodeLastRuneInString(s[:start]); size > 0 && wordRune(r) {
		return false
	}
	if r, size := utf8.DecodeRuneInString(s[end:]); size > 0 && wordRune(r) {
		return false
	}
	return true
}

func escapeAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = regexp.QuoteMeta(t)
	}
	return out
}

// DelimitersRegex builds the sub-pattern capturing the delimiters between
// range ends ("Mon-Fri", "9am to 5pm"), in table order.
func DelimitersRegex(delimiters []string) string {
	return `\s*(?:` + strings.Join(escapeAll(delimiters), "|") + `)\s*`
}

// SingleDaysRegex builds the sub-pattern capturing one localized day name.
func SingleDaysRegex(days map[string]string) string {
	names := make([]string, 0, len(days))
	for name := range days {
		names = append(names, name)
	}
	return `(` + strings.Join(escapeAll(sortTokensLongestFirst(names)), "|") + `)`
}

// daySynonyms groups the localized spellings of each canonical day, longest
// first within each group.
func daySynonyms(days map[string]string) map[string][]string {
	synonyms := make(map[string][]string, len(Days))
	for name, day := range days {
		synonyms[day] = append(synonyms[day], name)
	}
	for day, names := range synonyms {
		synonyms[day] = sortTokensLongestFirst(names)
	}
	return synonyms
}

// DayRangesRegex builds one sub-pattern per possible day-range shape, each
// capturing the two range ends. Parts cover every range starting Monday or
// later ("Mon-Sun", "Tue and Wed"), plus ranges commencing on Sunday for
// sources whose week starts there ("Sun to Thu").
func DayRangesRegex(days map[string]string, delimiters []string) []string {
	synonyms := daySynonyms(days)
	// A day with no synonyms in this vocabulary makes its range shapes
	// impossible; emitting an empty group would match the empty string, so
	// those parts are omitted instead.
	group := func(dayCodes []string) string {
		var names []string
		for _, code := range dayCodes {
			names = append(names, synonyms[code]...)
		}
		if len(names) == 0 {
			return ""
		}
		return `(` + strings.Join(escapeAll(sortTokensLongestFirst(names)), "|") + `)`
	}

	var parts []string
	for i := 0; i < 6; i++ {
		start := group(Days[i : i+1])
		end := group(Days[i+1:])
		if start == "" || end == "" {
			continue
		}
		parts = append(parts, start+DelimitersRegex(delimiters)+end)
	}
	// Sunday-start ranges wrap to any day up to Saturday.
	if start, end := group([]string{"Su"}), group(Days[:6]); start != "" && end != "" {
		parts = append(parts, start+DelimitersRegex(delimiters)+end)
	}
	return parts
}

// NamedDayRangesRegex builds the sub-pattern capturing a named day range
// ("Weekends"). Empty when the vocabulary defines none.
func NamedDayRangesRegex(namedDayRanges map[string][]string) string {
	if len(namedDayRanges) == 0 {
		return ""
	}
	names := make([]string, 0, len(namedDayRanges))
	for name := range namedDayRanges {
		names = append(names, name)
	}
	return `(` + strings.Join(escapeAll(sortTokensLongestFirst(names)), "|") + `)`
}

// AnyDayExtractionRegex combines the day sub-patterns in priority order:
// literal day ranges, then named ranges, then single days.
func AnyDayExtractionRegex(days map[string]string, namedDayRanges map[string][]string, delimiters []string) string {
	parts := DayRangesRegex(days, delimiters)
	if named := NamedDayRangesRegex(namedDayRanges); named != "" {
		parts = append(parts, named)
	}
	parts = append(parts, SingleDaysRegex(days))
	return `(?:` + strings.Join(parts, "|") + `)`
}

// timeOfDayPattern builds the sub-pattern for one time of day. Both variants
// accept optional minutes and seconds with an optional separator ("9:30pm"
// and "930pm" alike); the 24h variant accepts 0-24 hours, the 12h variant
// 0-12 hours plus an optional AM/PM marker with optional periods. capture
// controls whether the hour/minute(/meridiem) groups are capturing.
func timeOfDayPattern(time24h, capture bool) string {
	open, openOpt := "(", "("
	if !capture {
		open, openOpt = "(?:", "(?:"
	}
	if time24h {
		return `\b` + open + `2[0-4]|[01][0-9]|[0-9])(?:[:.]?` + openOpt + `[0-5][0-9])(?:[:.]?[0-5][0-9])?)?\b`
	}
	return `\b` + open + `1[0-2]|0[0-9]|[0-9])(?:[:.]?` + openOpt + `[0-5][0-9])(?:[:.]?[0-5][0-9])?)?\s*` + open + `[AP]\.?M\.?)?`
}

// TimeOfDayRegex returns the capturing time-of-day sub-pattern for the
// requested notation.
func TimeOfDayRegex(time24h bool) string {
	return timeOfDayPattern(time24h, true)
}

// HoursExtractionRegex builds the full extraction pattern for one notation:
// day selector, separator, then one or more delimited time ranges captured
// as a single trailing group for re-scanning.
func HoursExtractionRegex(time24h bool, days map[string]string, namedDayRanges map[string][]string, delimiters []string) string {
	t := timeOfDayPattern(time24h, false)
	return AnyDayExtractionRegex(days, namedDayRanges, delimiters) +
		`(?:\W+|` + DelimitersRegex(delimiters) + `)` +
		`((?:(?:\s*[,/-]?\s*)?` + t + DelimitersRegex(delimiters) + t + `)+)`
}

// ClosedDaysExtractionRegex builds the closed-day pattern: day selector,
// separator, then a closed token as the trailing group. It runs regardless
// of the notation branch since closed phrases carry no time of day.
func ClosedDaysExtractionRegex(days map[string]string, namedDayRanges map[string][]string, delimiters []string, closed []string) string {
	return AnyDayExtractionRegex(days, namedDayRanges, delimiters) +
		`(?:\W+|` + DelimitersRegex(delimiters) + `)` +
		`(` + strings.Join(escapeAll(closed), "|") + `)`
}

// ReplaceNamedTimes rewrites named times of day (e.g. Midnight) to the
// literal form matching the grammar about to run: the 24h equivalent
// ("00:00") or the 12h equivalent ("12:00AM"). Replacement is
// case-insensitive; longer names are replaced first so overlapping synonyms
// cannot corrupt each other.
func ReplaceNamedTimes(hoursString string, namedTimes map[string]vocab.NamedTime, time24h bool) string {
	names := make([]string, 0, len(namedTimes))
	for name := range namedTimes {
		names = append(names, name)
	}
	for _, name := range sortTokensLongestFirst(names) {
		replacement := namedTimes[name].Time12
		if time24h {
			replacement = namedTimes[name].Time24
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name))
		hoursString = re.ReplaceAllLiteralString(hoursString, replacement)
	}
	return hoursString
}

// Grammar holds the compiled extraction patterns for one vocabulary.
// Construction is deterministic given the tables, so instances may be cached
// per vocabulary and shared by concurrent readers.
type Grammar struct {
	vocab       vocab.Vocabulary
	full24      *regexp.Regexp
	full12      *regexp.Regexp
	closedDays  *regexp.Regexp
	timeRange24 *regexp.Regexp
	timeRange12 *regexp.Regexp
}

// NewGrammar compiles the 24h, 12h and closed-day grammars for a vocabulary.
func NewGrammar(v vocab.Vocabulary) *Grammar {
	timeRange := func(time24h bool) string {
		return `(?i)` + TimeOfDayRegex(time24h) + DelimitersRegex(v.Delimiters) + TimeOfDayRegex(time24h)
	}
	return &Grammar{
		vocab:       v,
		full24:      regexp.MustCompile(`(?i)` + HoursExtractionRegex(true, v.Days, v.NamedDayRanges, v.Delimiters)),
		full12:      regexp.MustCompile(`(?i)` + HoursExtractionRegex(false, v.Days, v.NamedDayRanges, v.Delimiters)),
		closedDays:  regexp.MustCompile(`(?i)` + ClosedDaysExtractionRegex(v.Days, v.NamedDayRanges, v.Delimiters, v.Closed)),
		timeRange24: regexp.MustCompile(timeRange(true)),
		timeRange12: regexp.MustCompile(timeRange(false)),
	}
}
