package hours

import (
	"fmt"
	"strconv"
	"strings"

	"opening-hours-normalizer/internal/vocab"
)

// ExtractedRange is one extraction result: the canonical days a time range
// applies to and the open/close times as zero-padded 24h HH:MM strings. For
// closed-day matches Open and Close both hold the vocabulary's first closed
// token, which AddRange interprets as a closed marking.
type ExtractedRange struct {
	Days  []string `json:"days"`
	Open  string   `json:"open"`
	Close string   `json:"close"`
}

// Extract pulls opening time information out of one localized free-text
// fragment. Fragments the grammar cannot match yield an empty result, not an
// error; an error is only possible when a matched day token fails to resolve
// against the same tables the grammar was built from. Matches whose day
// tokens sit inside a larger word ("Salmon", "Transat") are discarded, the
// engine's substitute for lookaround word boundaries.
func (g *Grammar) Extract(rangesString string) ([]ExtractedRange, error) {
	// Rewrite named times so each notation's grammar sees consistent input.
	string24h := ReplaceNamedTimes(rangesString, g.vocab.NamedTimes, true)
	string12h := ReplaceNamedTimes(rangesString, g.vocab.NamedTimes, false)

	var results []ExtractedRange

	if meridiemRe.MatchString(string24h) {
		// The fragment contains AM/PM (or derivatives): treat the whole
		// fragment as 12h notation.
		for _, idx := range g.full12.FindAllStringSubmatchIndex(string12h, -1) {
			days, ok, err := g.matchDays(string12h, idx)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			blob := string12h[idx[len(idx)-2]:idx[len(idx)-1]]
			for _, tr := range g.timeRange12.FindAllStringSubmatch(blob, -1) {
				// Missing meridiems default to AM for opening times and PM
				// for closing times; not derivable from the input, just the
				// overwhelmingly common case.
				results = append(results, ExtractedRange{
					Days:  days,
					Open:  resolve12h(tr[1], tr[2], tr[3], "AM"),
					Close: resolve12h(tr[4], tr[5], tr[6], "PM"),
				})
			}
		}
	} else {
		// No AM/PM marker: assume 24h notation. "7:00-11:00" could be a 5 or
		// an 18 hour schedule; sources for which the 24h assumption is wrong
		// must add a disambiguating marker in their own pre-processing.
		for _, idx := range g.full24.FindAllStringSubmatchIndex(string24h, -1) {
			days, ok, err := g.matchDays(string24h, idx)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			blob := string24h[idx[len(idx)-2]:idx[len(idx)-1]]
			for _, tr := range g.timeRange24.FindAllStringSubmatch(blob, -1) {
				results = append(results, ExtractedRange{
					Days:  days,
					Open:  format24h(tr[1], tr[2]),
					Close: format24h(tr[3], tr[4]),
				})
			}
		}
	}

	// Closed-day phrases carry no time of day, so this grammar runs on every
	// fragment regardless of the notation branch. A vocabulary without closed
	// tokens has no closed-day grammar to run.
	if len(g.vocab.Closed) > 0 {
		for _, idx := range g.closedDays.FindAllStringSubmatchIndex(string24h, -1) {
			days, ok, err := g.matchDays(string24h, idx)
			if err != nil {
				return nil, err
			}
			// The closed token gets the same boundary treatment as day
			// tokens: "off" inside "office" marks nothing closed.
			if !ok || !boundedToken(string24h, idx[len(idx)-2], idx[len(idx)-1]) {
				continue
			}
			results = append(results, ExtractedRange{Days: days, Open: g.vocab.Closed[0], Close: g.vocab.Closed[0]})
		}
	}

	return results, nil
}

// matchDays resolves the day tokens of one full-grammar match, given its
// submatch index pairs. All groups except the trailing times/closed group
// belong to the day selector; the shape of the match decides how many are
// populated. A day token adjoining a word rune invalidates the whole match
// (ok false), it landed inside an unrelated word.
func (g *Grammar) matchDays(s string, idx []int) ([]string, bool, error) {
	var tokens []string
	for i := 1; i < len(idx)/2-1; i++ {
		start, end := idx[2*i], idx[2*i+1]
		if start < 0 {
			continue
		}
		if !boundedToken(s, start, end) {
			return nil, false, nil
		}
		tokens = append(tokens, s[start:end])
	}
	days, err := DaysInDayRange(tokens, g.vocab.Days, g.vocab.NamedDayRanges)
	if err != nil {
		return nil, false, err
	}
	return days, true, nil
}

// format24h renders a captured 24h hour/minute pair as zero-padded HH:MM.
func format24h(hour, minute string) string {
	h, _ := strconv.Atoi(hour)
	if minute == "" {
		minute = "00"
	}
	return fmt.Sprintf("%02d:%s", h, minute)
}

// resolve12h renders a captured 12h time as zero-padded 24h HH:MM, applying
// the fallback meridiem when the source omitted one.
func resolve12h(hour, minute, meridiem, fallback string) string {
	h, _ := strconv.Atoi(hour)
	if h == 0 {
		// "0:30AM" style inputs mean 12:30AM.
		h = 12
	}
	if minute == "" {
		minute = "00"
	}
	m := strings.ToUpper(strings.ReplaceAll(meridiem, ".", ""))
	if m == "" {
		m = fallback
	}
	if m == "AM" {
		if h == 12 {
			h = 0
		}
	} else if h != 12 {
		h += 12
	}
	return fmt.Sprintf("%02d:%s", h, minute)
}

// ExtractHoursFromString is the one-shot form of Grammar.Extract for callers
// that do not reuse grammars across fragments.
func ExtractHoursFromString(rangesString string, v vocab.Vocabulary) ([]ExtractedRange, error) {
	return NewGrammar(v).Extract(rangesString)
}
