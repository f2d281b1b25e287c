package hours

import (
	"regexp"
	"testing"

	"opening-hours-normalizer/internal/vocab"
)

func TestReplaceNamedTimes(t *testing.T) {
	if got := ReplaceNamedTimes("Mon-Fri Midday-Midnight", vocab.NamedTimesEN, true); got != "Mon-Fri 12:00-00:00" {
		t.Fatalf("24h rewrite = %q", got)
	}
	if got := ReplaceNamedTimes("Mon-Fri Midday-Midnight", vocab.NamedTimesEN, false); got != "Mon-Fri 12:00PM-12:00AM" {
		t.Fatalf("12h rewrite = %q", got)
	}
	if got := ReplaceNamedTimes("open until midnight", vocab.NamedTimesEN, true); got != "open until 00:00" {
		t.Fatalf("case-insensitive rewrite = %q", got)
	}
}

func TestSingleDaysRegex_PrefersLongestSynonym(t *testing.T) {
	re := regexp.MustCompile(`(?i)` + SingleDaysRegex(vocab.DaysEN))
	// "Thursdays" must not be cut short at "Thurs" or "Th".
	if got := re.FindString("Thursdays"); got != "Thursdays" {
		t.Fatalf("matched %q, want full synonym", got)
	}
}

func TestTimeOfDayRegex_24h(t *testing.T) {
	re := regexp.MustCompile(`(?i)` + TimeOfDayRegex(true))
	for input, want := range map[string][2]string{
		"9":        {"9", ""},
		"09:30":    {"09", "30"},
		"22.15":    {"22", "15"},
		"0830":     {"08", "30"},
		"08:30:00": {"08", "30"},
	} {
		m := re.FindStringSubmatch(input)
		if m == nil {
			t.Fatalf("no match for %q", input)
		}
		if m[1] != want[0] || m[2] != want[1] {
			t.Fatalf("%q captured (%q, %q), want (%q, %q)", input, m[1], m[2], want[0], want[1])
		}
	}
}

func TestTimeOfDayRegex_12h(t *testing.T) {
	re := regexp.MustCompile(`(?i)` + TimeOfDayRegex(false))
	for input, want := range map[string][3]string{
		"9am":     {"9", "", "am"},
		"5:30pm":  {"5", "30", "pm"},
		"930pm":   {"9", "30", "pm"},
		"1130am":  {"11", "30", "am"},
		"11":      {"11", "", ""},
		"10 p.m.": {"10", "", "p.m."},
	} {
		m := re.FindStringSubmatch(input)
		if m == nil {
			t.Fatalf("no match for %q", input)
		}
		if m[1] != want[0] || m[2] != want[1] || m[3] != want[2] {
			t.Fatalf("%q captured (%q, %q, %q), want %v", input, m[1], m[2], m[3], want)
		}
	}
}

func TestBoundedToken(t *testing.T) {
	for _, tc := range []struct {
		s          string
		start, end int
		want       bool
	}{
		{"Mon 9:00", 0, 3, true},
		{"Salmon 9:00", 3, 6, false},
		{"(Mon)", 1, 4, true},
		{"Monfro", 0, 3, false},
		{"x7Mon", 2, 5, false},
		{"Пн-Пт", 0, 4, true},
		{"яПн", 2, 6, false},
	} {
		if got := boundedToken(tc.s, tc.start, tc.end); got != tc.want {
			t.Fatalf("boundedToken(%q, %d, %d) = %v, want %v", tc.s, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestMeridiemDetection(t *testing.T) {
	for input, want := range map[string]bool{
		"9am-5pm":          true,
		"10 A.M. to 2 PM":  true,
		"9:00-17:00":       false,
		"ample parking":    false,
		"am besten morgen": false,
	} {
		if got := meridiemRe.MatchString(input); got != want {
			t.Fatalf("meridiem detection on %q = %v, want %v", input, got, want)
		}
	}
}
