package hours

import (
	"reflect"
	"testing"

	"opening-hours-normalizer/internal/vocab"
	errs "opening-hours-normalizer/pkg/errors"
)

func TestSanitiseDay_English(t *testing.T) {
	for input, want := range map[string]string{
		"Monday":    "Mo",
		"monday":    "Mo",
		"MONDAY":    "Mo",
		"Tues":      "Tu",
		" Sat ":     "Sa",
		"-Sun.":     "Su",
		"Mo":        "Mo",
		"Su":        "Su",
		"Feiertag":  "",
		"":          "",
		"Nonsense":  "",
	} {
		if got := SanitiseDay(input); got != want {
			t.Fatalf("SanitiseDay(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitiseDay_SchemaOrgPrefixes(t *testing.T) {
	for input, want := range map[string]string{
		"https://schema.org/Saturday": "Sa",
		"http://schema.org/Monday":    "Mo",
		"schema.org/Wednesday":        "We",
		"https://schema.org/#Friday":  "Fr",
	} {
		if got := SanitiseDay(input); got != want {
			t.Fatalf("SanitiseDay(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitiseDay_TablePriority(t *testing.T) {
	if got := SanitiseDay("Di", vocab.DaysEN, vocab.DaysDE); got != "Tu" {
		t.Fatalf("expected fallback to second table, got %q", got)
	}
	if got := SanitiseDay("Понедельник", vocab.DaysByFrequency...); got != "Mo" {
		t.Fatalf("expected frequency list to resolve Russian Monday, got %q", got)
	}
}

func TestDayRange_Simple(t *testing.T) {
	got, err := DayRange("Mon", "Fri", vocab.DaysEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Mo", "Tu", "We", "Th", "Fr"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DayRange(Mon, Fri) = %v, want %v", got, want)
	}
}

func TestDayRange_WrapsAroundWeek(t *testing.T) {
	got, err := DayRange("Saturday", "Tuesday", vocab.DaysEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Sa", "Su", "Mo", "Tu"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DayRange(Saturday, Tuesday) = %v, want %v", got, want)
	}
}

func TestDayRange_UnresolvableDay(t *testing.T) {
	_, err := DayRange("Feiertag", "Mo", vocab.DaysDE)
	if err == nil {
		t.Fatal("expected error for unresolvable day token")
	}
	if !errs.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDaysInDayRange_NamedRange(t *testing.T) {
	got, err := DaysInDayRange([]string{"Weekends"}, vocab.DaysEN, vocab.NamedDayRangesEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Sa", "Su"}) {
		t.Fatalf("expected weekend expansion, got %v", got)
	}
}

func TestDaysInDayRange_LiteralRangeWinsOverNames(t *testing.T) {
	// Two distinct tokens are always a literal range, never a named lookup.
	got, err := DaysInDayRange([]string{"Sat", "Sun"}, vocab.DaysEN, vocab.NamedDayRangesEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Sa", "Su"}) {
		t.Fatalf("expected literal Sa-Su range, got %v", got)
	}
}

func TestDaysInDayRange_SameDayCollapses(t *testing.T) {
	got, err := DaysInDayRange([]string{"Mon", "Monday"}, vocab.DaysEN, vocab.NamedDayRangesEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Mo"}) {
		t.Fatalf("expected single Monday, got %v", got)
	}
}

func TestDaysInDayRange_UnresolvableToken(t *testing.T) {
	if _, err := DaysInDayRange([]string{"Feiertag"}, vocab.DaysDE, nil); err == nil {
		t.Fatal("expected error for unresolvable day token")
	}
}
