package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVocabYAML = `
language: xx
days:
  Firstday: Mo
  Lastday: Su
named_day_ranges:
  Allweek: [Mo, Tu, We, Th, Fr, Sa, Su]
named_times:
  Highsun:
    time12: "12:00PM"
    time24: "12:00"
delimiters: ["-", "till"]
closed: ["shut"]
`

func TestParse(t *testing.T) {
	v, err := Parse([]byte(sampleVocabYAML))
	require.NoError(t, err)
	assert.Equal(t, "xx", v.Language)
	assert.Equal(t, "Mo", v.Days["Firstday"])
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, v.NamedDayRanges["Allweek"])
	assert.Equal(t, NamedTime{Time12: "12:00PM", Time24: "12:00"}, v.NamedTimes["Highsun"])
	assert.Equal(t, []string{"-", "till"}, v.Delimiters)
	assert.Equal(t, []string{"shut"}, v.Closed)
}

func TestParse_FillsEnglishFallbacks(t *testing.T) {
	v, err := Parse([]byte("language: xx\ndays:\n  Firstday: Mo\n"))
	require.NoError(t, err)
	assert.Equal(t, DelimitersEN, v.Delimiters)
	assert.Equal(t, ClosedEN, v.Closed)
	assert.Len(t, v.NamedTimes, len(NamedTimesEN))
}

func TestParse_EmptyListsFallBackToEnglish(t *testing.T) {
	// Explicitly empty lists must behave like omitted ones: a grammar built
	// from an empty token alternation would match the empty string.
	v, err := Parse([]byte("language: zz\ndays:\n  Zonmon: Mo\nclosed: []\ndelimiters: []\nnamed_day_ranges: {}\nnamed_times: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, ClosedEN, v.Closed)
	assert.Equal(t, DelimitersEN, v.Delimiters)
	assert.Equal(t, NamedDayRangesEN, v.NamedDayRanges)
	assert.Len(t, v.NamedTimes, len(NamedTimesEN))
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"bad yaml":         "{{",
		"missing language": "days:\n  Firstday: Mo\n",
		"no days":          "language: xx\n",
		"bad day code":     "language: xx\ndays:\n  Firstday: Monday\n",
		"bad named range":  "language: xx\ndays:\n  Firstday: Mo\nnamed_day_ranges:\n  Allweek: [Mo, Xx]\n",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected parse error", name)
		}
	}
}

func TestRegistry_ResolveBuiltin(t *testing.T) {
	r := NewRegistry()
	v, ok := r.Resolve("De")
	require.True(t, ok)
	assert.Equal(t, "de", v.Language)
}

func TestRegistry_CustomOverridesBuiltin(t *testing.T) {
	r := NewRegistry()
	v, err := Parse([]byte("language: de\ndays:\n  Werktag: Mo\n"))
	require.NoError(t, err)
	require.NoError(t, r.Register(v))

	got, ok := r.Resolve("de")
	require.True(t, ok)
	assert.Equal(t, "Mo", got.Days["Werktag"])
	_, hasBuiltin := got.Days["Montag"]
	assert.False(t, hasBuiltin)
}

func TestRegistry_LoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xx.yaml"), []byte(sampleVocabYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	r := NewRegistry()
	require.NoError(t, r.LoadDir(dir))

	v, ok := r.Resolve("xx")
	require.True(t, ok)
	assert.Equal(t, "Su", v.Days["Lastday"])
	assert.Contains(t, r.Tags(), "xx")
}

func TestRegistry_LoadDirEmptyPathIsNoOp(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.LoadDir(""))
}

func TestRegistry_LoadDirMissing(t *testing.T) {
	r := NewRegistry()
	require.Error(t, r.LoadDir(filepath.Join(t.TempDir(), "absent")))
}

func TestRegistry_LoadDirBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("language: xx\n"), 0o644))
	r := NewRegistry()
	require.Error(t, r.LoadDir(dir))
}

func TestRegistry_Tags(t *testing.T) {
	r := NewRegistry()
	tags := r.Tags()
	assert.Equal(t, Languages(), tags)

	v, err := Parse([]byte("language: zz\ndays:\n  Firstday: Mo\n"))
	require.NoError(t, err)
	require.NoError(t, r.Register(v))
	assert.Contains(t, r.Tags(), "zz")
}
