package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	errs "opening-hours-normalizer/pkg/errors"
)

// Registry resolves vocabularies by language tag, letting operators ship
// site-specific tables as YAML files that override or extend the built-ins.
// Custom files are loaded once at startup; Resolve is safe for concurrent
// readers.
type Registry struct {
	mu     sync.RWMutex
	custom map[string]Vocabulary
}

// NewRegistry returns a registry with built-in vocabularies only.
func NewRegistry() *Registry {
	return &Registry{custom: make(map[string]Vocabulary)}
}

// fileVocabulary is the YAML shape of a custom vocabulary file.
type fileVocabulary struct {
	Language       string                   `yaml:"language"`
	Days           map[string]string        `yaml:"days"`
	NamedDayRanges map[string][]string      `yaml:"named_day_ranges"`
	NamedTimes     map[string]fileNamedTime `yaml:"named_times"`
	Delimiters     []string                 `yaml:"delimiters"`
	Closed         []string                 `yaml:"closed"`
}

type fileNamedTime struct {
	Time12 string `yaml:"time12"`
	Time24 string `yaml:"time24"`
}

// Parse decodes and validates one custom vocabulary document. Every day
// mapping must target a canonical day code; named ranges must expand to
// canonical day codes only.
func Parse(b []byte) (Vocabulary, error) {
	var fv fileVocabulary
	if err := yaml.Unmarshal(b, &fv); err != nil {
		return Vocabulary{}, errs.NewValidation("vocab.Parse", "invalid vocabulary YAML", err)
	}
	if strings.TrimSpace(fv.Language) == "" {
		return Vocabulary{}, errs.NewValidation("vocab.Parse", "vocabulary file missing language tag", nil)
	}
	if len(fv.Days) == 0 {
		return Vocabulary{}, errs.NewValidation("vocab.Parse", "vocabulary file defines no day names", nil)
	}
	for name, code := range fv.Days {
		if !IsDayCode(code) {
			return Vocabulary{}, errs.NewValidation("vocab.Parse",
				fmt.Sprintf("day %q maps to %q, want one of %v", name, code, DayCodes), nil)
		}
	}
	for name, days := range fv.NamedDayRanges {
		for _, code := range days {
			if !IsDayCode(code) {
				return Vocabulary{}, errs.NewValidation("vocab.Parse",
					fmt.Sprintf("named range %q contains %q, want one of %v", name, code, DayCodes), nil)
			}
		}
	}

	v := Vocabulary{
		Language:       strings.ToLower(strings.TrimSpace(fv.Language)),
		Days:           fv.Days,
		NamedDayRanges: fv.NamedDayRanges,
		Delimiters:     fv.Delimiters,
		Closed:         fv.Closed,
	}
	if len(fv.NamedTimes) > 0 {
		v.NamedTimes = make(map[string]NamedTime, len(fv.NamedTimes))
		for name, t := range fv.NamedTimes {
			v.NamedTimes[name] = NamedTime{Time12: t.Time12, Time24: t.Time24}
		}
	}
	// Fall back to English artifacts for anything the file leaves out or
	// leaves empty, same as the built-in bundles. An explicitly empty list
	// counts as left out: a grammar built from an empty token alternation
	// matches the empty string.
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
	return v, nil
}

// Register adds or replaces a custom vocabulary under its language tag.
func (r *Registry) Register(v Vocabulary) error {
	tag := strings.ToLower(strings.TrimSpace(v.Language))
	if tag == "" {
		return errs.NewValidation("vocab.Register", "vocabulary missing language tag", nil)
	}
	v.Language = tag
	r.mu.Lock()
	r.custom[tag] = v
	r.mu.Unlock()
	return nil
}

// LoadFile parses one vocabulary file and registers it under its language
// tag, replacing any previous custom entry for that tag.
func (r *Registry) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errs.NewValidation("vocab.LoadFile", fmt.Sprintf("read %s", path), err)
	}
	v, err := Parse(b)
	if err != nil {
		return err
	}
	return r.Register(v)
}

// LoadDir loads every .yml/.yaml file in dir. An empty dir means built-ins
// only and is not an error; a missing dir is.
func (r *Registry) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errs.NewValidation("vocab.LoadDir", fmt.Sprintf("read vocabulary dir %s", dir), err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Tags returns the sorted language tags the registry can resolve, built-in
// and custom combined.
func (r *Registry) Tags() []string {
	seen := make(map[string]bool)
	for _, tag := range Languages() {
		seen[tag] = true
	}
	r.mu.RLock()
	for tag := range r.custom {
		seen[tag] = true
	}
	r.mu.RUnlock()
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Resolve returns the vocabulary for a language tag, preferring custom
// entries over built-ins.
func (r *Registry) Resolve(lang string) (Vocabulary, bool) {
	tag := strings.ToLower(strings.TrimSpace(lang))
	r.mu.RLock()
	v, ok := r.custom[tag]
	r.mu.RUnlock()
	if ok {
		return v, true
	}
	return For(tag)
}
