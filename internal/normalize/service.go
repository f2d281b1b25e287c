// Package normalize turns free-text opening hours into the canonical
// serialization, trying candidate languages in order until one yields data.
package normalize

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"opening-hours-normalizer/internal/hours"
	"opening-hours-normalizer/internal/vocab"
	errs "opening-hours-normalizer/pkg/errors"
)

// Result is the outcome of normalizing one fragment. Matched is false when no
// candidate language extracted anything; OpeningHours is empty in that case.
// Ranges carries the raw extraction triples of the winning language for
// callers that post-process beyond the canonical string.
type Result struct {
	OpeningHours string                 `json:"opening_hours"`
	Language     string                 `json:"language,omitempty"`
	Matched      bool                   `json:"matched"`
	Ranges       []hours.ExtractedRange `json:"ranges,omitempty"`
}

// Service normalizes fragments against registry vocabularies. Grammar
// compilation is expensive relative to extraction, so compiled grammars are
// cached per language tag and shared by concurrent requests.
type Service struct {
	vocabs *vocab.Registry
	log    *zap.Logger

	mu       sync.RWMutex
	grammars map[string]*hours.Grammar
}

func NewService(vocabs *vocab.Registry, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		vocabs:   vocabs,
		log:      log,
		grammars: make(map[string]*hours.Grammar),
	}
}

// grammar returns the cached grammar for a vocabulary, compiling on first use.
// The registry's custom entries are fixed after startup, so a tag never maps
// to two different vocabularies within a process lifetime.
func (s *Service) grammar(v vocab.Vocabulary) *hours.Grammar {
	s.mu.RLock()
	g, ok := s.grammars[v.Language]
	s.mu.RUnlock()
	if ok {
		return g
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok = s.grammars[v.Language]; ok {
		return g
	}
	g = hours.NewGrammar(v)
	s.grammars[v.Language] = g
	return g
}

// Normalize extracts opening hours from text, trying each candidate language
// in order and returning the first that yields data. Unknown language tags
// are an error; a fragment no language can match is not, it reports
// Matched: false so callers can distinguish "no hours here" from bad input.
func (s *Service) Normalize(text string, languages []string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, errs.NewValidation("normalize.Normalize", "text must not be empty", nil)
	}
	if len(languages) == 0 {
		return Result{}, errs.NewValidation("normalize.Normalize", "at least one language is required", nil)
	}

	for _, lang := range languages {
		v, ok := s.vocabs.Resolve(lang)
		if !ok {
			return Result{}, errs.NewValidation("normalize.Normalize",
				"unknown language "+strings.ToLower(strings.TrimSpace(lang)), nil)
		}

		results, err := s.grammar(v).Extract(text)
		if err != nil {
			// A matched token that fails to resolve is a vocabulary defect,
			// not a caller error; try the remaining languages.
			s.log.Warn("extraction failed",
				zap.String("language", v.Language),
				zap.Error(err))
			continue
		}

		oh := hours.NewOpeningHours()
		opts := hours.RangeOptions{Closed: v.Closed}
		for _, r := range results {
			for _, day := range r.Days {
				if err := oh.AddRange(day, hours.Text(r.Open), hours.Text(r.Close), opts); err != nil {
					return Result{}, err
				}
			}
		}
		if oh.HasData() {
			return Result{
				OpeningHours: oh.AsOpeningHours(),
				Language:     v.Language,
				Matched:      true,
				Ranges:       results,
			}, nil
		}
	}
	return Result{}, nil
}
