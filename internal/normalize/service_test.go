package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opening-hours-normalizer/internal/vocab"
	errs "opening-hours-normalizer/pkg/errors"
)

func newService() *Service {
	return NewService(vocab.NewRegistry(), nil)
}

func TestNormalize_English(t *testing.T) {
	s := newService()
	got, err := s.Normalize("Mon-Fri 9:00-17:00, Sat 10:00-14:00", []string{"en"})
	require.NoError(t, err)
	assert.True(t, got.Matched)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "Mo-Fr 09:00-17:00; Sa 10:00-14:00", got.OpeningHours)
	require.Len(t, got.Ranges, 2)
	assert.Equal(t, []string{"Sa"}, got.Ranges[1].Days)
	assert.Equal(t, "10:00", got.Ranges[1].Open)
}

func TestNormalize_LanguageFallback(t *testing.T) {
	s := newService()
	got, err := s.Normalize("Mon-Fri 9:00-17:00", []string{"de", "en"})
	require.NoError(t, err)
	assert.True(t, got.Matched)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "Mo-Fr 09:00-17:00", got.OpeningHours)
}

func TestNormalize_German(t *testing.T) {
	s := newService()
	got, err := s.Normalize("Montag bis Freitag 08:30-18:00, Sonntag geschlossen", []string{"de"})
	require.NoError(t, err)
	assert.True(t, got.Matched)
	assert.Equal(t, "de", got.Language)
	assert.Equal(t, "Mo-Fr 08:30-18:00; Su closed", got.OpeningHours)
}

func TestNormalize_NoMatch(t *testing.T) {
	s := newService()
	got, err := s.Normalize("call for opening times", []string{"en"})
	require.NoError(t, err)
	assert.False(t, got.Matched)
	assert.Empty(t, got.OpeningHours)
}

func TestNormalize_EmptyText(t *testing.T) {
	s := newService()
	_, err := s.Normalize("   ", []string{"en"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestNormalize_NoLanguages(t *testing.T) {
	s := newService()
	_, err := s.Normalize("Mon 9:00-17:00", nil)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestNormalize_UnknownLanguage(t *testing.T) {
	s := newService()
	_, err := s.Normalize("Mon 9:00-17:00", []string{"xx"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestNormalize_CustomVocabularyOverride(t *testing.T) {
	reg := vocab.NewRegistry()
	v, err := vocab.Parse([]byte(`
language: xx
days:
  Firstday: Mo
  Lastday: Fr
`))
	require.NoError(t, err)
	require.NoError(t, reg.Register(v))

	s := NewService(reg, nil)
	got, err := s.Normalize("Firstday-Lastday 9:00-17:00", []string{"xx"})
	require.NoError(t, err)
	assert.True(t, got.Matched)
	assert.Equal(t, "Mo-Fr 09:00-17:00", got.OpeningHours)
}

func TestNormalize_RegisteredVocabularyWithoutClosedTokens(t *testing.T) {
	reg := vocab.NewRegistry()
	require.NoError(t, reg.Register(vocab.Vocabulary{
		Language:   "zz",
		Days:       map[string]string{"Zonmon": "Mo"},
		Delimiters: vocab.DelimitersEN,
	}))

	s := NewService(reg, nil)
	got, err := s.Normalize("Zonmon 9:00-17:00", []string{"zz"})
	require.NoError(t, err)
	assert.Equal(t, "Mo 09:00-17:00", got.OpeningHours)
}

func TestNormalize_GrammarCacheReuse(t *testing.T) {
	s := newService()
	for i := 0; i < 3; i++ {
		got, err := s.Normalize("Sat 10:00-14:00", []string{"en"})
		require.NoError(t, err)
		assert.Equal(t, "Sa 10:00-14:00", got.OpeningHours)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.Len(t, s.grammars, 1)
}
