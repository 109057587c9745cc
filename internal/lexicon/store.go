package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Store is the immutable rule table for the scoring engine. It is loaded
// once at startup and never mutated afterwards, so concurrent reads need
// no synchronization.
type Store struct {
	polarityWords   map[string]float64
	polarityPhrases map[string]float64
	negators        map[string]struct{}
	intensifiers    map[string]struct{}
	crisisTriggers  map[string][]string
	crisisOrder     []string
	categories      map[string][]string
	recommendations map[string][]string
}

// Load reads the lexicon yaml at path. A missing file is not an error:
// the compiled-in defaults are used so the service stays operational.
func Load(path string) (*Store, error) {
	if path == "" {
		return newStore(defaultTables()), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return newStore(defaultTables()), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	t := tables{
		PolarityWords:   map[string]float64{},
		PolarityPhrases: map[string]float64{},
		CrisisTriggers:  map[string][]string{},
		Categories:      map[string][]string{},
		Recommendations: map[string][]string{},
	}

	for word, weight := range v.GetStringMap("polarity.words") {
		t.PolarityWords[word] = toFloat(weight)
	}
	for phrase, weight := range v.GetStringMap("polarity.phrases") {
		t.PolarityPhrases[phrase] = toFloat(weight)
	}
	t.Negators = v.GetStringSlice("negators")
	t.Intensifiers = v.GetStringSlice("intensifiers")
	for category := range v.GetStringMap("crisis_triggers") {
		t.CrisisTriggers[category] = v.GetStringSlice("crisis_triggers." + category)
	}
	for axis := range v.GetStringMap("categories") {
		t.Categories[axis] = v.GetStringSlice("categories." + axis)
	}
	for key := range v.GetStringMap("recommendations") {
		t.Recommendations[key] = v.GetStringSlice("recommendations." + key)
	}

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon file %s: %w", path, err)
	}

	return newStore(t), nil
}

// MustDefault returns a Store built from the compiled-in tables. Intended
// for tests and for callers that need a lexicon without configuration.
func MustDefault() *Store {
	return newStore(defaultTables())
}

func (t tables) validate() error {
	if len(t.PolarityWords) == 0 {
		return fmt.Errorf("polarity.words is empty")
	}
	if len(t.CrisisTriggers) == 0 {
		return fmt.Errorf("crisis_triggers is empty")
	}
	if len(t.Categories) == 0 {
		return fmt.Errorf("categories is empty")
	}
	if len(t.Recommendations[string(RecGeneric)]) == 0 {
		return fmt.Errorf("recommendations.generic is empty")
	}
	for word, weight := range t.PolarityWords {
		if weight < -1 || weight > 1 {
			return fmt.Errorf("polarity weight out of range for %q: %f", word, weight)
		}
	}
	return nil
}

func newStore(t tables) *Store {
	s := &Store{
		polarityWords:   t.PolarityWords,
		polarityPhrases: t.PolarityPhrases,
		negators:        make(map[string]struct{}, len(t.Negators)),
		intensifiers:    make(map[string]struct{}, len(t.Intensifiers)),
		crisisTriggers:  t.CrisisTriggers,
		categories:      t.Categories,
		recommendations: t.Recommendations,
	}
	for _, n := range t.Negators {
		s.negators[n] = struct{}{}
	}
	for _, i := range t.Intensifiers {
		s.intensifiers[i] = struct{}{}
	}
	// Deterministic category scan order regardless of map iteration.
	for category := range t.CrisisTriggers {
		s.crisisOrder = append(s.crisisOrder, category)
	}
	sort.Strings(s.crisisOrder)
	return s
}

// PolarityWeight returns the polarity weight for a single token.
func (s *Store) PolarityWeight(token string) (float64, bool) {
	w, ok := s.polarityWords[token]
	return w, ok
}

// PolarityPhrases returns the multi-word polarity table.
// Callers must not mutate the returned map.
func (s *Store) PolarityPhrases() map[string]float64 {
	return s.polarityPhrases
}

// IsNegator reports whether the token flips the sign of a following
// polarity word.
func (s *Store) IsNegator(token string) bool {
	_, ok := s.negators[token]
	return ok
}

// IsIntensifier reports whether the token boosts a following polarity word.
func (s *Store) IsIntensifier(token string) bool {
	_, ok := s.intensifiers[token]
	return ok
}

// MatchCrisis scans normalized text for crisis trigger phrases. Matching is
// deliberately permissive (substring, not exact-word): a false positive
// costs a cautious reply, a false negative costs much more.
func (s *Store) MatchCrisis(normalized string) (CrisisMatch, bool) {
	for _, category := range s.crisisOrder {
		for _, phrase := range s.crisisTriggers[category] {
			if strings.Contains(normalized, phrase) {
				return CrisisMatch{Category: category, Phrase: phrase}, true
			}
		}
	}
	return CrisisMatch{}, false
}

// CategoryKeywords returns the keyword set for an assessment axis.
// Callers must not mutate the returned slice.
func (s *Store) CategoryKeywords(axis Axis) []string {
	return s.categories[string(axis)]
}

// Recommendations returns the recommendation texts for a key.
// Callers must not mutate the returned slice.
func (s *Store) Recommendations(key RecommendationKey) []string {
	return s.recommendations[string(key)]
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
