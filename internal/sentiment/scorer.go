package sentiment

import (
	"strings"

	"mental-health-support/internal/lexicon"
)

const (
	// negationWindow is how many tokens back a negator still flips a
	// polarity word ("I am not feeling good").
	negationWindow = 3

	// intensifierBoost scales a polarity word when the previous token is
	// an intensifier ("very sad").
	intensifierBoost = 1.5

	thresholdNegative = -0.1
	thresholdPositive = 0.1

	// crisisFloor caps the score of any crisis-flagged text. Keeps the
	// scorer consistent with the crisis detector: flagged text always
	// lands well below the negative threshold.
	crisisFloor = -0.75
)

// Scorer turns free text into a bounded sentiment score and label using the
// lexicon's polarity tables. Pure and deterministic: identical text always
// yields the identical Result.
type Scorer struct {
	store *lexicon.Store
}

// NewScorer creates a Scorer over the given rule store.
func NewScorer(store *lexicon.Store) *Scorer {
	return &Scorer{store: store}
}

// Score analyzes one text. Empty text and text with no lexicon hits both
// yield {0, neutral}.
func (s *Scorer) Score(text string) Result {
	normalized := Normalize(text)
	if normalized == "" {
		return Result{Score: 0, Label: LabelNeutral}
	}

	tokens := Tokenize(normalized)
	sum, hits, consumed := s.scorePhrases(tokens)
	wordSum, wordHits := s.scoreWords(tokens, consumed)
	sum += wordSum
	hits += wordHits

	var score float64
	if hits > 0 {
		// Mean matched weight: saturates naturally since every weight is
		// in [-1, 1], and keeps short texts with one strong phrase decisive.
		score = sum / float64(hits)
	}

	if _, ok := s.store.MatchCrisis(normalized); ok && score > crisisFloor {
		score = crisisFloor
	}

	return Result{
		Score: clamp(score),
		Label: classify(clamp(score)),
	}
}

// scorePhrases matches multi-word polarity entries against the token
// sequence and marks the tokens they cover. Covered tokens are skipped by
// the word pass, so the phrase weight is authoritative for its span.
func (s *Scorer) scorePhrases(tokens []string) (sum float64, hits int, consumed []bool) {
	consumed = make([]bool, len(tokens))
	for phrase, weight := range s.store.PolarityPhrases() {
		parts := strings.Fields(phrase)
		if len(parts) == 0 {
			continue
		}
		for i := 0; i+len(parts) <= len(tokens); i++ {
			if !tokensMatchAt(tokens, parts, i) {
				continue
			}
			sum += weight
			hits++
			for j := i; j < i+len(parts); j++ {
				consumed[j] = true
			}
			i += len(parts) - 1
		}
	}
	return sum, hits, consumed
}

func tokensMatchAt(tokens, parts []string, i int) bool {
	for j, p := range parts {
		if tokens[i+j] != p {
			return false
		}
	}
	return true
}

func (s *Scorer) scoreWords(tokens []string, consumed []bool) (sum float64, hits int) {
	for i, token := range tokens {
		if consumed[i] {
			continue
		}
		weight, ok := s.store.PolarityWeight(token)
		if !ok {
			continue
		}

		if i > 0 && s.store.IsIntensifier(tokens[i-1]) {
			weight *= intensifierBoost
		}
		if s.negatedAt(tokens, i) {
			weight = -weight
		}

		sum += clamp(weight)
		hits++
	}
	return sum, hits
}

func (s *Scorer) negatedAt(tokens []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if s.store.IsNegator(tokens[j]) {
			return true
		}
	}
	return false
}

func classify(score float64) Label {
	switch {
	case score < thresholdNegative:
		return LabelNegative
	case score > thresholdPositive:
		return LabelPositive
	default:
		return LabelNeutral
	}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
