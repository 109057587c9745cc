package sentiment

import "mental-health-support/internal/lexicon"

// Detector flags language indicating self-harm or suicidal risk. It runs
// independently of the Scorer but shares the trigger table with the scorer's
// crisis floor, so a flagged text always scores strongly negative.
type Detector struct {
	store *lexicon.Store
}

// NewDetector creates a Detector over the given rule store.
func NewDetector(store *lexicon.Store) *Detector {
	return &Detector{store: store}
}

// Detect scans text for crisis trigger phrases.
func (d *Detector) Detect(text string) Crisis {
	match, ok := d.store.MatchCrisis(Normalize(text))
	if !ok {
		return Crisis{}
	}
	return Crisis{
		IsCrisis: true,
		Category: match.Category,
	}
}
