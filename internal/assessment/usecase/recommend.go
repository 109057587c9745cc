package usecase

import (
	"mental-health-support/internal/assessment"
	"mental-health-support/internal/lexicon"
)

// faultRecommendations backs the engine-fault recovery path, which cannot
// read the store that just faulted.
var faultRecommendations = []string{
	"Engage in regular physical activity",
	"Connect with friends and family regularly",
	"Maintain a balanced diet and stay hydrated",
}

// recommend builds the ordered recommendation list: per elevated axis in a
// fixed order, then the wellbeing and generic entries. Always non-empty,
// capped so the response stays digestible.
func (uc *implUseCase) recommend(r assessment.Result) []string {
	var out []string

	if elevated(r.StressLevel) {
		out = append(out, uc.store.Recommendations(lexicon.RecStress)...)
	}
	if elevated(r.AnxietyLevel) {
		out = append(out, uc.store.Recommendations(lexicon.RecAnxiety)...)
	}
	if elevated(r.DepressionRisk) {
		out = append(out, uc.store.Recommendations(lexicon.RecDepression)...)
	}
	if r.OverallWellbeing != assessment.WellbeingGood {
		out = append(out, uc.store.Recommendations(lexicon.RecWellbeing)...)
	}
	out = append(out, uc.store.Recommendations(lexicon.RecGeneric)...)

	return capRecommendations(out)
}

func elevated(l assessment.Level) bool {
	return l == assessment.LevelMedium || l == assessment.LevelHigh
}

func capRecommendations(recs []string) []string {
	if len(recs) > maxRecommendations {
		return recs[:maxRecommendations]
	}
	return recs
}
