package usecase

import (
	"context"
	"strings"

	"mental-health-support/internal/assessment"
	"mental-health-support/internal/lexicon"
	"mental-health-support/internal/model"
	"mental-health-support/internal/sentiment"
)

// Assess validates the questionnaire and buckets each risk axis from the
// answers' sentiment and category keyword density.
func (uc *implUseCase) Assess(ctx context.Context, sc model.Scope, input assessment.AssessInput) (assessment.AssessOutput, error) {
	if err := validateAssessInput(input); err != nil {
		return assessment.AssessOutput{}, err
	}

	result, recommendations := uc.safeEvaluate(ctx, input.Answers)

	uc.l.Infof(ctx, "Assess: user=%s stress=%s anxiety=%s depression=%s wellbeing=%s",
		sc.UserID, result.StressLevel, result.AnxietyLevel, result.DepressionRisk, result.OverallWellbeing)

	return assessment.AssessOutput{
		Assessment:      result,
		Recommendations: recommendations,
	}, nil
}

func validateAssessInput(input assessment.AssessInput) error {
	if len(input.Answers) != assessment.RequiredAnswers {
		return assessment.ErrAnswerCount
	}
	for _, a := range input.Answers {
		if strings.TrimSpace(a.Answer) == "" {
			return assessment.ErrEmptyAnswer
		}
	}
	return nil
}

// safeEvaluate runs the scoring pipeline with panic recovery. A fault
// degrades to all-medium levels plus the generic recommendations, never
// to a failed request.
func (uc *implUseCase) safeEvaluate(ctx context.Context, answers []assessment.Answer) (result assessment.Result, recommendations []string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "safeEvaluate: engine fault recovered: %v", r)
			result = assessment.Result{
				StressLevel:      assessment.LevelMedium,
				AnxietyLevel:     assessment.LevelMedium,
				DepressionRisk:   assessment.LevelMedium,
				OverallWellbeing: assessment.WellbeingFair,
			}
			recommendations = capRecommendations(faultRecommendations)
		}
	}()

	agg := uc.aggregate(answers)
	result = assessment.Result{
		StressLevel:    agg.level(lexicon.AxisStress),
		AnxietyLevel:   agg.level(lexicon.AxisAnxiety),
		DepressionRisk: agg.level(lexicon.AxisDepression),
	}
	result.OverallWellbeing = deriveWellbeing(result)
	recommendations = uc.recommend(result)
	return result, recommendations
}

// aggregation collects per-axis keyword hits and the sentiment spread of
// the five answers.
type aggregation struct {
	hits            map[lexicon.Axis]int
	negativeAnswers int
	netSentiment    float64
}

func (uc *implUseCase) aggregate(answers []assessment.Answer) aggregation {
	agg := aggregation{hits: make(map[lexicon.Axis]int)}

	axes := []lexicon.Axis{
		lexicon.AxisStress,
		lexicon.AxisAnxiety,
		lexicon.AxisDepression,
		lexicon.AxisPositiveCoping,
	}

	for _, a := range answers {
		normalized := sentiment.Normalize(a.Answer)
		for _, axis := range axes {
			for _, keyword := range uc.store.CategoryKeywords(axis) {
				if strings.Contains(normalized, keyword) {
					agg.hits[axis]++
				}
			}
		}

		score := uc.scorer.Score(a.Answer).Score
		agg.netSentiment += score
		if score < 0 {
			agg.negativeAnswers++
		}
	}

	return agg
}

func (agg aggregation) level(axis lexicon.Axis) assessment.Level {
	hits := agg.hits[axis]
	net := agg.netSentiment + positiveCopingCredit*float64(agg.hits[lexicon.AxisPositiveCoping])
	switch {
	case hits >= highHitCount && agg.negativeAnswers >= highNegativeAnswers:
		return assessment.LevelHigh
	case hits <= lowHitCount && net >= 0:
		return assessment.LevelLow
	default:
		return assessment.LevelMedium
	}
}

func deriveWellbeing(r assessment.Result) assessment.Wellbeing {
	levels := []assessment.Level{r.StressLevel, r.AnxietyLevel, r.DepressionRisk}

	allLow := true
	for _, l := range levels {
		if l == assessment.LevelHigh {
			return assessment.WellbeingPoor
		}
		if l != assessment.LevelLow {
			allLow = false
		}
	}
	if allLow {
		return assessment.WellbeingGood
	}
	return assessment.WellbeingFair
}
