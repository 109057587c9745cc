package usecase

// Axis bucketing thresholds. An axis is high only when its language is
// both dense (keyword hits across the questionnaire) and broadly negative
// (most answers scoring below zero); it is low only when the language is
// nearly absent and the aggregate sentiment is not negative.
const (
	highHitCount        = 4
	highNegativeAnswers = 3
	lowHitCount         = 1
	maxRecommendations  = 5

	// Each positive-coping keyword hit credits the aggregate sentiment,
	// so answers rich in coping language lean the bucketing toward low.
	positiveCopingCredit = 0.1
)
