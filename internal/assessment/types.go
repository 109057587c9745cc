package assessment

// RequiredAnswers is the fixed questionnaire size: mood, stress, sleep,
// mental-health concerns, enjoyed activities.
const RequiredAnswers = 5

// Level buckets a risk axis.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Wellbeing is the inverse composite of the three risk axes.
type Wellbeing string

const (
	WellbeingPoor Wellbeing = "poor"
	WellbeingFair Wellbeing = "fair"
	WellbeingGood Wellbeing = "good"
)

// Answer is one question/answer pair from the questionnaire.
type Answer struct {
	Question string
	Answer   string
}

// AssessInput carries the full questionnaire. UserID is opaque: it is
// logged but never influences scoring.
type AssessInput struct {
	Answers []Answer
	UserID  string
}

// Result holds the leveled risk axes.
type Result struct {
	StressLevel      Level
	AnxietyLevel     Level
	DepressionRisk   Level
	OverallWellbeing Wellbeing
}

// AssessOutput is the assessment plus its recommendations.
type AssessOutput struct {
	Assessment      Result
	Recommendations []string
}
