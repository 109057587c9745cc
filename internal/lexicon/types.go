package lexicon

// Axis names a category keyword set used by the assessment scorer.
type Axis string

const (
	AxisStress         Axis = "stress"
	AxisAnxiety        Axis = "anxiety"
	AxisDepression     Axis = "depression"
	AxisPositiveCoping Axis = "positive-coping"
)

// RecommendationKey selects a recommendation list from the store.
type RecommendationKey string

const (
	RecStress     RecommendationKey = "stress"
	RecAnxiety    RecommendationKey = "anxiety"
	RecDepression RecommendationKey = "depression"
	RecWellbeing  RecommendationKey = "wellbeing"
	RecGeneric    RecommendationKey = "generic"
)

// CrisisMatch is a hit against the crisis trigger tables.
type CrisisMatch struct {
	Category string // e.g. "self-harm", "suicidal-ideation", "hopelessness"
	Phrase   string // the trigger phrase that matched
}

// tables is the raw shape of the lexicon data, either parsed from yaml or
// taken from compiled-in defaults.
type tables struct {
	PolarityWords   map[string]float64
	PolarityPhrases map[string]float64
	Negators        []string
	Intensifiers    []string
	CrisisTriggers  map[string][]string // category -> phrases
	Categories      map[string][]string // axis -> keywords
	Recommendations map[string][]string // key -> texts
}
