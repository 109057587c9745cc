package sentiment

// Label is the discrete sentiment classification.
type Label string

const (
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
	LabelPositive Label = "positive"
)

// Result is a bounded sentiment judgment for one text.
type Result struct {
	Score float64 `json:"score"` // in [-1, 1]
	Label Label   `json:"label"`
}

// Crisis is the outcome of crisis detection for one text.
type Crisis struct {
	IsCrisis bool   `json:"is_crisis"`
	Category string `json:"category,omitempty"`
}
