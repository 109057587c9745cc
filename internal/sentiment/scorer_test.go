package sentiment

import (
	"strings"
	"testing"

	"mental-health-support/internal/lexicon"
)

func newTestScorer() *Scorer {
	return NewScorer(lexicon.MustDefault())
}

func TestScorer_Score(t *testing.T) {
	s := newTestScorer()

	t.Run("positive text", func(t *testing.T) {
		r := s.Score("I am feeling happy and optimistic today!")
		if r.Score < 0 {
			t.Errorf("expected non-negative score, got %f", r.Score)
		}
		if r.Label != LabelPositive && r.Label != LabelNeutral {
			t.Errorf("expected positive or neutral label, got %s", r.Label)
		}
	})

	t.Run("negative text", func(t *testing.T) {
		r := s.Score("I am feeling very sad and depressed today.")
		if r.Score >= 0 {
			t.Errorf("expected negative score, got %f", r.Score)
		}
		if r.Label != LabelNegative {
			t.Errorf("expected negative label, got %s", r.Label)
		}
	})

	t.Run("crisis text scores below -0.5", func(t *testing.T) {
		r := s.Score("I am thinking about harming myself and I don't know what to do.")
		if r.Score >= -0.5 {
			t.Errorf("expected score < -0.5 for crisis text, got %f", r.Score)
		}
		if r.Label != LabelNegative {
			t.Errorf("expected negative label, got %s", r.Label)
		}
	})

	t.Run("empty text is neutral zero", func(t *testing.T) {
		r := s.Score("")
		if r.Score != 0 || r.Label != LabelNeutral {
			t.Errorf("expected {0, neutral}, got %+v", r)
		}
	})

	t.Run("no lexicon hits is neutral", func(t *testing.T) {
		r := s.Score("Hello, how are you?")
		if r.Score != 0 || r.Label != LabelNeutral {
			t.Errorf("expected {0, neutral}, got %+v", r)
		}
	})

	t.Run("negation flips polarity", func(t *testing.T) {
		r := s.Score("I don't feel good about this")
		if r.Score >= 0 {
			t.Errorf("expected negated positive to score negative, got %f", r.Score)
		}
	})

	t.Run("negation window is bounded", func(t *testing.T) {
		// "not" is five tokens before "happy"; too far to flip it.
		r := s.Score("not that it matters much i am happy")
		if r.Score <= 0 {
			t.Errorf("negator outside window should not flip, got %f", r.Score)
		}
	})

	t.Run("phrase weight covers its words", func(t *testing.T) {
		// "trouble" alone is also a polarity word; the phrase hit must be
		// the only score for the span.
		r := s.Score("I have trouble sleeping")
		if r.Score != -0.5 {
			t.Errorf("expected the phrase weight alone (-0.5), got %f", r.Score)
		}
	})

	t.Run("intensifier strengthens", func(t *testing.T) {
		plain := s.Score("I am sad")
		boosted := s.Score("I am very sad")
		if boosted.Score >= plain.Score {
			t.Errorf("expected intensified score %f to be below plain %f", boosted.Score, plain.Score)
		}
	})

	t.Run("score always bounded", func(t *testing.T) {
		inputs := []string{
			"",
			"happy happy happy wonderful great joy love",
			strings.Repeat("sad depressed hopeless miserable ", 50),
			"I want to die. I can't go on. Everything is terrible and awful.",
			"completely unrelated words with zero matches whatsoever",
			"!!! ??? ... ---",
		}
		for _, input := range inputs {
			r := s.Score(input)
			if r.Score < -1 || r.Score > 1 {
				t.Errorf("score out of bounds for %q: %f", input, r.Score)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		const text = "I feel stressed and worried but I still enjoy my hobbies"
		first := s.Score(text)
		for i := 0; i < 50; i++ {
			if got := s.Score(text); got != first {
				t.Fatalf("non-deterministic result: %+v vs %+v", got, first)
			}
		}
	})

	t.Run("thresholds classify labels", func(t *testing.T) {
		cases := []struct {
			text string
			want Label
		}{
			{"I am feeling stressed lately.", LabelNegative},
			{"What a wonderful great day, so much joy!", LabelPositive},
			{"The meeting is at noon.", LabelNeutral},
		}
		for _, tc := range cases {
			if got := s.Score(tc.text).Label; got != tc.want {
				t.Errorf("Score(%q).Label = %s, want %s", tc.text, got, tc.want)
			}
		}
	})
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"I Don't KNOW!", "i dont know"},
		{"hello,   world...", "hello world"},
		{"", ""},
		{"can’t sleep", "cant sleep"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
