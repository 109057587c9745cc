package sentiment

import (
	"testing"

	"mental-health-support/internal/lexicon"
)

func TestDetector_Detect(t *testing.T) {
	d := NewDetector(lexicon.MustDefault())
	s := newTestScorer()

	t.Run("flags self-harm language", func(t *testing.T) {
		c := d.Detect("I am thinking about harming myself and I don't know what to do.")
		if !c.IsCrisis {
			t.Fatal("expected crisis flag")
		}
		if c.Category != "self-harm" {
			t.Errorf("expected self-harm category, got %s", c.Category)
		}
	})

	t.Run("flags suicidal ideation", func(t *testing.T) {
		c := d.Detect("Sometimes I just want to die.")
		if !c.IsCrisis {
			t.Fatal("expected crisis flag")
		}
	})

	t.Run("matching is permissive across punctuation", func(t *testing.T) {
		c := d.Detect("I can't go on... nothing matters anymore")
		if !c.IsCrisis {
			t.Error("expected crisis flag despite punctuation")
		}
	})

	t.Run("ordinary sadness is not a crisis", func(t *testing.T) {
		for _, text := range []string{
			"I am feeling very sad and depressed today.",
			"I have been feeling stressed lately.",
			"Work is overwhelming me.",
		} {
			if c := d.Detect(text); c.IsCrisis {
				t.Errorf("unexpected crisis flag for %q (%s)", text, c.Category)
			}
		}
	})

	t.Run("empty text is not a crisis", func(t *testing.T) {
		if c := d.Detect(""); c.IsCrisis {
			t.Error("empty text must not be a crisis")
		}
	})

	t.Run("consistent with scorer", func(t *testing.T) {
		// Any text the detector flags must score strongly negative.
		texts := []string{
			"I am thinking about harming myself and I don't know what to do.",
			"I want to end my life",
			"there is no way out for me",
			"honestly I feel fine but sometimes I think about suicide",
		}
		for _, text := range texts {
			if !d.Detect(text).IsCrisis {
				t.Errorf("expected crisis flag for %q", text)
				continue
			}
			if r := s.Score(text); r.Score >= -0.5 {
				t.Errorf("crisis text %q scored %f, want < -0.5", text, r.Score)
			}
		}
	})
}
