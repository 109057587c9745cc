package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustDefault(t *testing.T) {
	s := MustDefault()

	t.Run("polarity words present", func(t *testing.T) {
		w, ok := s.PolarityWeight("happy")
		if !ok || w <= 0 {
			t.Errorf("expected positive weight for happy, got %f (ok=%v)", w, ok)
		}
		w, ok = s.PolarityWeight("depressed")
		if !ok || w >= 0 {
			t.Errorf("expected negative weight for depressed, got %f (ok=%v)", w, ok)
		}
	})

	t.Run("weights bounded", func(t *testing.T) {
		if err := defaultTables().validate(); err != nil {
			t.Errorf("default tables should validate: %v", err)
		}
	})

	t.Run("negators and intensifiers", func(t *testing.T) {
		if !s.IsNegator("not") {
			t.Error("expected not to be a negator")
		}
		if s.IsNegator("happy") {
			t.Error("happy should not be a negator")
		}
		if !s.IsIntensifier("very") {
			t.Error("expected very to be an intensifier")
		}
	})

	t.Run("crisis triggers match permissively", func(t *testing.T) {
		match, ok := s.MatchCrisis("i am thinking about harming myself and i dont know what to do")
		if !ok {
			t.Fatal("expected crisis match")
		}
		if match.Category != "self-harm" {
			t.Errorf("expected self-harm category, got %s", match.Category)
		}

		if _, ok := s.MatchCrisis("i had a rough day at work"); ok {
			t.Error("rough day should not match crisis triggers")
		}
	})

	t.Run("crisis scan order is deterministic", func(t *testing.T) {
		first, ok := s.MatchCrisis("i want to die and i might hurt myself")
		if !ok {
			t.Fatal("expected crisis match")
		}
		for i := 0; i < 20; i++ {
			again, _ := s.MatchCrisis("i want to die and i might hurt myself")
			if again != first {
				t.Fatalf("non-deterministic crisis match: %v vs %v", first, again)
			}
		}
	})

	t.Run("category keyword sets", func(t *testing.T) {
		for _, axis := range []Axis{AxisStress, AxisAnxiety, AxisDepression, AxisPositiveCoping} {
			if len(s.CategoryKeywords(axis)) == 0 {
				t.Errorf("axis %s has no keywords", axis)
			}
		}
	})

	t.Run("generic recommendations never empty", func(t *testing.T) {
		if len(s.Recommendations(RecGeneric)) == 0 {
			t.Error("generic recommendations must not be empty")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := s.PolarityWeight("happy"); !ok {
			t.Error("fallback store missing default words")
		}
	})

	t.Run("empty path falls back to defaults", func(t *testing.T) {
		s, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.IsNegator("not") {
			t.Error("fallback store missing default negators")
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "lexicon.yaml")
		content := `
polarity:
  words:
    joyful: 0.9
    gloomy: -0.9
negators: [not]
intensifiers: [very]
crisis_triggers:
  self-harm: [hurt myself]
categories:
  stress: [stress]
recommendations:
  generic: [Take a walk]
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		s, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w, ok := s.PolarityWeight("joyful"); !ok || w != 0.9 {
			t.Errorf("expected joyful=0.9, got %f (ok=%v)", w, ok)
		}
		// Defaults are replaced, not merged.
		if _, ok := s.PolarityWeight("happy"); ok {
			t.Error("file load should replace the default table")
		}
	})

	t.Run("invalid tables rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "lexicon.yaml")
		if err := os.WriteFile(path, []byte("polarity:\n  words: {}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected validation error for empty polarity table")
		}
	})
}
