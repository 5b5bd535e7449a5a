package circuit

import (
	"errors"
	"testing"
)

func TestParseWord(t *testing.T) {
	w, err := ParseWord("Ranch")
	if err != nil {
		t.Fatalf("failed to parse word: %v", err)
	}
	if got := w.String(); got != "ranch" {
		t.Fatalf("round-trip mismatch: got %q", got)
	}
	if w != (Word{17, 0, 13, 2, 7}) {
		t.Fatalf("unexpected ranks: %v", w)
	}

	for _, bad := range []string{"", "rach", "ranche", "ran4h", "ranc!", "héron"} {
		if _, err := ParseWord(bad); !errors.Is(err, ErrInvalidWord) {
			t.Fatalf("expected ErrInvalidWord for %q, got %v", bad, err)
		}
	}
}

func TestComputeFeedback(t *testing.T) {
	tests := []struct {
		name        string
		word, guess string
		presence    [NumPositions]bool
		correctness [NumPositions]bool
	}{
		{
			// c, h, a, n all occur in "ranch"; t does not. No position matches.
			name: "ranch vs chant",
			word: "ranch", guess: "chant",
			presence:    [NumPositions]bool{true, true, true, true, false},
			correctness: [NumPositions]bool{false, false, false, false, false},
		},
		{
			name: "exact match",
			word: "ranch", guess: "ranch",
			presence:    [NumPositions]bool{true, true, true, true, true},
			correctness: [NumPositions]bool{true, true, true, true, true},
		},
		{
			name: "no overlap",
			word: "ranch", guess: "toxic",
			presence:    [NumPositions]bool{false, false, false, false, true},
			correctness: [NumPositions]bool{false, false, false, false, false},
		},
		{
			// Presence is set membership: both 'e's in the guess count as
			// present even though the word has a single 'e'.
			name: "repeated guess letter",
			word: "crane", guess: "elder",
			presence:    [NumPositions]bool{true, false, false, true, true},
			correctness: [NumPositions]bool{false, false, false, false, false},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			word, err := ParseWord(tc.word)
			if err != nil {
				t.Fatal(err)
			}
			guess, err := ParseWord(tc.guess)
			if err != nil {
				t.Fatal(err)
			}
			fb := ComputeFeedback(word, guess)
			if fb.Presence != tc.presence {
				t.Errorf("presence = %v, want %v", fb.Presence, tc.presence)
			}
			if fb.Correctness != tc.correctness {
				t.Errorf("correctness = %v, want %v", fb.Correctness, tc.correctness)
			}
		})
	}
}

func TestFeedbackAllCorrect(t *testing.T) {
	var fb Feedback
	if fb.AllCorrect() {
		t.Fatal("zero feedback must not be all-correct")
	}
	for i := range fb.Correctness {
		fb.Correctness[i] = true
	}
	if !fb.AllCorrect() {
		t.Fatal("expected all-correct")
	}
}

func TestFeedbackString(t *testing.T) {
	word, _ := ParseWord("ranch")
	guess, _ := ParseWord("chart")
	fb := ComputeFeedback(word, guess)
	// c, h, a, r present elsewhere; t absent.
	if got := fb.String(); got != "~~~~." {
		t.Fatalf("feedback string = %q", got)
	}
}
