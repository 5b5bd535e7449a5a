package circuit

import (
	"fmt"
	"strings"
)

// Word is an ordered sequence of NumPositions letter ranks in [0, AlphabetSize).
// Immutable once drawn for a session.
type Word [NumPositions]uint8

// ParseWord converts a guess or answer string to letter ranks. Input is
// case-normalized; anything that is not exactly NumPositions ASCII letters
// fails with ErrInvalidWord.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != NumPositions {
		return w, fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidWord, s, len(s), NumPositions)
	}
	for i := 0; i < NumPositions; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return w, fmt.Errorf("%w: %q has non-alphabetic character at position %d", ErrInvalidWord, s, i)
		}
		w[i] = c - 'a'
	}
	return w, nil
}

// String renders the word back as lowercase letters.
func (w Word) String() string {
	b := make([]byte, NumPositions)
	for i, r := range w {
		b[i] = 'a' + r
	}
	return string(b)
}

// Contains reports whether any position of w holds rank r.
func (w Word) Contains(r uint8) bool {
	for _, x := range w {
		if x == r {
			return true
		}
	}
	return false
}

// Feedback holds the two public output predicates the proof attests to.
type Feedback struct {
	// Presence[i] is true iff guess[i] occurs anywhere in the hidden word.
	Presence [NumPositions]bool
	// Correctness[i] is true iff guess[i] equals the hidden word at position i.
	Correctness [NumPositions]bool
}

// ComputeFeedback evaluates the feedback predicates for a guess against the
// hidden word. Presence is plain set membership: a guessed letter that occurs
// anywhere in the word is present, duplicates are not consumed. This is
// exactly the predicate the circuit proves, so the displayed feedback and the
// attested outputs can never diverge.
func ComputeFeedback(word, guess Word) Feedback {
	var fb Feedback
	for i := 0; i < NumPositions; i++ {
		fb.Presence[i] = word.Contains(guess[i])
		fb.Correctness[i] = word[i] == guess[i]
	}
	return fb
}

// AllCorrect reports whether every position matched, i.e. the guess is the
// hidden word.
func (f Feedback) AllCorrect() bool {
	for _, ok := range f.Correctness {
		if !ok {
			return false
		}
	}
	return true
}

// String renders the feedback as one symbol per position: '=' correct,
// '~' present elsewhere, '.' absent.
func (f Feedback) String() string {
	b := make([]byte, NumPositions)
	for i := 0; i < NumPositions; i++ {
		switch {
		case f.Correctness[i]:
			b[i] = '='
		case f.Presence[i]:
			b[i] = '~'
		default:
			b[i] = '.'
		}
	}
	return string(b)
}
