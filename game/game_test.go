package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/pranavnt/zk-wordle/circuit"
	"github.com/pranavnt/zk-wordle/prover"
)

var (
	setupOnce   sync.Once
	setupParams *prover.Params
	setupErr    error
)

func testParams(t *testing.T) *prover.Params {
	t.Helper()
	setupOnce.Do(func() {
		setupParams, setupErr = prover.Setup()
	})
	if setupErr != nil {
		t.Fatalf("setup: %v", setupErr)
	}
	return setupParams
}

func newSession(t *testing.T, word string) *Session {
	t.Helper()
	w, err := circuit.ParseWord(word)
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(w, testParams(t), "wordle_example")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWinFlow(t *testing.T) {
	s := newSession(t, "ranch")

	turn, err := s.Play("chant")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !turn.Verified {
		t.Fatal("honest turn proof did not verify")
	}
	if turn.Feedback.AllCorrect() {
		t.Fatal("chant must not win against ranch")
	}
	if s.State() != "playing" {
		t.Fatalf("state = %q, want playing", s.State())
	}

	turn, err = s.Play("ranch")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !turn.Feedback.AllCorrect() {
		t.Fatal("guessing the word must be all-correct")
	}
	if !turn.Verified {
		t.Fatal("winning turn proof did not verify")
	}
	if s.State() != "won" {
		t.Fatalf("state = %q, want won", s.State())
	}
	if s.Reveal() != "ranch" {
		t.Fatalf("reveal = %q", s.Reveal())
	}

	if _, err := s.Play("chant"); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}

func TestLossAfterMaxTurns(t *testing.T) {
	s := newSession(t, "ranch")
	for _, g := range []string{"about", "chant", "crane", "sugar", "words", "zebra"} {
		if s.State() != "playing" {
			t.Fatalf("finished early at state %q", s.State())
		}
		turn, err := s.Play(g)
		if err != nil {
			t.Fatalf("play %q: %v", g, err)
		}
		if !turn.Verified {
			t.Fatalf("turn %q did not verify", g)
		}
	}
	if s.State() != "lost" {
		t.Fatalf("state = %q, want lost", s.State())
	}
	if s.TurnsLeft() != 0 {
		t.Fatalf("turns left = %d", s.TurnsLeft())
	}
}

func TestInvalidGuessDoesNotConsumeTurn(t *testing.T) {
	s := newSession(t, "ranch")
	if _, err := s.Play("nope"); !errors.Is(err, circuit.ErrInvalidWord) {
		t.Fatalf("expected ErrInvalidWord, got %v", err)
	}
	if len(s.Turns()) != 0 {
		t.Fatal("invalid guess must not consume a turn")
	}
	if s.TurnsLeft() != DefaultMaxTurns {
		t.Fatalf("turns left = %d, want %d", s.TurnsLeft(), DefaultMaxTurns)
	}
}

func TestStatementMatchesSession(t *testing.T) {
	s := newSession(t, "ranch")
	turn, err := s.Play("chant")
	if err != nil {
		t.Fatal(err)
	}
	st := s.Statement(turn)
	if st.Label != s.Label() {
		t.Fatal("statement label mismatch")
	}
	commitment := s.Commitment()
	if !st.Commitment.Equal(&commitment) {
		t.Fatal("statement commitment mismatch")
	}
	ok, err := prover.Verify(testParams(t).VerifyingKey(), st, turn.Proof)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("statement from session did not verify against its own proof")
	}
}
