// Package game runs a single wordle session on top of the proving core: it
// owns the hidden word, the commitment published at session start, the
// bounded guess loop and the playing → won/lost transitions. Every turn
// produces a proof that the reported feedback is honest; the proof verdict is
// reported but never gates play.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog/log"

	"github.com/pranavnt/zk-wordle/circuit"
	"github.com/pranavnt/zk-wordle/prover"
)

// DefaultMaxTurns is the classic guess budget.
const DefaultMaxTurns = 6

// ErrFinished is returned by Play once the session is won or lost.
var ErrFinished = errors.New("game finished")

// Turn records one completed guess.
type Turn struct {
	Guess    circuit.Word
	Feedback circuit.Feedback
	Proof    []byte
	Verified bool
}

// Session is one game: an immutable hidden word, its published commitment,
// and the turn history. The proving parameters are shared read-only; the
// session never mutates them.
type Session struct {
	id         string
	word       circuit.Word
	salt       fr.Element
	commitment fr.Element
	label      string
	params     *prover.Params
	turns      []Turn
	maxTurns   int
	finished   bool
	won        bool
}

// New draws the session salt, commits to the hidden word and returns a ready
// session. The commitment is public from this point on; the word and salt
// stay inside the session.
func New(word circuit.Word, params *prover.Params, label string) (*Session, error) {
	salt, err := circuit.NewSalt()
	if err != nil {
		return nil, err
	}
	commitment, err := circuit.Commit(word, salt, label)
	if err != nil {
		return nil, fmt.Errorf("commit to hidden word: %w", err)
	}
	s := &Session{
		id:         randomID(),
		word:       word,
		salt:       salt,
		commitment: commitment,
		label:      label,
		params:     params,
		maxTurns:   DefaultMaxTurns,
	}
	log.Info().Str("session", s.id).Str("commitment", s.CommitmentHex()).Msg("session started")
	return s, nil
}

// ID returns the session identifier used for log and audit correlation.
func (s *Session) ID() string { return s.id }

// Commitment returns the published word commitment.
func (s *Session) Commitment() fr.Element { return s.commitment }

// CommitmentHex returns the commitment in its fixed-width hex form.
func (s *Session) CommitmentHex() string {
	b := circuit.FixedWidth(s.commitment)
	return hex.EncodeToString(b[:])
}

// Label returns the session's transcript label.
func (s *Session) Label() string { return s.label }

// Statement returns the public statement for a played turn, the input a
// remote verifier needs alongside the proof bytes.
func (s *Session) Statement(t Turn) circuit.Statement {
	return circuit.Statement{
		Guess:      t.Guess,
		Feedback:   t.Feedback,
		Commitment: s.commitment,
		Label:      s.label,
	}
}

// Play validates and applies one guess: computes the feedback, proves it,
// verifies the proof locally, and advances the session state. Prove-side
// failures abort the turn with an error and do not consume a guess.
// Verification failure does not: it is recorded on the turn and play
// continues.
func (s *Session) Play(input string) (Turn, error) {
	if s.finished {
		return Turn{}, ErrFinished
	}
	guess, err := circuit.ParseWord(input)
	if err != nil {
		return Turn{}, err
	}

	assignment, fb, err := circuit.BuildAssignment(s.word, guess, s.salt, s.commitment, s.label)
	if err != nil {
		return Turn{}, err
	}
	proof, err := s.params.Prove(assignment)
	if err != nil {
		return Turn{}, err
	}

	turn := Turn{Guess: guess, Feedback: fb, Proof: proof}
	ok, err := s.params.VerifyWith(s.Statement(turn), proof)
	if err != nil {
		// Deserialization of a proof we just produced failing is an internal
		// defect; record the turn as unverified and keep playing.
		log.Error().Err(err).Str("session", s.id).Msg("could not check own proof")
	}
	turn.Verified = ok

	s.turns = append(s.turns, turn)
	if fb.AllCorrect() {
		s.finished, s.won = true, true
	} else if len(s.turns) >= s.maxTurns {
		s.finished = true
	}
	log.Debug().
		Str("session", s.id).
		Int("turn", len(s.turns)).
		Str("feedback", fb.String()).
		Bool("verified", ok).
		Msg("turn played")
	return turn, nil
}

// State reports "playing", "won" or "lost".
func (s *Session) State() string {
	if s.finished {
		if s.won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Turns returns the turn history.
func (s *Session) Turns() []Turn { return s.turns }

// TurnsLeft reports the remaining guess budget.
func (s *Session) TurnsLeft() int { return s.maxTurns - len(s.turns) }

// Reveal returns the hidden word. Meant for end-of-game display.
func (s *Session) Reveal() string { return s.word.String() }

// randomID returns a compact 16-hex-char session identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
