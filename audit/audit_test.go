package audit

import (
	"context"
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/pranavnt/zk-wordle/circuit"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testStatement(t *testing.T, wordStr, guessStr string) circuit.Statement {
	t.Helper()
	word, err := circuit.ParseWord(wordStr)
	require.NoError(t, err)
	guess, err := circuit.ParseWord(guessStr)
	require.NoError(t, err)
	salt, err := circuit.NewSalt()
	require.NoError(t, err)
	commitment, err := circuit.Commit(word, salt, "wordle_example")
	require.NoError(t, err)
	return circuit.Statement{
		Guess:      guess,
		Feedback:   circuit.ComputeFeedback(word, guess),
		Commitment: commitment,
		Label:      "wordle_example",
	}
}

func TestRecordAndListTurns(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	st := testStatement(t, "ranch", "chant")
	proof := []byte("opaque proof bytes")

	require.NoError(t, s.RecordTurn(ctx, "session-1", 1, st, proof, true))
	st2 := testStatement(t, "ranch", "zebra")
	require.NoError(t, s.RecordTurn(ctx, "session-1", 2, st2, []byte("other"), false))
	require.NoError(t, s.RecordTurn(ctx, "session-2", 1, st, proof, true))

	turns, err := s.Turns(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, turns, 2)

	first := turns[0]
	require.Equal(t, "session-1", first.SessionID)
	require.Equal(t, 1, first.Turn)
	require.Equal(t, "chant", first.Guess)
	require.Equal(t, "11110", first.Presence)
	require.Equal(t, "00000", first.Correctness)
	require.Equal(t, "wordle_example", first.Label)
	require.True(t, first.Verified)
	require.Equal(t, proof, first.Proof)

	digest := blake2b.Sum256(proof)
	require.Equal(t, hex.EncodeToString(digest[:]), first.ProofDigest)

	require.Equal(t, 2, turns[1].Turn)
	require.False(t, turns[1].Verified)
}

func TestDuplicateTurnRejected(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	st := testStatement(t, "ranch", "chant")

	require.NoError(t, s.RecordTurn(ctx, "session-1", 1, st, []byte("p"), true))
	require.Error(t, s.RecordTurn(ctx, "session-1", 1, st, []byte("p"), true))
}

func TestTurnsEmptySession(t *testing.T) {
	s := testStore(t)
	turns, err := s.Turns(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, turns)
}
