package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pranavnt/zk-wordle/audit"
	"github.com/pranavnt/zk-wordle/circuit"
	"github.com/pranavnt/zk-wordle/game"
	"github.com/pranavnt/zk-wordle/prover"
	"github.com/pranavnt/zk-wordle/server"
	"github.com/pranavnt/zk-wordle/words"
)

// defaultLabel is the transcript label used when none is configured. It must
// match between prove and verify.
const defaultLabel = "wordle_example"

func playCmd() *cobra.Command {
	var (
		label   string
		outDir  string
		auditDB string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game, proving every turn's feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(label, outDir, auditDB)
		},
	}
	cmd.Flags().StringVar(&label, "label", defaultLabel, "transcript label bound into every proof")
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write statement.json and per-turn proof envelopes")
	cmd.Flags().StringVar(&auditDB, "audit-db", "", "SQLite file for the proof audit log")
	return cmd
}

func runPlay(label, outDir, auditDB string) error {
	list, err := words.Open()
	if err != nil {
		return err
	}
	log.Info().Int("candidates", list.Len()).Msg("word list loaded")

	params, err := prover.Setup()
	if err != nil {
		return err
	}

	word, err := list.Random()
	if err != nil {
		return err
	}
	session, err := game.New(word, params, label)
	if err != nil {
		return err
	}

	var store *audit.Store
	if auditDB != "" {
		if store, err = audit.Open(auditDB); err != nil {
			return err
		}
		defer store.Close()
	}
	if outDir != "" {
		if err := writeStatement(outDir, params, session); err != nil {
			return err
		}
	}

	fmt.Println("Welcome to zk-wordle! You have 6 guesses to find the word.")
	fmt.Println("The word is a 5-letter word containing only alphabetic characters.")
	fmt.Println("Every turn comes with a zero-knowledge proof that the feedback is honest.")
	fmt.Printf("Word commitment: %s\n\n", session.CommitmentHex())

	in := bufio.NewScanner(os.Stdin)
	for session.State() == "playing" {
		fmt.Printf("Guess %d of %d: ", len(session.Turns())+1, game.DefaultMaxTurns)
		if !in.Scan() {
			break
		}
		turn, err := session.Play(strings.TrimSpace(in.Text()))
		if errors.Is(err, circuit.ErrInvalidWord) {
			fmt.Println("Please enter exactly five letters a-z.")
			continue
		}
		if err != nil {
			return err
		}

		n := len(session.Turns())
		fmt.Printf("Feedback:            %s\n", tiles(turn.Feedback))
		fmt.Printf("Letter in word:      %v\n", turn.Feedback.Presence)
		fmt.Printf("Letter correct:      %v\n", turn.Feedback.Correctness)
		fmt.Printf("Proof verified:      %v (%d bytes)\n\n", turn.Verified, len(turn.Proof))

		if store != nil {
			if err := store.RecordTurn(context.Background(), session.ID(), n, session.Statement(turn), turn.Proof, turn.Verified); err != nil {
				log.Warn().Err(err).Msg("could not record turn in audit log")
			}
		}
		if outDir != "" {
			if err := writeTurn(outDir, n, turn); err != nil {
				log.Warn().Err(err).Msg("could not write turn envelope")
			}
		}
	}

	if session.State() == "won" {
		fmt.Println("Congrats! You guessed the wordle!")
	}
	fmt.Printf("The word was %q\n", session.Reveal())
	return in.Err()
}

// tiles renders feedback the familiar way: green for a correct position,
// yellow for present elsewhere, white for absent.
func tiles(fb circuit.Feedback) string {
	var b strings.Builder
	for i := 0; i < circuit.NumPositions; i++ {
		switch {
		case fb.Correctness[i]:
			b.WriteString("🟩")
		case fb.Presence[i]:
			b.WriteString("🟨")
		default:
			b.WriteString("⬜")
		}
	}
	return b.String()
}

func writeStatement(dir string, params *prover.Params, session *game.Session) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	vkBytes, err := params.MarshalVerifyingKey()
	if err != nil {
		return err
	}
	env := server.NewStatementEnvelope(vkBytes, session.Commitment(), session.Label())
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "statement.json"), data, 0o644)
}

func writeTurn(dir string, n int, turn game.Turn) error {
	env := server.NewTurnEnvelope(turn.Guess, turn.Feedback, turn.Proof)
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fmt.Sprintf("turn-%d.json", n)), data, 0o644)
}
