package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pranavnt/zk-wordle/prover"
	"github.com/pranavnt/zk-wordle/server"
)

func verifyCmd() *cobra.Command {
	var (
		statementPath string
		turnPath      string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a saved turn proof against a session statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(statementPath, turnPath)
		},
	}
	cmd.Flags().StringVar(&statementPath, "statement", "statement.json", "session statement file written by play --out")
	cmd.Flags().StringVar(&turnPath, "turn", "", "turn envelope file to verify")
	_ = cmd.MarkFlagRequired("turn")
	return cmd
}

func runVerify(statementPath, turnPath string) error {
	stData, err := os.ReadFile(statementPath)
	if err != nil {
		return fmt.Errorf("read statement: %w", err)
	}
	turnData, err := os.ReadFile(turnPath)
	if err != nil {
		return fmt.Errorf("read turn: %w", err)
	}

	stEnv, err := server.UnmarshalStatementEnvelope(stData)
	if err != nil {
		return err
	}
	turnEnv, err := server.UnmarshalTurnEnvelope(turnData)
	if err != nil {
		return err
	}

	vkBytes, err := stEnv.VerifyingKeyBytes()
	if err != nil {
		return err
	}
	vk, err := prover.UnmarshalVerifyingKey(vkBytes)
	if err != nil {
		return err
	}
	commitment, err := stEnv.CommitmentElement()
	if err != nil {
		return err
	}
	st, proof, err := turnEnv.Statement(commitment, stEnv.Label)
	if err != nil {
		return err
	}

	ok, err := prover.Verify(vk, st, proof)
	if err != nil {
		return err
	}
	fmt.Printf("guess=%s feedback=%s verified=%v\n", st.Guess, st.Feedback, ok)
	if !ok {
		os.Exit(1)
	}
	return nil
}
