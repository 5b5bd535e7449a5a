package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pranavnt/zk-wordle/server"
)

func serveCmd() *cobra.Command {
	var (
		statementPath string
		addr          string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve proof verification over HTTP for one session statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(statementPath, addr)
		},
	}
	cmd.Flags().StringVar(&statementPath, "statement", "statement.json", "session statement file written by play --out")
	cmd.Flags().StringVar(&addr, "addr", ":5175", "listen address")
	return cmd
}

func runServe(statementPath, addr string) error {
	data, err := os.ReadFile(statementPath)
	if err != nil {
		return fmt.Errorf("read statement: %w", err)
	}
	env, err := server.UnmarshalStatementEnvelope(data)
	if err != nil {
		return err
	}
	vkBytes, err := env.VerifyingKeyBytes()
	if err != nil {
		return err
	}
	commitment, err := env.CommitmentElement()
	if err != nil {
		return err
	}
	srv, err := server.New(vkBytes, commitment, env.Label)
	if err != nil {
		return err
	}
	return srv.Start(addr)
}
