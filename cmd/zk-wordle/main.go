// Package main provides the zk-wordle CLI: an interactive wordle game that
// emits a zero-knowledge proof of honest feedback for every guess, plus
// verifier tooling for checking saved proofs and serving verification over
// HTTP.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	rootCmd := &cobra.Command{
		Use:   "zk-wordle",
		Short: "Wordle with per-guess zero-knowledge proofs of honest feedback",
		Long: `zk-wordle plays wordle while proving, without revealing the hidden word,
that the per-letter feedback it reports for each guess is computed honestly.

The hidden word is bound to a commitment published at session start; every
turn produces a Groth16 proof over a fixed rank-1 constraint system that the
presence and correctness vectors match the committed word. Proofs are
verified locally each turn and can be saved for later or remote audit.`,
	}

	rootCmd.AddCommand(
		playCmd(),
		verifyCmd(),
		serveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
