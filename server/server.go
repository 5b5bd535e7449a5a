package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/pranavnt/zk-wordle/prover"
)

// Server bundles the router and the session statement it verifies against.
type Server struct {
	r          *chi.Mux
	vk         groth16.VerifyingKey
	vkBytes    []byte
	commitment fr.Element
	label      string
}

// New constructs a Server for one session statement, installs middleware, and
// registers routes.
func New(vkBytes []byte, commitment fr.Element, label string) (*Server, error) {
	vk, err := prover.UnmarshalVerifyingKey(vkBytes)
	if err != nil {
		return nil, err
	}
	s := &Server{
		r:          chi.NewRouter(),
		vk:         vk,
		vkBytes:    vkBytes,
		commitment: commitment,
		label:      label,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/v1/statement", s.handleStatement)
	s.r.Post("/v1/verify", s.handleVerify)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s, nil
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("starting verifier service")
	return http.ListenAndServe(addr, s.r)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.r }

// handleStatement publishes the session statement so clients can verify
// proofs themselves.
func (s *Server) handleStatement(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NewStatementEnvelope(s.vkBytes, s.commitment, s.label))
}

// handleVerify checks one turn envelope. A proof that parses but does not
// validate is a 200 with verified=false; bytes that cannot be parsed at all
// are a 400, per the deserialization/verification distinction.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var env TurnEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeJSON(w, http.StatusBadRequest, VerifyResponse{Error: "malformed request body"})
		return
	}
	st, proof, err := env.Statement(s.commitment, s.label)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, VerifyResponse{Error: err.Error()})
		return
	}
	ok, err := prover.Verify(s.vk, st, proof)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, prover.ErrProofDeserialization) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, VerifyResponse{Error: err.Error()})
		return
	}
	log.Info().Str("guess", env.Guess).Bool("verified", ok).Msg("proof checked")
	writeJSON(w, http.StatusOK, VerifyResponse{Verified: ok})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
