// Package words supplies the candidate answers: a line-oriented dictionary
// filtered to five-letter alphabetic words, case-normalized, with a
// crypto-random draw. The list source is configurable; a small embedded list
// keeps the game runnable when no dictionary is installed.
package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/pranavnt/zk-wordle/circuit"
)

// DefaultPath is the system dictionary consulted when no path is configured.
const DefaultPath = "/usr/share/dict/words"

// EnvPath overrides the dictionary location when set.
const EnvPath = "ZK_WORDLE_WORDS_FILE"

//go:embed default_answers.txt
var embeddedAnswers string

// ErrEmpty reports a dictionary with no usable five-letter words.
var ErrEmpty = errors.New("words: no five-letter words in list")

// List is an immutable set of candidate answer words.
type List struct {
	words []string
	set   map[string]struct{}
}

// Load reads one word per line from path, keeping only valid five-letter
// alphabetic words, lowercased.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if _, err := circuit.ParseWord(w); err == nil {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return newList(out)
}

// Embedded returns the built-in fallback list.
func Embedded() (*List, error) {
	var out []string
	for _, line := range strings.Split(embeddedAnswers, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if _, err := circuit.ParseWord(w); err == nil {
			out = append(out, w)
		}
	}
	return newList(out)
}

// Open resolves the dictionary in order: $ZK_WORDLE_WORDS_FILE, the system
// dictionary, then the embedded fallback.
func Open() (*List, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return Load(p)
	}
	if l, err := Load(DefaultPath); err == nil {
		return l, nil
	}
	return Embedded()
}

func newList(words []string) (*List, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &List{words: words, set: set}, nil
}

// Random draws a uniformly random answer.
func (l *List) Random() (circuit.Word, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return circuit.Word{}, fmt.Errorf("draw random word: %w", err)
	}
	return circuit.ParseWord(l.words[n.Int64()])
}

// Contains reports whether w is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// Len reports the number of candidate words.
func (l *List) Len() int { return len(l.words) }
