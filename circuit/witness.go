package circuit

import (
	"fmt"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	frmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// Statement is the public half of one proof round: everything the verifier
// knows. The hidden word and the commitment salt never appear here.
type Statement struct {
	Guess      Word
	Feedback   Feedback
	Commitment fr.Element
	Label      string
}

// NewSalt draws a random commitment salt.
func NewSalt() (fr.Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return s, fmt.Errorf("draw commitment salt: %w", err)
	}
	return s, nil
}

// Commit computes the word commitment published at session start:
// MiMC(tag, rank_0..rank_4, salt), with the transcript label hashed into the
// tag. It mirrors the in-circuit hash exactly.
func Commit(word Word, salt fr.Element, label string) (fr.Element, error) {
	tag, err := LabelTag(label)
	if err != nil {
		return fr.Element{}, err
	}
	return commitTagged(word, salt, tag)
}

func commitTagged(word Word, salt fr.Element, tag fr.Element) (fr.Element, error) {
	h := frmimc.NewMiMC()
	write := func(e fr.Element) error {
		b := FixedWidth(e)
		_, err := h.Write(b[:])
		return err
	}
	if err := write(tag); err != nil {
		return fr.Element{}, fmt.Errorf("commit word: %w", err)
	}
	for i, r := range word {
		e, err := EncodeRank(uint64(r))
		if err != nil {
			return fr.Element{}, fmt.Errorf("commit word: position %d: %w", i, err)
		}
		if err := write(e); err != nil {
			return fr.Element{}, fmt.Errorf("commit word: %w", err)
		}
	}
	if err := write(salt); err != nil {
		return fr.Element{}, fmt.Errorf("commit word: %w", err)
	}
	var c fr.Element
	c.SetBytes(h.Sum(nil))
	return c, nil
}

// assignmentData is the dense variable assignment in raw form, laid out
// exactly as FeedbackCircuit expects. It exists so the layout can be audited
// locally before anything is handed to the backend.
type assignmentData struct {
	wordHot    [NumPositions][AlphabetSize]uint8
	guessHot   [NumPositions][AlphabetSize]uint8
	guess      Word
	feedback   Feedback
	salt       fr.Element
	commitment fr.Element
	tag        fr.Element
}

// BuildAssignment computes the feedback predicates for (word, guess) and
// assembles the full variable assignment. The assignment is validated against
// the circuit's own semantics before it is returned; a violation means an
// encoding-layout bug and fails with ErrWitnessConstraintViolation rather
// than a cryptic backend rejection.
func BuildAssignment(word, guess Word, salt fr.Element, commitment fr.Element, label string) (*FeedbackCircuit, Feedback, error) {
	tag, err := LabelTag(label)
	if err != nil {
		return nil, Feedback{}, err
	}
	d := &assignmentData{
		guess:      guess,
		feedback:   ComputeFeedback(word, guess),
		salt:       salt,
		commitment: commitment,
		tag:        tag,
	}
	for i := 0; i < NumPositions; i++ {
		if int(word[i]) >= AlphabetSize {
			return nil, Feedback{}, fmt.Errorf("%w: word rank %d at position %d", ErrEncodingOverflow, word[i], i)
		}
		if int(guess[i]) >= AlphabetSize {
			return nil, Feedback{}, fmt.Errorf("%w: guess rank %d at position %d", ErrEncodingOverflow, guess[i], i)
		}
		d.wordHot[i][word[i]] = 1
		d.guessHot[i][guess[i]] = 1
	}
	if err := d.validate(); err != nil {
		return nil, Feedback{}, err
	}
	return d.circuit(), d.feedback, nil
}

// validate re-evaluates every circuit constraint over the raw assignment:
// one-hot validity, guess binding, both feedback predicates and the native
// commitment recomputation.
func (d *assignmentData) validate() error {
	for i := 0; i < NumPositions; i++ {
		if err := checkOneHot("word", i, d.wordHot[i]); err != nil {
			return err
		}
		if err := checkOneHot("guess", i, d.guessHot[i]); err != nil {
			return err
		}
		if r := hotRank(d.guessHot[i]); r != d.guess[i] {
			return fmt.Errorf("%w: guess one-hot at position %d selects rank %d, public rank is %d",
				ErrWitnessConstraintViolation, i, r, d.guess[i])
		}
	}

	var word Word
	for i := 0; i < NumPositions; i++ {
		word[i] = hotRank(d.wordHot[i])
	}
	for i := 0; i < NumPositions; i++ {
		correct := dot(d.wordHot[i], d.guessHot[i]) == 1
		if correct != d.feedback.Correctness[i] {
			return fmt.Errorf("%w: correctness[%d] is %v, witness encodes %v",
				ErrWitnessConstraintViolation, i, d.feedback.Correctness[i], correct)
		}
		present := false
		for k := 0; k < NumPositions; k++ {
			if dot(d.wordHot[k], d.guessHot[i]) == 1 {
				present = true
			}
		}
		if present != d.feedback.Presence[i] {
			return fmt.Errorf("%w: presence[%d] is %v, witness encodes %v",
				ErrWitnessConstraintViolation, i, d.feedback.Presence[i], present)
		}
	}

	c, err := commitTagged(word, d.salt, d.tag)
	if err != nil {
		return err
	}
	if !c.Equal(&d.commitment) {
		return fmt.Errorf("%w: witness commitment does not match the published commitment",
			ErrWitnessConstraintViolation)
	}
	return nil
}

// circuit maps the raw assignment into the gnark assignment struct,
// zero-filling nothing: every slot is set explicitly.
func (d *assignmentData) circuit() *FeedbackCircuit {
	var c FeedbackCircuit
	for i := 0; i < NumPositions; i++ {
		for j := 0; j < AlphabetSize; j++ {
			c.WordHot[i][j] = d.wordHot[i][j]
			c.GuessHot[i][j] = d.guessHot[i][j]
		}
		c.Guess[i] = d.guess[i]
		c.Presence[i] = boolBit(d.feedback.Presence[i])
		c.Correctness[i] = boolBit(d.feedback.Correctness[i])
	}
	c.Salt = d.salt
	c.Commitment = d.commitment
	c.DomainTag = d.tag
	return &c
}

// PublicAssignment builds the verifier-side assignment: public inputs only,
// secret slots left unset.
func PublicAssignment(st Statement) (*FeedbackCircuit, error) {
	tag, err := LabelTag(st.Label)
	if err != nil {
		return nil, err
	}
	var c FeedbackCircuit
	for i := 0; i < NumPositions; i++ {
		if int(st.Guess[i]) >= AlphabetSize {
			return nil, fmt.Errorf("%w: guess rank %d at position %d", ErrEncodingOverflow, st.Guess[i], i)
		}
		c.Guess[i] = st.Guess[i]
		c.Presence[i] = boolBit(st.Feedback.Presence[i])
		c.Correctness[i] = boolBit(st.Feedback.Correctness[i])
	}
	c.Commitment = st.Commitment
	c.DomainTag = tag
	return &c, nil
}

func checkOneHot(kind string, pos int, hot [AlphabetSize]uint8) error {
	sum := 0
	for j, b := range hot {
		if b > 1 {
			return fmt.Errorf("%w: %s one-hot at position %d has non-boolean entry %d at rank %d",
				ErrWitnessConstraintViolation, kind, pos, b, j)
		}
		sum += int(b)
	}
	if sum != 1 {
		return fmt.Errorf("%w: %s one-hot at position %d sums to %d, want 1",
			ErrWitnessConstraintViolation, kind, pos, sum)
	}
	return nil
}

func hotRank(hot [AlphabetSize]uint8) uint8 {
	for j, b := range hot {
		if b == 1 {
			return uint8(j)
		}
	}
	return 0
}

func dot(a, b [AlphabetSize]uint8) int {
	sum := 0
	for j := range a {
		sum += int(a[j]) * int(b[j])
	}
	return sum
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
