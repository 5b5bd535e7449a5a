// Package circuit defines the fixed-shape rank-1 constraint system for the
// wordle feedback predicate and the witness assembly that goes with it.
//
// The statement proven for each guess is: "I know a five-letter word and a
// salt such that MiMC(tag, word, salt) equals the published commitment, and
// the presence/correctness bits exposed as public inputs are exactly the
// feedback for the public guess against that word." Letters are encoded as
// one-hot blocks of length 26, so letter equality is the inner product of two
// one-hot rows and never references the letter rank as a matrix index. The
// circuit shape depends only on NumPositions and AlphabetSize, never on a
// particular word or guess.
package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

const (
	// NumPositions is the number of letter positions in a word.
	NumPositions = 5

	// AlphabetSize is the number of letter ranks, a..z.
	AlphabetSize = 26
)

// FeedbackCircuit is the R1CS template for one guess. The hidden word stays
// entirely in the secret witness; the verifier sees only the guess, the two
// feedback vectors, the word commitment and the transcript domain tag.
type FeedbackCircuit struct {
	// WordHot holds the hidden word, one one-hot row of 26 bits per position.
	WordHot [NumPositions][AlphabetSize]frontend.Variable `gnark:",secret"`
	// GuessHot is the one-hot expansion of the public guess ranks. It lives in
	// the secret witness and is bound to Guess below, which keeps every letter
	// comparison a product of two witness wires.
	GuessHot [NumPositions][AlphabetSize]frontend.Variable `gnark:",secret"`
	// Salt blinds the word commitment so the 26^5 word space cannot be
	// enumerated against it.
	Salt frontend.Variable `gnark:",secret"`

	Guess       [NumPositions]frontend.Variable `gnark:",public"`
	Presence    [NumPositions]frontend.Variable `gnark:",public"`
	Correctness [NumPositions]frontend.Variable `gnark:",public"`
	Commitment  frontend.Variable               `gnark:",public"`
	DomainTag   frontend.Variable               `gnark:",public"`
}

// Define declares the constraints. For every position i:
//
//	correctness[i] = <WordHot[i], GuessHot[i]>
//	presence[i]    = 1 - prod_k (1 - <WordHot[k], GuessHot[i]>)
//
// plus one-hot validity for each row, the binding of GuessHot to the public
// guess ranks, and the MiMC binding of the hidden word to the commitment.
func (c *FeedbackCircuit) Define(api frontend.API) error {
	for i := 0; i < NumPositions; i++ {
		assertOneHot(api, c.WordHot[i][:])
		assertOneHot(api, c.GuessHot[i][:])
		api.AssertIsEqual(rankOf(api, c.GuessHot[i][:]), c.Guess[i])
	}

	for i := 0; i < NumPositions; i++ {
		api.AssertIsEqual(innerProduct(api, c.WordHot[i][:], c.GuessHot[i][:]), c.Correctness[i])
	}

	for i := 0; i < NumPositions; i++ {
		miss := frontend.Variable(1)
		for k := 0; k < NumPositions; k++ {
			match := innerProduct(api, c.WordHot[k][:], c.GuessHot[i][:])
			miss = api.Mul(miss, api.Sub(1, match))
		}
		api.AssertIsEqual(api.Sub(1, miss), c.Presence[i])
	}

	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.DomainTag)
	for i := 0; i < NumPositions; i++ {
		h.Write(rankOf(api, c.WordHot[i][:]))
	}
	h.Write(c.Salt)
	api.AssertIsEqual(h.Sum(), c.Commitment)

	return nil
}

// assertOneHot constrains every entry of hot to be boolean and the row to sum
// to exactly one.
func assertOneHot(api frontend.API, hot []frontend.Variable) {
	sum := frontend.Variable(0)
	for _, b := range hot {
		api.AssertIsBoolean(b)
		sum = api.Add(sum, b)
	}
	api.AssertIsEqual(sum, 1)
}

// rankOf recovers the letter rank selected by a one-hot row: sum_j j*hot[j].
func rankOf(api frontend.API, hot []frontend.Variable) frontend.Variable {
	rank := frontend.Variable(0)
	for j := 1; j < len(hot); j++ {
		rank = api.Add(rank, api.Mul(hot[j], j))
	}
	return rank
}

// innerProduct is <a, b>. For two one-hot rows this is 1 iff both select the
// same letter.
func innerProduct(api frontend.API, a, b []frontend.Variable) frontend.Variable {
	sum := frontend.Variable(0)
	for j := range a {
		sum = api.Add(sum, api.Mul(a[j], b[j]))
	}
	return sum
}
