package circuit

import (
	"fmt"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// transcriptDST is the domain-separation tag under which transcript labels are
// hashed to field elements. Changing it invalidates every previously issued
// statement, so it is versioned.
const transcriptDST = "zk-wordle-transcript-v1"

// EncodeRank converts a letter rank in [0, AlphabetSize) to its canonical
// field encoding.
func EncodeRank(v uint64) (fr.Element, error) {
	var e fr.Element
	if v >= AlphabetSize {
		return e, fmt.Errorf("%w: rank %d outside [0,%d)", ErrEncodingOverflow, v, AlphabetSize)
	}
	e.SetUint64(v)
	return e, nil
}

// EncodeBool converts a boolean to the field element 0 or 1.
func EncodeBool(b bool) fr.Element {
	var e fr.Element
	if b {
		e.SetOne()
	}
	return e
}

// FixedWidth returns the backend's fixed-width byte encoding of e: fr.Bytes
// bytes, big-endian, left-padded with zero bytes. This is the block format the
// native MiMC hasher consumes.
func FixedWidth(e fr.Element) [fr.Bytes]byte {
	return e.Bytes()
}

// DecodeFixedWidth parses a fixed-width buffer produced by FixedWidth back
// into a field element.
func DecodeFixedWidth(buf []byte) (fr.Element, error) {
	var e fr.Element
	if len(buf) != fr.Bytes {
		return e, fmt.Errorf("%w: buffer is %d bytes, want %d", ErrEncodingOverflow, len(buf), fr.Bytes)
	}
	if err := e.SetBytesCanonical(buf); err != nil {
		return e, fmt.Errorf("%w: %v", ErrEncodingOverflow, err)
	}
	return e, nil
}

// OneHot expands a letter rank into its one-hot block of AlphabetSize field
// elements.
func OneHot(rank uint8) ([AlphabetSize]fr.Element, error) {
	var hot [AlphabetSize]fr.Element
	if int(rank) >= AlphabetSize {
		return hot, fmt.Errorf("%w: rank %d outside [0,%d)", ErrEncodingOverflow, rank, AlphabetSize)
	}
	hot[rank].SetOne()
	return hot, nil
}

// LabelTag hashes a transcript label to a field element. The tag is a public
// input bound into the word commitment, so prove and verify must agree on the
// label or verification fails.
func LabelTag(label string) (fr.Element, error) {
	elems, err := fr.Hash([]byte(label), []byte(transcriptDST), 1)
	if err != nil {
		return fr.Element{}, fmt.Errorf("hash transcript label: %w", err)
	}
	return elems[0], nil
}
