package circuit

import (
	"errors"
	"testing"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestEncodeRank(t *testing.T) {
	for v := uint64(0); v < AlphabetSize; v++ {
		e, err := EncodeRank(v)
		if err != nil {
			t.Fatalf("rank %d: %v", v, err)
		}
		if e.Uint64() != v {
			t.Fatalf("rank %d encoded as %s", v, e.String())
		}
	}
	if _, err := EncodeRank(AlphabetSize); !errors.Is(err, ErrEncodingOverflow) {
		t.Fatalf("expected ErrEncodingOverflow, got %v", err)
	}
}

func TestEncodeBool(t *testing.T) {
	zero := EncodeBool(false)
	if !zero.IsZero() {
		t.Fatal("false must encode to zero")
	}
	one := EncodeBool(true)
	if !one.IsOne() {
		t.Fatal("true must encode to one")
	}
}

func TestFixedWidthRoundTrip(t *testing.T) {
	var e fr.Element
	e.SetUint64(25)
	buf := FixedWidth(e)
	if len(buf) != fr.Bytes {
		t.Fatalf("fixed width is %d bytes, want %d", len(buf), fr.Bytes)
	}
	// Small values are left-padded with zero bytes.
	for i := 0; i < fr.Bytes-1; i++ {
		if buf[i] != 0 {
			t.Fatalf("expected zero padding at byte %d", i)
		}
	}
	if buf[fr.Bytes-1] != 25 {
		t.Fatalf("last byte = %d, want 25", buf[fr.Bytes-1])
	}

	back, err := DecodeFixedWidth(buf[:])
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !back.Equal(&e) {
		t.Fatal("round trip changed the element")
	}

	if _, err := DecodeFixedWidth(buf[:5]); !errors.Is(err, ErrEncodingOverflow) {
		t.Fatalf("short buffer must fail with ErrEncodingOverflow, got %v", err)
	}
}

func TestOneHot(t *testing.T) {
	hot, err := OneHot(7)
	if err != nil {
		t.Fatal(err)
	}
	for j := range hot {
		if j == 7 {
			if !hot[j].IsOne() {
				t.Fatalf("slot %d should be one", j)
			}
		} else if !hot[j].IsZero() {
			t.Fatalf("slot %d should be zero", j)
		}
	}
	if _, err := OneHot(AlphabetSize); !errors.Is(err, ErrEncodingOverflow) {
		t.Fatalf("expected ErrEncodingOverflow, got %v", err)
	}
}

func TestLabelTag(t *testing.T) {
	a, err := LabelTag("wordle_example")
	if err != nil {
		t.Fatal(err)
	}
	b, err := LabelTag("wordle_example")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(&b) {
		t.Fatal("same label must produce the same tag")
	}
	c, err := LabelTag("another_session")
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(&c) {
		t.Fatal("different labels must produce different tags")
	}
}
