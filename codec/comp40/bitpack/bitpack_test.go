/*
DESCRIPTION
  bitpack_test.go provides testing for utilities in bitpack.go.

AUTHOR
  Kabir Pamnani
*/
package bitpack

import (
	"errors"
	"testing"

	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/comperr"
)

func TestFitsUnsigned(t *testing.T) {
	tests := []struct {
		n     uint64
		width uint
		want  bool
	}{
		{0, 0, true},
		{1, 0, false},
		{63, 6, true},
		{64, 6, false},
		{0, 64, true},
		{^uint64(0), 64, true},
	}
	for i, test := range tests {
		got := FitsUnsigned(test.n, test.width)
		if got != test.want {
			t.Errorf("test %d: FitsUnsigned(%d, %d) = %v, want %v", i, test.n, test.width, got, test.want)
		}
	}
}

func TestFitsSigned(t *testing.T) {
	tests := []struct {
		n     int64
		width uint
		want  bool
	}{
		{0, 0, true},
		{1, 0, false},
		{-1, 0, false},
		{-32, 6, true},
		{31, 6, true},
		{32, 6, false},
		{-33, 6, false},
	}
	for i, test := range tests {
		got := FitsSigned(test.n, test.width)
		if got != test.want {
			t.Errorf("test %d: FitsSigned(%d, %d) = %v, want %v", i, test.n, test.width, got, test.want)
		}
	}
}

func TestGetSignedTopBitNegative(t *testing.T) {
	// 6-bit field with top bit set must read back negative.
	word, err := NewUnsigned(0, 6, 20, 0x20) // 0b100000
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := GetSigned(word, 6, 20)
	if got >= 0 {
		t.Errorf("GetSigned(%#x, 6, 20) = %d, want negative", word, got)
	}
}

func TestRoundTripUnsigned(t *testing.T) {
	for width := uint(0); width <= 64; width++ {
		for lsb := uint(0); lsb+width <= 64; lsb += 7 {
			var v uint64
			if width < 64 {
				v = (uint64(1) << width) - 1
			} else {
				v = ^uint64(0)
			}
			word, err := NewUnsigned(0xdeadbeefcafebabe, width, lsb, v)
			if err != nil {
				t.Fatalf("width %d lsb %d: unexpected error: %v", width, lsb, err)
			}
			got := GetUnsigned(word, width, lsb)
			if got != v {
				t.Errorf("width %d lsb %d: round trip = %d, want %d", width, lsb, got, v)
			}
		}
	}
}

func TestRoundTripSigned(t *testing.T) {
	tests := []struct {
		width uint
		lsb   uint
		value int64
	}{
		{6, 20, -31},
		{6, 20, 31},
		{6, 0, -32},
		{1, 10, -1},
		{0, 5, 0},
	}
	for i, test := range tests {
		word, err := NewSigned(0, test.width, test.lsb, test.value)
		if err != nil {
			t.Fatalf("test %d: unexpected error: %v", i, err)
		}
		got := GetSigned(word, test.width, test.lsb)
		if got != test.value {
			t.Errorf("test %d: round trip = %d, want %d", i, got, test.value)
		}
	}
}

// TestBitpackRoundTripScenario is scenario 6 from the spec: new_signed(0,
// 6, 20, -31) then get_signed reads back -31, and every other field
// reads back 0.
func TestBitpackRoundTripScenario(t *testing.T) {
	word, err := NewSigned(0, 6, 20, -31)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := GetSigned(word, 6, 20); got != -31 {
		t.Errorf("GetSigned = %d, want -31", got)
	}
	if got := GetUnsigned(word, 4, 0); got != 0 {
		t.Errorf("unrelated field GetUnsigned(word, 4, 0) = %d, want 0", got)
	}
	if got := GetUnsigned(word, 6, 26); got != 0 {
		t.Errorf("unrelated field GetUnsigned(word, 6, 26) = %d, want 0", got)
	}
}

func TestNewPreservesOutsideBits(t *testing.T) {
	word := ^uint64(0)
	updated, err := NewUnsigned(word, 6, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Bits outside [20, 26) must be untouched (still all ones).
	below := GetUnsigned(updated, 20, 0)
	if below != (uint64(1)<<20)-1 {
		t.Errorf("bits below field were clobbered: %#x", below)
	}
	above := GetUnsigned(updated, 64-26, 26)
	if above != (^uint64(0))>>26 {
		t.Errorf("bits above field were clobbered: %#x", above)
	}
}

func TestNewUnsignedOverflow(t *testing.T) {
	_, err := NewUnsigned(0, 6, 0, 64)
	if !errors.Is(err, comperr.ErrOverflow) {
		t.Errorf("NewUnsigned overflow: got err %v, want comperr.ErrOverflow", err)
	}
}

func TestNewSignedOverflow(t *testing.T) {
	_, err := NewSigned(0, 6, 0, 32)
	if !errors.Is(err, comperr.ErrOverflow) {
		t.Errorf("NewSigned overflow: got err %v, want comperr.ErrOverflow", err)
	}
	_, err = NewSigned(0, 6, 0, -33)
	if !errors.Is(err, comperr.ErrOverflow) {
		t.Errorf("NewSigned underflow: got err %v, want comperr.ErrOverflow", err)
	}
}

func TestContractViolationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for width > 64")
		}
	}()
	GetUnsigned(0, 65, 0)
}
