/*
DESCRIPTION
  bitpack.go provides primitives for packing and extracting fixed-width
  unsigned and signed fields within a 64-bit container word. It is used
  by quantize to lay out the six fields of a comp40 code word; its only
  dependencies are comperr and github.com/pkg/errors, for reporting
  overflow.

AUTHOR
  Kabir Pamnani
*/

// Package bitpack manipulates fixed-width bit fields within a 64-bit
// word: packing, extracting, and testing whether a value fits.
//
// Every field is specified by a width w and a least-significant-bit
// position lsb, with the constraint w <= 64 and w+lsb <= 64. Violating
// that constraint is a programmer error (a contract violation) and
// panics; asking to place a value that does not fit its field width is
// a data error and returns comperr.ErrOverflow.
package bitpack

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/comperr"
)

const wordSize = 64

// checkShape panics if width or width+lsb exceed the container's 64
// bits. This is a contract violation, not a recoverable error: callers
// are expected to pass field shapes fixed at compile time.
func checkShape(width, lsb uint) {
	if width > wordSize {
		panic(fmt.Sprintf("bitpack: width %d exceeds word size %d", width, wordSize))
	}
	if width+lsb > wordSize {
		panic(fmt.Sprintf("bitpack: width %d + lsb %d exceeds word size %d", width, lsb, wordSize))
	}
}

// leftShift left shifts value by n, treating n == 64 as a shift that
// clears the word. Go already defines shifts by the operand's bit width
// as yielding zero for unsigned left shifts, but we keep the branch
// explicit to document the contract spelled out by the field-packing
// scheme this package implements.
func leftShift(value uint64, n uint) uint64 {
	if n >= wordSize {
		return 0
	}
	return value << n
}

// rightShift is the unsigned counterpart of leftShift.
func rightShift(value uint64, n uint) uint64 {
	if n >= wordSize {
		return 0
	}
	return value >> n
}

// rightShiftSigned arithmetic right shifts value by n. A shift of 64 or
// more collapses to all-ones for negative values and all-zeros
// otherwise, the idealized two's-complement result of shifting out
// every value bit including the sign.
func rightShiftSigned(value int64, n uint) int64 {
	if n >= wordSize {
		if value < 0 {
			return -1
		}
		return 0
	}
	return value >> n
}

// FitsUnsigned reports whether n can be represented in width unsigned
// bits.
func FitsUnsigned(n uint64, width uint) bool {
	checkShape(width, 0)
	if width == wordSize {
		return true
	}
	return n < (uint64(1) << width)
}

// FitsSigned reports whether n can be represented in width two's
// complement bits. A width of 0 admits only n == 0.
func FitsSigned(n int64, width uint) bool {
	checkShape(width, 0)
	if width == 0 {
		return n == 0
	}
	max := int64(leftShift(1, width-1)) - 1
	min := ^max
	return n >= min && n <= max
}

// GetUnsigned extracts the width-bit field at lsb from word, as an
// unsigned value.
func GetUnsigned(word uint64, width, lsb uint) uint64 {
	checkShape(width, lsb)
	mask := rightShift(^uint64(0), wordSize-width)
	mask = leftShift(mask, lsb)
	return rightShift(word&mask, lsb)
}

// GetSigned extracts the width-bit field at lsb from word, sign
// extended to a two's complement int64.
func GetSigned(word uint64, width, lsb uint) int64 {
	checkShape(width, lsb)
	if width == 0 {
		return 0
	}
	mask := rightShift(^uint64(0), wordSize-width)
	mask = leftShift(mask, lsb)
	field := word & mask
	field = leftShift(field, wordSize-(width+lsb))
	return rightShiftSigned(int64(field), wordSize-width)
}

// NewUnsigned returns word with its width-bit field at lsb replaced by
// the low width bits of value. It returns comperr.ErrOverflow if value
// does not fit in width unsigned bits.
func NewUnsigned(word uint64, width, lsb uint, value uint64) (uint64, error) {
	checkShape(width, lsb)
	if !FitsUnsigned(value, width) {
		return 0, errors.Wrapf(comperr.ErrOverflow, "new_unsigned: %d does not fit in %d bits", value, width)
	}
	shifted := leftShift(value, lsb)
	maskHi := leftShift(^uint64(0), lsb+width)
	maskLo := rightShift(^uint64(0), wordSize-lsb)
	mask := maskHi | maskLo
	return (word & mask) | shifted, nil
}

// NewSigned returns word with its width-bit field at lsb replaced by
// the two's complement representation of value. It returns
// comperr.ErrOverflow if value does not fit in width signed bits.
func NewSigned(word uint64, width, lsb uint, value int64) (uint64, error) {
	checkShape(width, lsb)
	if !FitsSigned(value, width) {
		return 0, errors.Wrapf(comperr.ErrOverflow, "new_signed: %d does not fit in %d bits", value, width)
	}
	// Mask value down to its low width bits before placing it; this
	// strips the sign-extension bits above the field so the OR below
	// doesn't clobber neighbouring fields.
	v := leftShift(uint64(value), wordSize-width)
	v = rightShift(v, wordSize-width)
	v = leftShift(v, lsb)
	maskHi := leftShift(^uint64(0), lsb+width)
	maskLo := rightShift(^uint64(0), wordSize-lsb)
	mask := maskHi | maskLo
	return (word & mask) | v, nil
}
