/*
DESCRIPTION
  quantize.go maps a block's six floating-point coefficients (from
  package block) to and from the fixed six-field layout of a 32-bit
  comp40 code word, using package bitpack for the field I/O.

AUTHOR
  Kabir Pamnani
*/

// Package quantize converts between block.Coeffs and the packed 32-bit
// code word comp40 writes to its compressed stream.
//
// Code word layout (low 32 bits of the uint64 container; bits 32-63
// are always zero):
//
//	field     width  lsb  sign
//	a           6     26  unsigned
//	b           6     20  signed
//	c           6     14  signed
//	d           6      8  signed
//	pb_index    4      4  unsigned
//	pr_index    4      0  unsigned
package quantize

import (
	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/bitpack"
	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/block"
)

const (
	aWidth, aLSB   = 6, 26
	bWidth, bLSB   = 6, 20
	cWidth, cLSB   = 6, 14
	dWidth, dLSB   = 6, 8
	pbWidth, pbLSB = 4, 4
	prWidth, prLSB = 4, 0

	aScale = 63.0
	// bcdScale is the dequantization step for b, c, and d. The field is
	// 6 bits wide but, by design (see quantizeDiff), only the 5-bit
	// range [-31, 31] is ever produced.
	bcdScale = 0.6 / 63.0
)

// EncodeBlock quantizes and packs a block of coefficients into a 32-bit
// code word (returned in the low 32 bits of a uint64; bits 32-63 are
// zero).
func EncodeBlock(c block.Coeffs) (uint64, error) {
	var word uint64
	var err error

	aq := uint64(round(c.A * aScale))
	if word, err = bitpack.NewUnsigned(word, aWidth, aLSB, aq); err != nil {
		return 0, err
	}

	bq := quantizeDiff(c.B)
	if word, err = bitpack.NewSigned(word, bWidth, bLSB, bq); err != nil {
		return 0, err
	}

	cq := quantizeDiff(c.C)
	if word, err = bitpack.NewSigned(word, cWidth, cLSB, cq); err != nil {
		return 0, err
	}

	dq := quantizeDiff(c.D)
	if word, err = bitpack.NewSigned(word, dWidth, dLSB, dq); err != nil {
		return 0, err
	}

	pbIdx := ChromaIndex(c.PbAvg)
	if word, err = bitpack.NewUnsigned(word, pbWidth, pbLSB, pbIdx); err != nil {
		return 0, err
	}

	prIdx := ChromaIndex(c.PrAvg)
	if word, err = bitpack.NewUnsigned(word, prWidth, prLSB, prIdx); err != nil {
		return 0, err
	}

	return word, nil
}

// DecodeBlock unpacks and dequantizes a 32-bit code word into a block of
// coefficients.
func DecodeBlock(word uint64) block.Coeffs {
	a := float64(bitpack.GetUnsigned(word, aWidth, aLSB)) / aScale
	b := dequantizeDiff(bitpack.GetSigned(word, bWidth, bLSB))
	c := dequantizeDiff(bitpack.GetSigned(word, cWidth, cLSB))
	d := dequantizeDiff(bitpack.GetSigned(word, dWidth, dLSB))
	pb := ChromaOfIndex(bitpack.GetUnsigned(word, pbWidth, pbLSB))
	pr := ChromaOfIndex(bitpack.GetUnsigned(word, prWidth, prLSB))
	return block.Coeffs{A: a, B: b, C: c, D: d, PbAvg: pb, PrAvg: pr}
}

// quantizeDiff quantizes a DCT differential coefficient nominally in
// [-0.3, 0.3] to its 5-bit-range signed code. Values outside the
// nominal range clamp to the extremes of that range rather than to the
// full 6-bit field; the low value of the 6-bit field (-32) is
// intentionally never produced.
func quantizeDiff(v float64) int64 {
	switch {
	case v >= -0.3 && v <= 0.3:
		return int64(round(v / bcdScale))
	case v < -0.3:
		return -31
	default: // v > 0.3
		return 31
	}
}

func dequantizeDiff(q int64) float64 {
	return float64(q) * bcdScale
}

func round(v float64) float64 {
	if v < 0 {
		return -round(-v)
	}
	return float64(int64(v + 0.5))
}
