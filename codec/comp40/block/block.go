/*
DESCRIPTION
  block.go implements the forward and inverse 2x2 discrete cosine
  transform used to reduce a 2x2 luma block to a mean coefficient (a)
  and three differential coefficients (b, c, d), plus arithmetic
  averaging/broadcast of the block's chroma.

AUTHOR
  Kabir Pamnani
*/

// Package block implements the 2x2 DCT and chroma reduction at the
// heart of the comp40 codec's block compressor.
package block

// Luma holds the four luma samples of a 2x2 block, numbered left to
// right, top to bottom.
type Luma struct {
	Y1, Y2, Y3, Y4 float64
}

// Coeffs is the six-float record produced by reducing one 2x2 block:
// the luma DCT coefficients (A is mean brightness; B, C, D are
// differential) and the block's mean chroma.
type Coeffs struct {
	A, B, C, D   float64
	PbAvg, PrAvg float64
}

// Forward computes the 2x2 DCT of a luma block.
func Forward(l Luma) (a, b, c, d float64) {
	a = (l.Y4 + l.Y3 + l.Y2 + l.Y1) / 4
	b = (l.Y4 + l.Y3 - l.Y2 - l.Y1) / 4
	c = (l.Y4 - l.Y3 + l.Y2 - l.Y1) / 4
	d = (l.Y4 - l.Y3 - l.Y2 + l.Y1) / 4
	return a, b, c, d
}

// Inverse reconstructs a 2x2 luma block from its DCT coefficients.
func Inverse(a, b, c, d float64) Luma {
	return Luma{
		Y1: a - b - c + d,
		Y2: a - b + c - d,
		Y3: a + b - c - d,
		Y4: a + b + c + d,
	}
}

// AverageChroma returns the arithmetic mean of four chroma samples.
func AverageChroma(p1, p2, p3, p4 float64) float64 {
	return (p1 + p2 + p3 + p4) / 4
}
