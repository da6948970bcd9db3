/*
DESCRIPTION
  chroma.go maps between floating-point chroma averages and the 4-bit
  indices stored in a code word, via a fixed 16-entry table.

AUTHOR
  Kabir Pamnani
*/

package quantize

// chromaTable holds the 16 representative chroma values addressed by a
// 4-bit index. The comp40 format's chroma index is defined only up to a
// choice of table; this one spaces its entries evenly across the nominal [-0.5, 0.5) chroma
// range at the left edge of each bin, so index 8 lands on exactly 0 --
// the chroma value every solid-color block (pb=pr=0) must decode back
// to exactly.
var chromaTable = [16]float64{
	-0.5, -0.4375, -0.375, -0.3125,
	-0.25, -0.1875, -0.125, -0.0625,
	0, 0.0625, 0.125, 0.1875,
	0.25, 0.3125, 0.375, 0.4375,
}

// ChromaIndex finds the table entry nearest to v and returns its index.
func ChromaIndex(v float64) uint64 {
	best := 0
	bestDist := dist(v, chromaTable[0])
	for i := 1; i < len(chromaTable); i++ {
		d := dist(v, chromaTable[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint64(best)
}

// ChromaOfIndex returns the representative chroma value for index i.
func ChromaOfIndex(i uint64) float64 {
	return chromaTable[i]
}

func dist(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
