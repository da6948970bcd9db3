/*
DESCRIPTION
  ppmdiff.go computes a simple per-channel mean squared error between
  two PPM images of the same (or nearly the same) dimensions, used as a
  standalone quality metric for judging lossy compression -- not part
  of the codec itself.

AUTHOR
  Kabir Pamnani
*/

// Package ppmdiff computes a normalized mean-squared-error metric
// between two PPM images, the way the original comp40 exercise's
// ppmdiff tool judged compression quality.
package ppmdiff

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/ppm"
)

// MeanSquaredError returns the per-channel normalized mean squared error
// between a and b. Dimensions differing by more than 1 in either
// direction are rejected; otherwise the comparison runs over the
// overlapping region, matching the tolerance of the original tool this
// is based on.
func MeanSquaredError(a, b *ppm.Image) (float64, error) {
	if absInt(a.Width-b.Width) > 1 || absInt(a.Height-b.Height) > 1 {
		return 0, fmt.Errorf("ppmdiff: dimensions %dx%d and %dx%d differ by more than 1", a.Width, a.Height, b.Width, b.Height)
	}

	w := minInt(a.Width, b.Width)
	h := minInt(a.Height, b.Height)

	sq := make([]float64, 0, w*h*3)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			pa := normalize(a.At(col, row), a.Denom)
			pb := normalize(b.At(col, row), b.Denom)
			sq = append(sq,
				square(pa.R-pb.R),
				square(pa.G-pb.G),
				square(pa.B-pb.B),
			)
		}
	}
	return stat.Mean(sq, nil), nil
}

type normalized struct{ R, G, B float64 }

func normalize(p ppm.Pixel, denom int) normalized {
	d := float64(denom)
	return normalized{R: float64(p.R) / d, G: float64(p.G) / d, B: float64(p.B) / d}
}

func square(v float64) float64 { return v * v }

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
