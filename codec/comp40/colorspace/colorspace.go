/*
DESCRIPTION
  colorspace.go converts pixels between normalized RGB and
  component-video (Y/Pb/Pr) color space, using the CCIR 601 style
  coefficients fixed by the comp40 codec.

AUTHOR
  Kabir Pamnani
*/

// Package colorspace converts between normalized RGB pixels and
// component-video (Y/Pb/Pr) pixels.
package colorspace

// YPbPr is a single pixel in component-video color space. Y is nominally
// in [0,1]; Pb and Pr are nominally in [-0.5, 0.5].
type YPbPr struct {
	Y, Pb, Pr float64
}

// RGB is a single pixel of normalized, not-yet-clamped RGB floats.
type RGB struct {
	R, G, B float64
}

// ToYPbPr converts a normalized RGB pixel to component video. Out-of-range
// input (r, g, or b outside [0,1]) is not clamped: the forward transform
// preserves whatever values it is given.
func ToYPbPr(p RGB) YPbPr {
	return YPbPr{
		Y:  0.299*p.R + 0.587*p.G + 0.114*p.B,
		Pb: -0.168736*p.R - 0.331264*p.G + 0.5*p.B,
		Pr: 0.5*p.R - 0.418688*p.G - 0.081312*p.B,
	}
}

// ToRGB converts a component-video pixel back to RGB, clamping each
// channel to [0,1]. Clamping happens only on this inverse path.
func ToRGB(p YPbPr) RGB {
	r := p.Y + 1.402*p.Pr
	g := p.Y - 0.344136*p.Pb - 0.714136*p.Pr
	b := p.Y + 1.772*p.Pb
	return RGB{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
