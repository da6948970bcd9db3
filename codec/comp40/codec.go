/*
DESCRIPTION
  codec.go orchestrates the full comp40 compress/decompress pipeline:
  PPM <-> trimmed PPM <-> component-video grid <-> block coefficients
  <-> code words <-> compressed container bytes.

AUTHOR
  Kabir Pamnani
*/

// Package comp40 implements a lossy PPM image codec that compresses
// 2x2 RGB blocks to 32-bit code words at a fixed 3:1 ratio.
package comp40

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/block"
	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/colorspace"
	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/container"
	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/grid"
	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/ppm"
	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/quantize"
)

// Log is the package-level logger the codec writes diagnostics to. It
// defaults to nopLogger, which discards everything, until the caller
// assigns a real logging.Logger; callers that don't care about
// diagnostics can leave it as is.
var Log logger = nopLogger{}

// logger is the subset of github.com/ausocean/utils/logging.Logger that
// the codec needs. It's declared locally so this package doesn't force
// every caller to depend on the concrete logging implementation; the
// CLI in cmd/40image assigns a real logging.Logger, which satisfies
// this interface structurally.
type logger interface {
	Debug(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

// Compress reads one PPM image from r, compresses it, and writes the
// comp40 compressed container to w.
func Compress(r io.Reader, w io.Writer) error {
	img, err := ppm.Read(r)
	if err != nil {
		Log.Error("could not read PPM", "error", err)
		return errors.Wrap(err, "comp40: compress")
	}

	trimmed := ppm.Trim(img)
	Log.Debug("trimmed image", "width", trimmed.Width, "height", trimmed.Height)

	cvs := toComponentVideo(trimmed)
	words, err := encodeBlocks(cvs)
	if err != nil {
		Log.Error("could not encode blocks", "error", err)
		return errors.Wrap(err, "comp40: compress")
	}

	if err := container.WriteHeader(w, trimmed.Width, trimmed.Height); err != nil {
		return errors.Wrap(err, "comp40: compress")
	}
	flat := make([]uint64, 0, words.Width()*words.Height())
	words.Map(func(_, _ int, v uint64) { flat = append(flat, v) })
	if err := container.WriteWords(w, flat); err != nil {
		return errors.Wrap(err, "comp40: compress")
	}

	Log.Debug("wrote compressed stream", "blocks", len(flat))
	return nil
}

// Decompress reads one comp40 compressed container from r, decompresses
// it, and writes the resulting PPM image to w.
func Decompress(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	width, height, err := container.ReadHeader(br)
	if err != nil {
		Log.Error("could not read container header", "error", err)
		return errors.Wrap(err, "comp40: decompress")
	}

	blocksWide, blocksHigh := width/2, height/2
	flat, err := container.ReadWords(br, blocksWide*blocksHigh)
	if err != nil {
		Log.Error("could not read code words", "error", err)
		return errors.Wrap(err, "comp40: decompress")
	}

	words := grid.New[uint64](blocksWide, blocksHigh)
	for i, word := range flat {
		words.Set(i%blocksWide, i/blocksWide, word)
	}

	cvs := decodeBlocks(words, width, height)
	img := toRGB(cvs)

	Log.Debug("decoded compressed stream", "width", width, "height", height)
	if err := ppm.Write(w, img); err != nil {
		return errors.Wrap(err, "comp40: decompress")
	}
	return nil
}

// toComponentVideo converts every pixel of img to component video. img
// is assumed to have already passed ppm.Read's format validation
// (Denom > 0).
func toComponentVideo(img *ppm.Image) *grid.Grid[colorspace.YPbPr] {
	out := grid.New[colorspace.YPbPr](img.Width, img.Height)
	denom := float64(img.Denom)
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			p := img.At(col, row)
			rgb := colorspace.RGB{
				R: float64(p.R) / denom,
				G: float64(p.G) / denom,
				B: float64(p.B) / denom,
			}
			out.Set(col, row, colorspace.ToYPbPr(rgb))
		}
	}
	return out
}

// encodeBlocks reduces every 2x2 block of cvs into a code word.
//
// Quantization guarantees every field fits (see quantize.go), so the
// comperr.ErrOverflow path below should be unreachable for any input
// that made it this far; per spec it is still surfaced as an error
// rather than assumed away.
func encodeBlocks(cvs *grid.Grid[colorspace.YPbPr]) (*grid.Grid[uint64], error) {
	bw, bh := cvs.Width()/2, cvs.Height()/2
	out := grid.New[uint64](bw, bh)
	for j := 0; j < bh; j++ {
		for i := 0; i < bw; i++ {
			col, row := 2*i, 2*j
			p1 := cvs.At(col, row)
			p2 := cvs.At(col+1, row)
			p3 := cvs.At(col, row+1)
			p4 := cvs.At(col+1, row+1)

			a, b, c, d := block.Forward(block.Luma{Y1: p1.Y, Y2: p2.Y, Y3: p3.Y, Y4: p4.Y})
			pbAvg := block.AverageChroma(p1.Pb, p2.Pb, p3.Pb, p4.Pb)
			prAvg := block.AverageChroma(p1.Pr, p2.Pr, p3.Pr, p4.Pr)

			word, err := quantize.EncodeBlock(block.Coeffs{A: a, B: b, C: c, D: d, PbAvg: pbAvg, PrAvg: prAvg})
			if err != nil {
				return nil, errors.Wrapf(err, "encodeBlocks: block (%d, %d)", i, j)
			}
			out.Set(i, j, word)
		}
	}
	return out, nil
}

// decodeBlocks expands every code word of words into a 2x2 region of a
// width x height component-video grid.
func decodeBlocks(words *grid.Grid[uint64], width, height int) *grid.Grid[colorspace.YPbPr] {
	out := grid.New[colorspace.YPbPr](width, height)
	for j := 0; j < words.Height(); j++ {
		for i := 0; i < words.Width(); i++ {
			c := quantize.DecodeBlock(words.At(i, j))
			luma := block.Inverse(c.A, c.B, c.C, c.D)
			col, row := 2*i, 2*j
			out.Set(col, row, colorspace.YPbPr{Y: luma.Y1, Pb: c.PbAvg, Pr: c.PrAvg})
			out.Set(col+1, row, colorspace.YPbPr{Y: luma.Y2, Pb: c.PbAvg, Pr: c.PrAvg})
			out.Set(col, row+1, colorspace.YPbPr{Y: luma.Y3, Pb: c.PbAvg, Pr: c.PrAvg})
			out.Set(col+1, row+1, colorspace.YPbPr{Y: luma.Y4, Pb: c.PbAvg, Pr: c.PrAvg})
		}
	}
	return out
}

// toRGB converts every pixel of cvs back to RGB with denominator 255.
func toRGB(cvs *grid.Grid[colorspace.YPbPr]) *ppm.Image {
	img := &ppm.Image{
		Width:  cvs.Width(),
		Height: cvs.Height(),
		Denom:  255,
		Pixels: make([]ppm.Pixel, cvs.Width()*cvs.Height()),
	}
	for row := 0; row < cvs.Height(); row++ {
		for col := 0; col < cvs.Width(); col++ {
			rgb := colorspace.ToRGB(cvs.At(col, row))
			img.Set(col, row, ppm.Pixel{
				R: uint16(round(rgb.R * 255)),
				G: uint16(round(rgb.G * 255)),
				B: uint16(round(rgb.B * 255)),
			})
		}
	}
	return img
}

func round(v float64) float64 {
	return float64(int64(v + 0.5))
}
