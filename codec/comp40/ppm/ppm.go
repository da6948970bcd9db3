/*
DESCRIPTION
  ppm.go reads and writes binary PPM (P6) images, and trims an image to
  even width/height before block reduction.

  The comp40 specification treats the PPM reader/writer as an external
  black box (it is provided by course infrastructure in the original
  assignment this codec is based on); there is no such black box in
  this module's dependency set, and neither the standard library's
  image package nor any example-provided library registers a P6 codec,
  so this is implemented directly with bufio and fmt.

AUTHOR
  Kabir Pamnani
*/

// Package ppm reads and writes binary PPM (P6) images.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/comperr"
)

// Pixel is one RGB triple as read from a PPM file, with values in
// [0, Denom].
type Pixel struct {
	R, G, B uint16
}

// Image is a binary PPM (P6) image: a width x height grid of pixels
// sharing a single denominator.
type Image struct {
	Width, Height int
	Denom         int
	Pixels        []Pixel // row-major, len == Width*Height
}

// At returns the pixel at (col, row).
func (img *Image) At(col, row int) Pixel {
	return img.Pixels[row*img.Width+col]
}

// Set stores p at (col, row).
func (img *Image) Set(col, row int, p Pixel) {
	img.Pixels[row*img.Width+col] = p
}

// Read parses a binary PPM (P6) image from r.
func Read(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: could not read magic number")
	}
	if magic != "P6" {
		return nil, errors.Wrapf(comperr.ErrFormat, "ppm: unsupported magic number %q", magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: could not read width")
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: could not read height")
	}
	denom, err := readIntToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: could not read denominator")
	}
	// readToken already consumed the single whitespace byte that
	// terminates the denominator token and separates the header from
	// the raster, so the raster starts at the reader's current position.

	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(comperr.ErrFormat, "ppm: invalid dimensions %dx%d", width, height)
	}
	if denom <= 0 {
		return nil, errors.Wrapf(comperr.ErrFormat, "ppm: invalid denominator %d", denom)
	}

	img := &Image{Width: width, Height: height, Denom: denom, Pixels: make([]Pixel, width*height)}
	raster := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, raster); err != nil {
		return nil, errors.Wrap(err, "ppm: unexpected EOF reading raster")
	}
	for i := range img.Pixels {
		img.Pixels[i] = Pixel{
			R: uint16(raster[3*i]),
			G: uint16(raster[3*i+1]),
			B: uint16(raster[3*i+2]),
		}
	}
	return img, nil
}

// Write emits img as a binary PPM (P6) image with denominator 255,
// clamping each channel to [0, 255] on the way out.
func Write(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return errors.Wrap(err, "ppm: could not write header")
	}
	raster := make([]byte, 0, img.Width*img.Height*3)
	for _, p := range img.Pixels {
		raster = append(raster, clampByte(p.R), clampByte(p.G), clampByte(p.B))
	}
	if _, err := bw.Write(raster); err != nil {
		return errors.Wrap(err, "ppm: could not write raster")
	}
	return bw.Flush()
}

// Trim returns a new image cropped to even width and height, aligned to
// the upper-left corner. The denominator is preserved. If img already
// has even width and height, img itself is returned.
func Trim(img *Image) *Image {
	w := img.Width - img.Width%2
	h := img.Height - img.Height%2
	if w == img.Width && h == img.Height {
		return img
	}
	out := &Image{Width: w, Height: h, Denom: img.Denom, Pixels: make([]Pixel, w*h)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			out.Set(col, row, img.At(col, row))
		}
	}
	return out
}

func clampByte(v uint16) byte {
	if v > 255 {
		return 255
	}
	return byte(v)
}

// readToken reads whitespace-delimited ASCII tokens from the PPM
// header, skipping '#' comments as the PNM family's header grammar
// requires.
func readToken(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '#' {
			if err := skipLine(br); err != nil {
				return "", err
			}
			continue
		}
		if isSpace(b) {
			if len(buf) == 0 {
				continue
			}
			return string(buf), nil
		}
		buf = append(buf, b)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	var n int
	for _, c := range []byte(tok) {
		if c < '0' || c > '9' {
			return 0, errors.Wrapf(comperr.ErrFormat, "ppm: malformed integer %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func skipLine(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
