/*
DESCRIPTION
  container.go reads and writes the comp40 compressed container format:
  an ASCII header naming the trimmed image dimensions, followed by a
  big-endian stream of 32-bit code words in row-major order.

AUTHOR
  Kabir Pamnani
*/

// Package container implements the comp40 compressed-image container
// format: a text header plus a big-endian uint32 payload stream.
package container

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"

	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/comperr"
)

// headerLiteral is the fixed text preceding the width/height line of
// every compressed container.
const headerLiteral = "COMP40 Compressed image format 2"

// WriteHeader writes the container header for an image of the given
// trimmed width and height. Both must be even and at least 2.
func WriteHeader(w io.Writer, width, height int) error {
	if width%2 != 0 || height%2 != 0 || width < 2 || height < 2 {
		return errors.Wrapf(comperr.ErrFormat, "container: dimensions %dx%d must be even and >= 2", width, height)
	}
	_, err := fmt.Fprintf(w, "%s\n%d %d\n", headerLiteral, width, height)
	return errors.Wrap(err, "container: could not write header")
}

// ReadHeader parses the container header, returning the declared width
// and height.
func ReadHeader(r *bufio.Reader) (width, height int, err error) {
	literal, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, errors.Wrap(err, "container: could not read header literal")
	}
	if trimNewline(literal) != headerLiteral {
		return 0, 0, errors.Wrapf(comperr.ErrFormat, "container: unrecognized header %q", literal)
	}

	var w, h int
	if _, err := fmt.Fscanf(r, "%d %d\n", &w, &h); err != nil {
		return 0, 0, errors.Wrap(err, "container: could not read dimensions")
	}
	if w%2 != 0 || h%2 != 0 || w < 2 || h < 2 {
		return 0, 0, errors.Wrapf(comperr.ErrFormat, "container: declared dimensions %dx%d must be even and >= 2", w, h)
	}
	return w, h, nil
}

// WriteWords writes each of words as 4 bytes, most-significant byte
// first, in the order given (row-major).
func WriteWords(w io.Writer, words []uint64) error {
	bw := bitio.NewWriter(w)
	for _, word := range words {
		if err := bw.WriteBits(word, 32); err != nil {
			return errors.Wrap(err, "container: could not write code word")
		}
	}
	return errors.Wrap(bw.Close(), "container: could not flush code words")
}

// ReadWords reads exactly n 32-bit code words from the big-endian
// stream. Reaching EOF before n words are read is fatal.
func ReadWords(r io.Reader, n int) ([]uint64, error) {
	br := bitio.NewReader(r)
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		word, err := br.ReadBits(32)
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, errors.Wrapf(comperr.ErrFormat, "container: truncated payload at word %d: %v", i, err)
		}
		words[i] = word
	}
	return words, nil
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}
