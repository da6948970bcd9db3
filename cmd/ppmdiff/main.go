/*
DESCRIPTION
  ppmdiff is a standalone quality-metric utility: given two PPM image
  files, it prints their per-channel mean squared error. It is not part
  of the comp40 codec pipeline.

AUTHOR
  Kabir Pamnani
*/

// Command ppmdiff prints the mean squared error between two PPM images.
package main

import (
	"fmt"
	"os"

	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/ppm"
	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40/ppmdiff"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s image1.ppm image2.ppm\n", os.Args[0])
		return 1
	}

	a, err := openPPM(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	b, err := openPPM(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	mse, err := ppmdiff.MeanSquaredError(a, b)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%0.6f\n", mse)
	return 0
}

func openPPM(path string) (*ppm.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ppmdiff: could not open %s: %w", path, err)
	}
	defer f.Close()
	return ppm.Read(f)
}
