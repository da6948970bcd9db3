/*
DESCRIPTION
  40image is the comp40 codec's command-line filter. It reads one PPM
  image (compress mode) or one comp40 compressed image (decompress
  mode) from a file or standard input, and writes the transformed image
  to standard output.

AUTHOR
  Kabir Pamnani
*/

// Command 40image compresses a PPM image to the comp40 format, or
// decompresses a comp40 image back to PPM.
package main

import (
	"fmt"
	"os"

	"github.com/ausocean/utils/logging"

	"github.com/kabirgpamnani/compress-or-decompress/codec/comp40"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -c [filename]\n       %s -d [filename]\n", os.Args[0], os.Args[0])
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "%s: panic: %v\n", os.Args[0], r)
			os.Exit(1)
		}
	}()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run implements the CLI so that it can be exercised by tests without
// touching the process's real stdin/stdout/exit status.
func run(args []string, stdin *os.File, stdout *os.File) int {
	log := logging.New(logging.Debug, os.Stderr, true)
	comp40.Log = log

	decompress := false
	var file string
	haveFile := false

	for _, arg := range args {
		switch {
		case arg == "-c":
			decompress = false
		case arg == "-d":
			decompress = true
		case len(arg) > 0 && arg[0] == '-':
			fmt.Fprintf(os.Stderr, "%s: unknown option %q\n", os.Args[0], arg)
			usage()
			return 1
		default:
			if haveFile {
				usage()
				return 1
			}
			file = arg
			haveFile = true
		}
	}

	var input *os.File
	if haveFile {
		f, err := os.Open(file)
		if err != nil {
			log.Error("could not open input file", "file", file, "error", err)
			return 1
		}
		defer f.Close()
		input = f
	} else {
		input = stdin
	}

	var err error
	if decompress {
		err = comp40.Decompress(input, stdout)
	} else {
		err = comp40.Compress(input, stdout)
	}
	if err != nil {
		log.Error("comp40 failed", "error", err)
		return 1
	}
	return 0
}
