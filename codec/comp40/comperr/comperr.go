// Package comperr defines the sentinel error values shared across the
// comp40 codec packages so that callers can recover a specific failure
// kind with errors.Is/errors.Cause regardless of which stage wrapped it.
package comperr

import "errors"

// ErrOverflow is returned by bitpack's setters when a value does not fit
// within its destination field width.
var ErrOverflow = errors.New("comp40: value does not fit in field")

// ErrFormat is returned when a PPM or compressed-container stream is
// malformed: a bad header, a truncated payload, or an inconsistent
// declared size.
var ErrFormat = errors.New("comp40: malformed input")

// ErrUsage identifies bad flags or too many positional arguments. The
// cmd/40image shell does not return it: it prints a usage message and
// exits with status 1.
var ErrUsage = errors.New("comp40: invalid command line usage")
