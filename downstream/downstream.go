// Package downstream adapts REP's output to feed a second, stronger
// compression stage: REP is meant to run as a long-range preprocessor
// in front of a heavier general-purpose compressor, not as a complete
// codec on its own.
//
// This mirrors the teacher's own shape (flate/writer.go's
// pack.Writer composing a MatchFinder with an Encoder) one level up:
// here the two stages being composed are REP itself and a whole
// second codec, so the seam is an io.WriteCloser rather than a
// pack.Encoder.
package downstream

import "io"

// Encoder wraps an io.Writer with a second compression stage. Callers
// chain it after rep.NewWriter (or feed rep.Compress's output through
// one) to get REP's long-range dedup followed by a general-purpose
// entropy/statistical coder.
type Encoder interface {
	io.WriteCloser
}

// Factory constructs an Encoder around dst. Each concrete downstream
// package (zstd, snappy, lz4) exposes one, so the caller can select a
// stage without importing the concrete type directly.
type Factory func(dst io.Writer) Encoder
