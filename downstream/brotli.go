package downstream

import (
	"io"

	"github.com/andybalholm/brotli"
)

// brotliEncoder adapts *brotli.Writer to the Encoder interface.
type brotliEncoder struct {
	w *brotli.Writer
}

// NewBrotli returns a Factory chaining REP's output through a brotli
// encoder at the given quality level. brotli.NewWriterLevel has the
// same plain io.Writer-in, io.WriteCloser-out shape as zstd, snappy,
// and lz4's writers, so it slots into the same downstream chain they
// do.
func NewBrotli(level int) Factory {
	return func(dst io.Writer) Encoder {
		return &brotliEncoder{w: brotli.NewWriterLevel(dst, level)}
	}
}

func (b *brotliEncoder) Write(p []byte) (int, error) { return b.w.Write(p) }
func (b *brotliEncoder) Close() error                { return b.w.Close() }
