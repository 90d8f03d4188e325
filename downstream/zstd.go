package downstream

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoder adapts *zstd.Encoder to the Encoder interface.
type zstdEncoder struct {
	enc *zstd.Encoder
}

// NewZstd returns a Factory that chains REP's output through a zstd
// encoder at the given compression level, the strong-entropy-coder end
// of the chaining spectrum described in SPEC_FULL.md's DOMAIN STACK
// section.
func NewZstd(level zstd.EncoderLevel) Factory {
	return func(dst io.Writer) Encoder {
		enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(level))
		if err != nil {
			// zstd.NewWriter only fails on invalid options; the
			// options above are always valid, so this path is
			// unreachable in practice. Surface it through a writer
			// that returns the error on first use rather than
			// swallowing it.
			return &errEncoder{err: err}
		}
		return &zstdEncoder{enc: enc}
	}
}

func (z *zstdEncoder) Write(p []byte) (int, error) { return z.enc.Write(p) }
func (z *zstdEncoder) Close() error                { return z.enc.Close() }

// errEncoder reports a construction error on first use instead of
// panicking during Factory construction.
type errEncoder struct{ err error }

func (e *errEncoder) Write([]byte) (int, error) { return 0, e.err }
func (e *errEncoder) Close() error              { return e.err }
