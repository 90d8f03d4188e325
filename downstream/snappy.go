package downstream

import (
	"io"

	"github.com/golang/snappy"
)

// snappyEncoder adapts snappy's chunked writer to the Encoder
// interface. Grounded in the teacher's own snappy/encode.go, which
// frames output as a sequence of checksummed chunks; golang/snappy's
// NewBufferedWriter does the same for a real stream, which is why it
// is the low-latency downstream choice over zstd.
type snappyEncoder struct {
	w *snappy.Writer
}

// NewSnappy returns a Factory chaining REP's output through a
// buffered snappy writer, for callers who want REP's long-range dedup
// with a cheap, fast downstream stage rather than zstd's stronger but
// slower entropy coding.
func NewSnappy() Factory {
	return func(dst io.Writer) Encoder {
		return &snappyEncoder{w: snappy.NewBufferedWriter(dst)}
	}
}

func (s *snappyEncoder) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *snappyEncoder) Close() error                { return s.w.Close() }
