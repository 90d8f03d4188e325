package downstream

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Encoder adapts *lz4.Writer to the Encoder interface.
type lz4Encoder struct {
	w *lz4.Writer
}

// NewLZ4 returns a Factory chaining REP's output through an lz4
// frame writer with the given block size, picked to match (or evenly
// divide) REP's own BlockSize.
func NewLZ4(blockSize lz4.BlockSize) Factory {
	return func(dst io.Writer) Encoder {
		w := lz4.NewWriter(dst)
		if err := w.Apply(lz4.BlockSizeOption(blockSize)); err != nil {
			return &errEncoder{err: err}
		}
		return &lz4Encoder{w: w}
	}
}

func (l *lz4Encoder) Write(p []byte) (int, error) { return l.w.Write(p) }
func (l *lz4Encoder) Close() error                { return l.w.Close() }
