package rep

import "io"

// Writer is an io.WriteCloser that compresses to w, in the style of
// every subpackage of the teacher's compression toolkit
// (flate.NewWriter, lz4's frame writer): callers use it exactly like
// any other io.Writer instead of reaching for the lower-level
// Compress entry point directly.
//
// Writes pass through an internal synchronous (unbuffered) pipe and
// are compressed by a background goroutine running Compress, which bridges the push-style
// io.Writer API to Compress's pull-style io.Reader driver.
type Writer struct {
	pw   *io.PipeWriter
	done chan error
}

// NewWriter returns a Writer that compresses data written to it and
// writes the framed REP stream to dst.
func NewWriter(dst io.Writer, p Params) *Writer {
	pr, pw := io.Pipe()
	done := make(chan error, 1)
	go func() {
		done <- Compress(dst, pr, p)
	}()
	return &Writer{pw: pw, done: done}
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.pw.Write(p)
}

// Close finishes the stream and waits for the encoder to flush its
// final block and EOF sentinel.
func (w *Writer) Close() error {
	if err := w.pw.Close(); err != nil {
		return err
	}
	return <-w.done
}

// Reader is an io.Reader that decompresses a REP stream read from src.
type Reader struct {
	pr   *io.PipeReader
	done chan error
}

// NewReader returns a Reader that decompresses src.
func NewReader(src io.Reader) *Reader {
	pr, pw := io.Pipe()
	done := make(chan error, 1)
	go func() {
		err := Decompress(pw, src)
		pw.CloseWithError(err)
		done <- err
	}()
	return &Reader{pr: pr, done: done}
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.pr.Read(p)
}

// Close releases the Reader's background goroutine. It should be
// called if the caller stops reading before reaching EOF.
func (r *Reader) Close() error {
	return r.pr.Close()
}
