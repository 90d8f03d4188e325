package rep

import (
	"bytes"
	"testing"
)

// FuzzRoundTrip feeds arbitrary byte strings through Compress then
// Decompress and checks that the result matches the input exactly,
// with a small block size chosen so even short fuzz inputs exercise
// the ring's wrap-around addressing and the decoder's self-overlap
// copy.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add(bytes.Repeat([]byte("ab"), 100))
	f.Add(bytes.Repeat([]byte{0}, 1000))
	f.Add([]byte("the quick brown fox jumps over the lazy dog"))

	p := Params{BlockSize: 256, MinLen: 8, SmallestLen: 4, Barrier: 32}

	f.Fuzz(func(t *testing.T, data []byte) {
		var compressed bytes.Buffer
		if err := Compress(&compressed, bytes.NewReader(data), p); err != nil {
			t.Fatalf("Compress: %v", err)
		}
		var out bytes.Buffer
		if err := Decompress(&out, bytes.NewReader(compressed.Bytes())); err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(out.Bytes(), data) {
			t.Fatalf("round trip mismatch: input %d bytes, output %d bytes", len(data), out.Len())
		}
	})
}

// FuzzDecompressNeverPanics checks that feeding arbitrary bytes (not
// necessarily a valid stream) into Decompress either succeeds or
// returns an error, but never panics — the decoder's only contract
// with untrusted input is ErrCorrupt/ErrOutOfMemory/CallbackError.
func FuzzDecompressNeverPanics(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 0})
	f.Add(bytes.Repeat([]byte{0xFF}, 32))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Decompress panicked on input %x: %v", data, r)
			}
		}()
		_ = Decompress(bytes.NewBuffer(nil), bytes.NewReader(data))
	})
}
