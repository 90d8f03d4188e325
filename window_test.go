package rep

import (
	"bytes"
	"testing"
)

func TestRingWriteAndAtRoundTrip(t *testing.T) {
	r, err := newRing(16)
	if err != nil {
		t.Fatalf("newRing: %v", err)
	}
	r.write(0, []byte("0123456789abcdef"))
	for i := 0; i < 16; i++ {
		if got := r.at(i); got != "0123456789abcdef"[i] {
			t.Fatalf("at(%d) = %q, want %q", i, got, "0123456789abcdef"[i])
		}
	}
}

func TestRingWriteWrapsAround(t *testing.T) {
	r, err := newRing(8)
	if err != nil {
		t.Fatalf("newRing: %v", err)
	}
	r.write(0, []byte("ABCDEFGH"))
	// Writing at position 6 with 4 bytes wraps: physical slots 6,7,0,1.
	r.write(6, []byte("XYZW"))

	want := []byte{'Z', 'W', 'C', 'D', 'E', 'F', 'X', 'Y'}
	for i, w := range want {
		if got := r.at(i); got != w {
			t.Fatalf("at(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestRingAppendToContiguous(t *testing.T) {
	r, err := newRing(16)
	if err != nil {
		t.Fatalf("newRing: %v", err)
	}
	r.write(0, []byte("0123456789abcdef"))
	got := r.appendTo(nil, 2, 5)
	if !bytes.Equal(got, []byte("23456")) {
		t.Fatalf("appendTo = %q, want %q", got, "23456")
	}
}

func TestRingAppendToWrapsAround(t *testing.T) {
	r, err := newRing(8)
	if err != nil {
		t.Fatalf("newRing: %v", err)
	}
	r.write(0, []byte("ABCDEFGH"))
	// Logical position 6, length 4, wraps past the 8-byte boundary.
	got := r.appendTo(nil, 6, 4)
	if !bytes.Equal(got, []byte("GHAB")) {
		t.Fatalf("appendTo across wrap = %q, want %q", got, "GHAB")
	}
}

func TestRingAppendToZeroLength(t *testing.T) {
	r, err := newRing(8)
	if err != nil {
		t.Fatalf("newRing: %v", err)
	}
	r.write(0, []byte("ABCDEFGH"))
	dst := []byte("prefix-")
	got := r.appendTo(dst, 3, 0)
	if !bytes.Equal(got, dst) {
		t.Fatalf("appendTo with n=0 modified dst: got %q, want %q", got, dst)
	}
}

func TestNewRingRejectsOversizedAllocation(t *testing.T) {
	failing := allocator{
		allocBytes:  func(int) ([]byte, bool) { return nil, false },
		allocUint32: defaultAllocator.allocUint32,
	}
	var err error
	withAllocator(failing, func() {
		_, err = newRing(1024)
	})
	if err != ErrOutOfMemory {
		t.Fatalf("got %v, want ErrOutOfMemory", err)
	}
}
