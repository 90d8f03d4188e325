package rep

import (
	"bytes"
	"testing"
)

// newTestEncoder builds an encoder with small, easy-to-reason-about
// derived parameters for directly exercising findMatches/tryMatchAt
// without going through the full Compress driver.
func newTestEncoder(t *testing.T, p Params) *encoder {
	t.Helper()
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		t.Fatalf("invalid params: %v", err)
	}
	d := deriveParams(p)
	e, err := newEncoder(p, d)
	if err != nil {
		t.Fatalf("newEncoder: %v", err)
	}
	return e
}

// feed writes data into the encoder's ring and advances streamPos,
// bypassing the io.Reader-driven fill loop.
func feed(e *encoder, data []byte) {
	e.buf.write(e.streamPos, data)
	e.streamPos += len(data)
}

func TestFindMatchesFindsExactRepeat(t *testing.T) {
	p := Params{BlockSize: 1 << 16, MinLen: 32, SmallestLen: 16, Barrier: 1 << 10}
	e := newTestEncoder(t, p)

	unit := bytes.Repeat([]byte("repeat-this-unit!"), 4) // 68 bytes, > SmallestLen
	data := append(append([]byte{}, unit...), unit...)
	data = append(data, bytes.Repeat([]byte{'.'}, 256)...) // keep the finder's lookahead fed

	feed(e, data)
	e.findMatches()

	if len(e.lens) == 0 {
		t.Fatal("expected at least one match, found none")
	}
	total := 0
	for i, l := range e.lens {
		total += int(l)
		if e.offsets[i] == 0 {
			t.Fatalf("match %d has zero offset", i)
		}
	}
	if total < len(unit) {
		t.Fatalf("matched total length %d shorter than the repeated unit (%d)", total, len(unit))
	}
}

func TestFindMatchesNoMatchOnAllUniqueBytes(t *testing.T) {
	p := Params{BlockSize: 1 << 16, MinLen: 32, SmallestLen: 16, Barrier: 1 << 10}
	e := newTestEncoder(t, p)

	data := make([]byte, 251)
	for i := range data {
		data[i] = byte(i) // every byte distinct, so no L-byte window repeats
	}
	feed(e, data)
	e.findMatches()

	if len(e.lens) != 0 {
		t.Fatalf("expected no matches on unique data, found %d", len(e.lens))
	}
}

func TestTryMatchAtRejectsForwardReference(t *testing.T) {
	p := Params{BlockSize: 1 << 16, MinLen: 32, SmallestLen: 16, Barrier: 1 << 10}
	e := newTestEncoder(t, p)
	data := bytes.Repeat([]byte{'z'}, 512)
	feed(e, data)

	// Manually insert a hash entry pointing forward of the probe
	// position; tryMatchAt must reject it rather than emit a
	// nonsensical non-causal match.
	e.hash = e.rh.initial(e.buf.at, 0)
	e.ht.insert(e.hash, 100)
	before := len(e.lens)
	e.tryMatchAt(10)
	if len(e.lens) != before {
		t.Fatal("tryMatchAt accepted a forward (non-causal) reference")
	}
}

func TestAppendTrailingLiteralKeepsDatalensAligned(t *testing.T) {
	p := Params{BlockSize: 1 << 16, MinLen: 32, SmallestLen: 16, Barrier: 1 << 10}
	e := newTestEncoder(t, p)
	data := make([]byte, 512)
	for i := range data {
		data[i] = byte(i % 251)
	}
	feed(e, data)
	e.findMatches()

	if len(e.datalens) != len(e.lens)+1 {
		t.Fatalf("datalens has %d entries, want lens+1 = %d", len(e.datalens), len(e.lens)+1)
	}
	if len(e.dataOffsets) != len(e.datalens) {
		t.Fatalf("dataOffsets has %d entries, want %d", len(e.dataOffsets), len(e.datalens))
	}
}
