package rep

import "io"

const maxReadChunk = 8 << 20 // 8 MiB cap on a single slide-refill read.

// encoder drives the sliding-window match finder and the block framing.
// It mirrors the orchestration shape of flate/writer.go's
// pack.Writer{Dest, MatchFinder, Encoder, BlockSize} — one driver pulls
// input, hands it to a match finder, and writes framed blocks — adapted
// to an explicit read/write callback contract (here: io.Reader and
// io.Writer, rather than a pair of C-style callback function pointers).
type encoder struct {
	p Params
	d derived

	buf *ring
	ht  *hashTable
	rh  *rollingHash

	hash      uint32
	hashReady bool

	streamPos int
	lastI     int
	lastMatch int

	scratch []byte

	lens        []uint32
	offsets     []uint32
	datalens    []uint32
	dataOffsets []int
}

func newEncoder(p Params, d derived) (*encoder, error) {
	buf, err := newRing(p.BlockSize)
	if err != nil {
		return nil, err
	}
	ht, err := newHashTable(d.hashSize, d.kMask)
	if err != nil {
		return nil, err
	}
	scratch, ok := tryAllocBytes(minInt(p.BlockSize, maxReadChunk))
	if !ok {
		return nil, ErrOutOfMemory
	}
	return &encoder{
		p:       p,
		d:       d,
		buf:     buf,
		ht:      ht,
		rh:      newRollingHash(d.l),
		scratch: scratch,
	}, nil
}

// Compress reads from r and writes a framed, compressed stream to w:
// the block_size header, then one or more framed blocks produced by
// repeatedly filling the working buffer and running the match finder
// over it, and finally the EOF sentinel.
func Compress(w io.Writer, r io.Reader, p Params) error {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return err
	}
	d := deriveParams(p)

	enc, err := newEncoder(p, d)
	if err != nil {
		return err
	}

	if err := writeU32(w, uint32(p.BlockSize)); err != nil {
		return callbackErr(err)
	}

	for {
		n, err := enc.fill(r)
		if err != nil {
			return callbackErr(err)
		}
		if n == 0 {
			return enc.finalize(w)
		}
		enc.findMatches()
		if err := enc.emitBlock(w); err != nil {
			return err
		}
	}
}

// fillTarget returns how many bytes the next read should aim for: a
// full buffer on the very first fill, or a bounded slide chunk
// thereafter, so later refills don't stall behind one giant read.
func (e *encoder) fillTarget() int {
	if e.streamPos == 0 {
		return e.p.BlockSize
	}
	return minInt(maxInt(1, e.p.BlockSize/8), maxReadChunk)
}

// fill reads up to fillTarget bytes from r into the ring, advancing
// streamPos. It returns 0 when r is exhausted (EOF).
func (e *encoder) fill(r io.Reader) (int, error) {
	target := e.fillTarget()
	got := 0
	for got < target {
		chunk := e.scratch[:minInt(len(e.scratch), target-got)]
		n, err := r.Read(chunk)
		if n > 0 {
			e.buf.write(e.streamPos+got, chunk[:n])
			got += n
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return got, err
		}
		if n == 0 {
			break
		}
	}
	e.streamPos += got
	return got, nil
}

func (e *encoder) resetStaging() {
	e.lens = e.lens[:0]
	e.offsets = e.offsets[:0]
	e.datalens = e.datalens[:0]
	e.dataOffsets = e.dataOffsets[:0]
}

// emitBlock writes one framed block and clears the staging arrays. The
// comp_size field excludes itself.
func (e *encoder) emitBlock(w io.Writer) error {
	num := len(e.lens)
	body := make([]byte, 0, 4+(num*3+1)*4)
	body = appendU32(body, uint32(num))
	for _, v := range e.lens {
		body = appendU32(body, v)
	}
	for _, v := range e.offsets {
		body = appendU32(body, v)
	}
	for _, v := range e.datalens {
		body = appendU32(body, v)
	}
	for i, off := range e.dataOffsets {
		body = e.buf.appendTo(body, off, int(e.datalens[i]))
	}

	if err := writeU32(w, uint32(len(body))); err != nil {
		return callbackErr(err)
	}
	if _, err := w.Write(body); err != nil {
		return callbackErr(err)
	}
	e.resetStaging()
	return nil
}

// finalize runs findMatches once more to open the terminal block's
// trailing literal record; with streamPos unchanged since the last
// cycle it scans no further (the match finder always stops ~2L bytes
// short of streamPos, to leave room for forward extension), so the
// last ~2L bytes are never searched for matches. It then extends that
// trailing literal run the rest of the way to streamPos so every byte
// is accounted for, and writes the terminal block plus the EOF
// sentinel.
func (e *encoder) finalize(w io.Writer) error {
	e.findMatches()
	if e.streamPos > e.lastMatch {
		remaining := e.streamPos - e.lastMatch
		if len(e.datalens) == 0 {
			e.datalens = append(e.datalens, uint32(remaining))
			e.dataOffsets = append(e.dataOffsets, e.lastMatch)
		} else {
			e.datalens[len(e.datalens)-1] = uint32(remaining)
		}
		e.lastMatch = e.streamPos
	}
	if err := e.emitBlock(w); err != nil {
		return err
	}
	return callbackErr(writeU32(w, 0))
}
