package rep

import (
	"encoding/binary"
	"io"
)

// decoder reconstructs the byte stream into a two-segment output
// buffer. Splitting the logical B-byte window across up to two
// physical allocations lets a degraded-memory environment still
// decompress with only a partial allocation; when the full buffer is
// available, segment 1 is unused and addressing degrades to a plain
// single-segment ring.
//
// written counts total decompressed bytes so far and never wraps; the
// physical segment/offset for any logical position is derived from
// position mod B, the same monotonic-absolute-position convention used
// by the encoder's ring (see window.go).
type decoder struct {
	b          int
	seg0, seg1 []byte
	data0Size  int
	written    int
	flushed    int
}

func newDecoder(blockSize int) (*decoder, error) {
	if blockSize < 2 {
		return nil, ErrCorrupt
	}
	seg0, ok := tryAllocBytes(blockSize)
	if ok {
		return &decoder{b: blockSize, seg0: seg0, data0Size: blockSize}, nil
	}

	// Degraded allocation: split the window across two smaller
	// segments rather than failing outright, with segment 1 making up
	// whatever segment 0 couldn't hold.
	half := blockSize / 2
	seg0, ok = tryAllocBytes(half)
	if !ok {
		return nil, ErrOutOfMemory
	}
	seg1, ok := tryAllocBytes(blockSize - half)
	if !ok {
		return nil, ErrOutOfMemory
	}
	return &decoder{b: blockSize, seg0: seg0, seg1: seg1, data0Size: half}, nil
}

// seg resolves a logical position to its physical segment and offset.
func (d *decoder) seg(pos int) ([]byte, int) {
	p := pos % d.b
	if p < d.data0Size {
		return d.seg0, p
	}
	return d.seg1, p - d.data0Size
}

// flush writes everything buffered since the last flush to w.
func (d *decoder) flush(w io.Writer) error {
	for d.flushed < d.written {
		buf, off := d.seg(d.flushed)
		room := len(buf) - off
		n := minInt(room, d.written-d.flushed)
		if _, err := w.Write(buf[off : off+n]); err != nil {
			return callbackErr(err)
		}
		d.flushed += n
	}
	return nil
}

// writeLiteral copies lit into the output window, flushing whenever a
// segment fills up.
func (d *decoder) writeLiteral(w io.Writer, lit []byte) error {
	for len(lit) > 0 {
		buf, off := d.seg(d.written)
		room := len(buf) - off
		n := minInt(room, len(lit))
		copy(buf[off:off+n], lit[:n])
		d.written += n
		lit = lit[n:]
		if n == room {
			if err := d.flush(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// expandMatch replicates a (offset, length) LZ reference into the
// output window. When offset < length the source position enters the
// region being written by this very call, so the copy proceeds
// byte-by-byte to preserve the self-referential (RLE-like) pattern —
// the classical LZ forward-overlap copy.
func (d *decoder) expandMatch(w io.Writer, offset, length int) error {
	if length == 0 {
		return nil
	}
	if offset <= 0 || offset > d.b {
		return ErrCorrupt
	}
	if length > d.b {
		// No legitimately encoded match can exceed the window: the
		// encoder's extension loop never runs past the bytes
		// currently resident in its own B-byte ring (matcher.go's
		// tryMatchAt). A longer length can only come from a
		// corrupted stream.
		return ErrCorrupt
	}
	srcPos := d.written - offset
	if srcPos < 0 {
		return ErrCorrupt
	}

	overlap := offset < length
	remaining := length
	for remaining > 0 {
		dstBuf, dstOff := d.seg(d.written)
		dstRoom := len(dstBuf) - dstOff
		n := minInt(dstRoom, remaining)

		if overlap {
			for i := 0; i < n; i++ {
				sBuf, sOff := d.seg(srcPos)
				dstBuf[dstOff+i] = sBuf[sOff]
				srcPos++
			}
		} else {
			sBuf, sOff := d.seg(srcPos)
			sRoom := len(sBuf) - sOff
			if sRoom < n {
				n = sRoom
			}
			copy(dstBuf[dstOff:dstOff+n], sBuf[sOff:sOff+n])
			srcPos += n
		}

		d.written += n
		remaining -= n
		if dstOff+n == len(dstBuf) {
			if err := d.flush(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Decompress reads block_size from the stream header, then parses and
// applies blocks until the EOF sentinel, writing strictly in source
// order.
func Decompress(w io.Writer, r io.Reader) error {
	bs, err := readU32(r)
	if err != nil {
		return callbackErr(err)
	}
	dec, err := newDecoder(int(bs))
	if err != nil {
		return err
	}

	scratch := make([]byte, 0, minInt(int(bs), maxReadChunk)+1024)
	for {
		compSize, err := readU32(r)
		if err != nil {
			return callbackErr(err)
		}
		if compSize == 0 {
			return dec.flush(w)
		}
		if cap(scratch) < int(compSize) {
			scratch = make([]byte, compSize)
		} else {
			scratch = scratch[:compSize]
		}
		if _, err := io.ReadFull(r, scratch); err != nil {
			return callbackErr(err)
		}
		if err := dec.processBlock(w, scratch); err != nil {
			return err
		}
	}
}

// processBlock parses one block's framing in place and interleaves
// literal copies with match expansions.
func (d *decoder) processBlock(w io.Writer, buf []byte) error {
	if len(buf) < 4 {
		return ErrCorrupt
	}
	num := int(binary.LittleEndian.Uint32(buf))
	buf = buf[4:]

	need := (num*3 + 1) * 4
	if len(buf) < need {
		return ErrCorrupt
	}

	lens := readU32Array(buf, num)
	buf = buf[num*4:]
	offsets := readU32Array(buf, num)
	buf = buf[num*4:]
	datalens := readU32Array(buf, num+1)
	buf = buf[(num+1)*4:]
	literals := buf

	pos := 0
	for i := 0; i < num; i++ {
		dl := int(datalens[i])
		if pos+dl > len(literals) {
			return ErrCorrupt
		}
		if err := d.writeLiteral(w, literals[pos:pos+dl]); err != nil {
			return err
		}
		pos += dl
		if err := d.expandMatch(w, int(offsets[i]), int(lens[i])); err != nil {
			return err
		}
	}

	last := int(datalens[num])
	if pos+last > len(literals) {
		return ErrCorrupt
	}
	return d.writeLiteral(w, literals[pos:pos+last])
}
