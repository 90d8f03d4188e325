package rep

// findMatches scans indexable anchor positions from lastI while
// i+2L < streamPos, looking for duplicated regions at least L bytes
// long. It alternates between a dense probe window of `test`
// consecutive positions and a skip region, up to the next L-aligned
// position, where the hash is rolled one byte at a time but nothing is
// probed; every k-aligned position in either region is indexed. About
// test/L of positions get probed and 1/k get indexed, trading recall
// for the CPU saved by not probing every byte.
func (e *encoder) findMatches() {
	if !e.hashReady {
		if e.lastI+e.d.l <= e.streamPos {
			e.hash = e.rh.initial(e.buf.at, e.lastI)
			e.hashReady = true
		}
	}

	i := e.lastI
	limit := func() bool { return i+2*e.d.l < e.streamPos }

	for limit() {
		windowEnd := i + e.d.test
		for ; i < windowEnd && limit(); i++ {
			if i >= e.lastMatch {
				e.tryMatchAt(i)
			}
			if i%e.d.k == 0 {
				e.ht.insert(e.hash, i)
			}
			e.rollOneByte(i)
		}
		for i%e.d.l != 0 && limit() {
			if i%e.d.k == 0 {
				e.ht.insert(e.hash, i)
			}
			e.rollOneByte(i)
			i++
		}
	}

	e.lastI = i
	e.appendTrailingLiteral()
}

// rollOneByte advances e.hash from covering [i, i+L) to [i+1, i+L+1).
func (e *encoder) rollOneByte(i int) {
	e.hash = e.rh.update(e.hash, e.buf.at(i), e.buf.at(i+e.d.l))
}

// tryMatchAt probes the hash table at i, verifies the checksum,
// extends the candidate in both directions, and emits it if it meets
// the required length for its distance.
func (e *encoder) tryMatchAt(i int) {
	m, ok := e.ht.probe(e.hash)
	if !ok {
		return
	}
	oldest := maxInt(0, e.streamPos-e.p.BlockSize) // oldest position still resident in the ring
	if m >= i || m < oldest {
		// Rejects both a nonsensical forward reference and a
		// candidate whose physical slot has already been
		// overwritten by more recent data.
		return
	}
	dist := i - m

	start, mStart := i, m
	for start > e.lastMatch && mStart > oldest && e.buf.at(start-1) == e.buf.at(mStart-1) {
		start--
		mStart--
	}

	end, mEnd := i, m
	for end < e.streamPos && e.buf.at(end) == e.buf.at(mEnd) {
		end++
		mEnd++
	}

	required := e.p.SmallestLen
	if dist < e.p.Barrier {
		required = e.p.MinLen
	}
	if end-start < required {
		return
	}

	e.lens = append(e.lens, uint32(end-start))
	e.offsets = append(e.offsets, uint32(dist))
	e.datalens = append(e.datalens, uint32(start-e.lastMatch))
	e.dataOffsets = append(e.dataOffsets, e.lastMatch)
	e.lastMatch = end
}

// appendTrailingLiteral closes out a scan cycle by recording the run
// of bytes between lastMatch and lastI that were scanned but never
// covered by a match, keeping datalens aligned at num+1 entries.
func (e *encoder) appendTrailingLiteral() {
	n := e.lastI - e.lastMatch
	if n < 0 {
		n = 0
	}
	e.datalens = append(e.datalens, uint32(n))
	e.dataOffsets = append(e.dataOffsets, e.lastMatch)
	if e.lastMatch < e.lastI {
		e.lastMatch = e.lastI
	}
}
