package rep

// hashPrime is the polynomial base used by the rolling hash.
// Multiplication is performed mod 2^32 via plain uint32 wraparound, the
// same way the pack match finders rely on uint32 wraparound for their
// multiplicative hashes (see chain.go's hash4/hash8).
const hashPrime uint32 = 153191

// rollingHash maintains a 32-bit polynomial hash over a sliding L-byte
// window. It is a pure function of the last L bytes seen; advancing it
// costs one multiply-add and one subtract per byte, so re-hashing the
// whole window on every scan position is never necessary.
type rollingHash struct {
	l      int
	primeL uint32 // hashPrime^l mod 2^32, precomputed once
}

func newRollingHash(l int) *rollingHash {
	p := uint32(1)
	for i := 0; i < l; i++ {
		p *= hashPrime
	}
	return &rollingHash{l: l, primeL: p}
}

// initial computes the hash of the L bytes read via at(pos), at(pos+1),
// ..., at(pos+l-1), by L successive update steps with byteOut=0.
func (h *rollingHash) initial(at func(int) byte, pos int) uint32 {
	var hash uint32
	for i := 0; i < h.l; i++ {
		hash = h.update(hash, 0, at(pos+i))
	}
	return hash
}

// update advances the hash by one byte: hash*PRIME + byteIn - byteOut*PRIME^L.
func (h *rollingHash) update(hash uint32, byteOut, byteIn byte) uint32 {
	return hash*hashPrime + uint32(byteIn) - uint32(byteOut)*h.primeL
}
