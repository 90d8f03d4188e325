package rep

import "fmt"

// Params holds the tunable configuration of a compression stream. All
// fields are fixed for the duration of a stream; the decoder rediscovers
// only BlockSize, reading it from the stream header.
//
// Fields are validated and defaulted the way the pack match finders
// default their own tunables (see HashChain.FindMatches): zero values
// fall back to sane defaults instead of being rejected outright.
type Params struct {
	// BlockSize is the size of the working buffer, and therefore the
	// maximum match distance.
	BlockSize int

	// MinCompression is advisory only; the encoder stores it but never
	// consults it to suppress an incompressible block (see DESIGN.md,
	// Open Question 1).
	MinCompression int

	// MinLen is the minimum match length when the distance is within
	// Barrier.
	MinLen int

	// SmallestLen is the minimum match length beyond Barrier.
	// SmallestLen must be <= MinLen.
	SmallestLen int

	// Barrier is the distance threshold switching the minimum required
	// match length from MinLen to SmallestLen.
	Barrier int

	// HashBits forces the hash table size to 2^HashBits when > 0;
	// otherwise the table is auto-sized from BlockSize.
	HashBits int

	// Amplifier multiplies the number of probe positions examined near
	// each anchor, trading search time for recall.
	Amplifier int
}

// DefaultParams returns a Params with reasonable defaults for a
// general-purpose long-range preprocessor.
func DefaultParams() Params {
	return Params{
		BlockSize:   1 << 20,
		MinLen:      128,
		SmallestLen: 32,
		Barrier:     1 << 16,
		Amplifier:   4,
	}
}

func (p Params) withDefaults() Params {
	if p.BlockSize == 0 {
		p.BlockSize = 1 << 20
	}
	if p.MinLen == 0 {
		p.MinLen = 128
	}
	if p.SmallestLen == 0 {
		p.SmallestLen = p.MinLen
	}
	if p.Barrier == 0 {
		p.Barrier = p.BlockSize
	}
	if p.Amplifier == 0 {
		p.Amplifier = 1
	}
	return p
}

func (p Params) validate() error {
	if p.BlockSize < 2 {
		return fmt.Errorf("rep: block_size must be >= 2, got %d", p.BlockSize)
	}
	if p.SmallestLen <= 0 {
		return fmt.Errorf("rep: smallest_len must be > 0, got %d", p.SmallestLen)
	}
	if p.SmallestLen > p.MinLen {
		return fmt.Errorf("rep: smallest_len (%d) must be <= min_len (%d)", p.SmallestLen, p.MinLen)
	}
	if p.Amplifier < 1 {
		return fmt.Errorf("rep: amplifier must be >= 1, got %d", p.Amplifier)
	}
	if p.HashBits < 0 {
		return fmt.Errorf("rep: hash_bits must be >= 0, got %d", p.HashBits)
	}
	if p.HashBits > 30 {
		return fmt.Errorf("rep: hash_bits too large: %d", p.HashBits)
	}
	return nil
}

// derived holds the parameters computed from Params.
type derived struct {
	l        int    // rolling-hash window width
	k        int    // sub-sampling factor
	kMask    uint32 // k - 1, also the packed-checksum mask
	test     int    // probe density: min(k*Amplifier, L)
	hashSize int
}

func deriveParams(p Params) derived {
	l := nextPow2(maxInt(1, (p.SmallestLen+1)/2))

	kFloor := isqrt(2 * l)
	k := nextPow2(maxInt(1, kFloor))

	test := minInt(k*p.Amplifier, l)

	var hashSize int
	if p.HashBits > 0 {
		hashSize = 1 << p.HashBits
	} else {
		denom := maxInt(k, 16)
		hashSize = nextPow2(maxInt(1, (p.BlockSize*2/3)/denom))
	}

	return derived{
		l:        l,
		k:        k,
		kMask:    uint32(k - 1),
		test:     maxInt(1, test),
		hashSize: hashSize,
	}
}

// isqrt returns floor(sqrt(n)) for n >= 0, using integer Newton's method
// so derivation stays free of floating point.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
