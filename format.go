package rep

import (
	"encoding/binary"
	"io"
)

// Block framing is little-endian 32-bit words throughout, with byte
// arrays inline. The pack's own subpackages never reach for a
// serialization framework for wire framing either — snappy/encode.go and
// lz4/block.go both place header fields with raw byte arithmetic
// (`byte(checksum), byte(checksum>>8), ...`) — so REP's framing follows
// the same manual encoding/binary style, just with whole u32 words
// instead of snappy's mixed varint/fixed layout.

func appendU32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func writeU32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func readU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// readU32Array decodes n consecutive little-endian u32 words from buf.
func readU32Array(buf []byte, n int) []uint32 {
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return out
}
