package sfnt

import "github.com/mutype/mutt/internal/ttfbin"

// tableChecksum sums b as a stream of big-endian uint32 words, wrapping
// modulo 2^32. If len(b) is not a multiple of 4, the final partial word is
// treated as if zero-padded on the right.
func tableChecksum(b []byte) uint32 {
	var sum uint32
	n := len(b) &^ 3
	for i := 0; i < n; i += 4 {
		sum += ttfbin.U32(b[i:])
	}
	if tail := b[n:]; len(tail) > 0 {
		var word [4]byte
		copy(word[:], tail)
		sum += ttfbin.U32(word[:])
	}
	return sum
}
