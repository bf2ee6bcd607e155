// Package bitconv converts between byte slices and bit slices and locates
// terminator patterns inside bitstreams. Bits are MSB-first within each byte.
package bitconv

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((bb>>uint(i))&1) == 1)
		}
	}
	return bits
}

// BoolsToBytes packs bits into bytes, MSB-first. Trailing bits that do not
// form a complete byte are discarded; dropped reports how many.
func BoolsToBytes(bits []bool) (out []byte, dropped int) {
	n := len(bits) / 8
	dropped = len(bits) - n*8
	out = make([]byte, n)
	for i := range out {
		var v byte
		for j := 0; j < 8; j++ {
			if bits[i*8+j] {
				v |= 1 << uint(7-j)
			}
		}
		out[i] = v
	}
	return out, dropped
}

// HasSuffix reports whether bits ends with pattern.
// An empty pattern never matches.
func HasSuffix(bits, pattern []bool) bool {
	if len(pattern) == 0 || len(bits) < len(pattern) {
		return false
	}
	off := len(bits) - len(pattern)
	for i, p := range pattern {
		if bits[off+i] != p {
			return false
		}
	}
	return true
}

// Cut splits bits at the first occurrence of pattern and returns everything
// before it. If pattern does not occur, Cut returns bits unchanged and false.
func Cut(bits, pattern []bool) (payload []bool, found bool) {
	if len(pattern) == 0 || len(bits) < len(pattern) {
		return bits, false
	}
	for i := 0; i+len(pattern) <= len(bits); i++ {
		if match(bits[i:i+len(pattern)], pattern) {
			return bits[:i], true
		}
	}
	return bits, false
}

func match(bits, pattern []bool) bool {
	for i, p := range pattern {
		if bits[i] != p {
			return false
		}
	}
	return true
}
