// Package lsb reads and writes bitstreams in the least-significant bits of
// a pixel buffer's channels. Channels are visited in row-major pixel order,
// R then G then B within a pixel, which is the buffer's flat index order.
package lsb

import (
	"github.com/yyyoichi/steglsb/internal/bitconv"
	"github.com/yyyoichi/steglsb/pixel"
)

// Write returns a copy of cover with the LSB of each channel replaced by
// the corresponding bit of bits. Channels beyond the end of bits keep the
// cover values byte-identical. The cover is never modified.
//
// Callers must ensure len(bits) <= cover.Capacity().
func Write(cover *pixel.Buffer, bits []bool) *pixel.Buffer {
	stego := cover.Clone()
	n := min(len(bits), stego.Channels())
	for i := 0; i < n; i++ {
		v := stego.ChannelAt(i) & 0xFE
		if bits[i] {
			v |= 1
		}
		stego.SetChannelAt(i, v)
	}
	return stego
}

// Read extracts channel LSBs in scan order until the accumulated bits end
// with term, then stops without visiting the rest of the image. The
// returned bits include the matched terminator. If the scan exhausts the
// image without a match, Read returns every extracted bit and false.
func Read(stego *pixel.Buffer, term []bool) (bits []bool, found bool) {
	bits = make([]bool, 0, stego.Channels())
	for i := range stego.Channels() {
		bits = append(bits, stego.ChannelAt(i)&1 == 1)
		if bitconv.HasSuffix(bits, term) {
			return bits, true
		}
	}
	return bits, false
}
