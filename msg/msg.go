// Package msg converts text messages to and from bitstreams.
//
// Each character is emitted as its 8-bit code point, most significant bit
// first. Only single-byte code points (ISO 8859-1, U+0000 to U+00FF) are
// representable; wider runes are an encoding error. An error correction
// strategy can optionally be layered on the bits, selected by options.
// Both ends of a channel must agree on the strategy and seed.
package msg

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/bitstream-go"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrEncoding is returned when a message contains a character whose
	// code point does not fit in a single byte.
	ErrEncoding = errors.New("message contains a character outside the single-byte range")
)

// Encode converts text into a bitstream and applies the configured
// error correction strategy.
func Encode(text string, opts ...Option) ([]bool, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range raw {
		w.Write8(0, 8, v)
	}
	cf := newFactory(opts)
	data, size := cf.f.encode(w.Data(), w.Bits())

	r := bitstream.NewBitReader(data, 0, 0)
	bits := make([]bool, size)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits, nil
}

// Decode reverses Encode. Trailing bits that do not form a complete byte
// are discarded and counted in dropped; decoding itself never fails
// (every byte value is a valid ISO 8859-1 character).
func Decode(bits []bool, opts ...Option) (text string, dropped int) {
	cf := newFactory(opts)
	raw, dropped := cf.f.decode(bits)
	// every byte decodes in ISO 8859-1
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(out), dropped
}
