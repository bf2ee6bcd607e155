package msg

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
	"github.com/yyyoichi/steglsb/internal/bitconv"
)

var _ strategy = (*withoutecc)(nil)

type withoutecc struct{}

func (we withoutecc) encode(data []uint64, size int) ([]uint64, int) {
	return data, size
}

func (we withoutecc) decode(bits []bool) ([]byte, int) {
	return bitconv.BoolsToBytes(bits)
}

var _ strategy = (*shuffledgolay)(nil)

// shuffledgolay applies Golay error correction to the message bits and
// deterministically shuffles the encoded bits so that localized damage
// spreads across code words. The value is the shuffle seed.
//
// Golay pads its input to codeword boundaries, so the exact message bit
// length travels as a fixed-width header inside the protected payload;
// decode reads it back instead of inferring the length from the encoded
// size, which is ambiguous.
type shuffledgolay int64

// headerBits is the width of the message-bit-length header.
const headerBits = 32

func (sg shuffledgolay) encode(data []uint64, size int) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := headerBits - 8; i >= 0; i -= 8 {
		w.Write8(0, 8, uint8(uint32(size)>>i))
	}
	r := bitstream.NewBitReader(data, 0, 0)
	for i := range size {
		bit, _ := r.ReadBitAt(i)
		w.WriteBool(bit)
	}

	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), w.Bits())
	encodedLen := enc.Bits()

	index := sg.generatePermutation(encodedLen)
	er := bitstream.NewBitReader(encoded, 0, 0)
	ew := bitstream.NewBitWriter[uint64](0, 0)
	for i := range encodedLen {
		bit, _ := er.ReadBitAt(index[i])
		ew.WriteBitAt(i, bit)
	}
	return ew.Data(), encodedLen
}

func (sg shuffledgolay) decode(bits []bool) ([]byte, int) {
	if len(bits) == 0 {
		return nil, 0
	}

	// reverse shuffle: same permutation, applied inversely
	index := sg.generatePermutation(len(bits))
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	r := bitstream.NewBitReader(decoded, 0, 0)
	var size uint32
	for i := range headerBits {
		bit, err := r.ReadBitAt(i)
		if err != nil {
			return nil, len(bits)
		}
		if bit {
			size |= 1 << (headerBits - 1 - i)
		}
	}
	// a header pointing past the decoded data means the input was not a
	// payload produced by encode (or is damaged beyond correction)
	if int(size) > len(decoded)*64-headerBits {
		return nil, len(bits)
	}

	out := make([]bool, size)
	for i := range out {
		out[i], _ = r.ReadBitAt(headerBits + i)
	}
	return bitconv.BoolsToBytes(out)
}

func (sg shuffledgolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(sg)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
