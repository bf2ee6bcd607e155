// Package pixel provides the RGB pixel buffer the steganography codec
// operates on. Buffers are always 3-channel, 8-bit; color-model
// normalization happens once at construction.
package pixel

import (
	"image"
	"image/color"
)

// Buffer is a width x height grid of RGB pixels stored as a flat slice of
// channel values in row-major order, R then G then B within a pixel.
type Buffer struct {
	width, height int
	pix           []uint8
}

func New(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// FromImage converts any image to an 8-bit RGB buffer.
// Alpha is dropped; 16-bit channels are reduced to their high byte.
func FromImage(src image.Image) *Buffer {
	bounds := src.Bounds()
	b := New(bounds.Dx(), bounds.Dy())
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			b.pix[idx] = uint8(r >> 8)
			b.pix[idx+1] = uint8(g >> 8)
			b.pix[idx+2] = uint8(bl >> 8)
			idx += 3
		}
	}
	return b
}

// Image builds a new NRGBA image from the buffer with full alpha.
func (b *Buffer) Image() image.Image {
	dist := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	idx := 0
	for y := range b.height {
		for x := range b.width {
			dist.SetNRGBA(x, y, color.NRGBA{
				R: b.pix[idx],
				G: b.pix[idx+1],
				B: b.pix[idx+2],
				A: 0xff,
			})
			idx += 3
		}
	}
	return dist
}

// Clone returns a deep copy. The codec never mutates an input buffer;
// embedding clones the cover and writes into the copy.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Channels returns the number of channel values in the buffer,
// which is also its embedding capacity in bits (one bit per channel).
func (b *Buffer) Channels() int { return len(b.pix) }

// Capacity returns the maximum number of bits embeddable in the buffer.
func (b *Buffer) Capacity() int { return len(b.pix) }

// ChannelAt returns the channel value at flat index i, walking the
// canonical scan order.
func (b *Buffer) ChannelAt(i int) uint8 { return b.pix[i] }

func (b *Buffer) SetChannelAt(i int, v uint8) { b.pix[i] = v }

// RGBAt returns the pixel at (x, y).
func (b *Buffer) RGBAt(x, y int) (r, g, bl uint8) {
	i := (y*b.width + x) * 3
	return b.pix[i], b.pix[i+1], b.pix[i+2]
}

func (b *Buffer) SetRGB(x, y int, r, g, bl uint8) {
	i := (y*b.width + x) * 3
	b.pix[i], b.pix[i+1], b.pix[i+2] = r, g, bl
}
