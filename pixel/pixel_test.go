package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImageNormalizesToRGB(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{R: 250, G: 128, B: 1, A: 255})

	buf := FromImage(src)
	require.Equal(t, 3, buf.Width())
	require.Equal(t, 2, buf.Height())

	r, g, b := buf.RGBAt(0, 0)
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})
	r, g, b = buf.RGBAt(2, 1)
	assert.Equal(t, [3]uint8{250, 128, 1}, [3]uint8{r, g, b})
}

func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 1, color.Gray{Y: 77})

	buf := FromImage(src)
	r, g, b := buf.RGBAt(1, 1)
	assert.Equal(t, uint8(77), r)
	assert.Equal(t, uint8(77), g)
	assert.Equal(t, uint8(77), b)
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(5, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	buf := FromImage(src)
	require.Equal(t, 3, buf.Width())
	require.Equal(t, 2, buf.Height())
	r, g, b := buf.RGBAt(0, 0)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, b})
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 300, New(10, 10).Capacity())
	assert.Equal(t, 3, New(1, 1).Capacity())
	assert.Equal(t, 0, New(0, 0).Capacity())
}

func TestCloneIsIndependent(t *testing.T) {
	buf := New(2, 2)
	buf.SetRGB(0, 0, 1, 2, 3)

	cp := buf.Clone()
	cp.SetRGB(0, 0, 9, 9, 9)

	r, g, b := buf.RGBAt(0, 0)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, b})
}

func TestChannelScanOrder(t *testing.T) {
	buf := New(2, 1)
	buf.SetRGB(0, 0, 1, 2, 3)
	buf.SetRGB(1, 0, 4, 5, 6)

	// row-major pixels, R then G then B within each pixel
	for i, exp := range []uint8{1, 2, 3, 4, 5, 6} {
		assert.Equal(t, exp, buf.ChannelAt(i))
	}
}

func TestImageRoundTrip(t *testing.T) {
	buf := New(4, 3)
	buf.SetRGB(3, 2, 200, 100, 50)

	got := FromImage(buf.Image())
	require.Equal(t, buf.Channels(), got.Channels())
	for i := range buf.Channels() {
		assert.Equal(t, buf.ChannelAt(i), got.ChannelAt(i), "channel %d", i)
	}
}
