package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yyyoichi/steglsb/pixel"
)

func TestIdenticalBuffers(t *testing.T) {
	buf := pixel.New(8, 8)
	assert.Zero(t, MSE(buf, buf.Clone()))
	assert.True(t, math.IsInf(PSNR(buf, buf.Clone()), 1))
}

func TestSingleChannelDelta(t *testing.T) {
	cover := pixel.New(2, 2)
	stego := cover.Clone()
	stego.SetChannelAt(0, 1)

	// one channel off by one over 12 channels
	assert.InDelta(t, 1.0/12.0, MSE(cover, stego), 1e-9)
}

func TestLSBEmbeddingStaysAboveVisibility(t *testing.T) {
	cover := pixel.New(10, 10)
	stego := cover.Clone()
	// worst case: every LSB flipped
	for i := range stego.Channels() {
		stego.SetChannelAt(i, stego.ChannelAt(i)^1)
	}
	psnr := PSNR(cover, stego)
	// MSE 1 -> PSNR ~48 dB; anything above ~40 dB is imperceptible
	assert.InDelta(t, 48.13, psnr, 0.01)
}

func TestMismatchedBuffers(t *testing.T) {
	assert.True(t, math.IsNaN(MSE(pixel.New(2, 2), pixel.New(3, 3))))
}
