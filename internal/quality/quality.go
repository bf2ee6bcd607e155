// Package quality measures the distortion embedding introduced into an
// image. LSB substitution changes each channel by at most 1, so PSNR
// values stay far above the visibility threshold.
package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yyyoichi/steglsb/pixel"
)

// MSE returns the mean squared error over the channel values of two
// buffers with identical dimensions.
func MSE(cover, stego *pixel.Buffer) float64 {
	n := cover.Channels()
	if n == 0 || n != stego.Channels() {
		return math.NaN()
	}
	diff := make([]float64, n)
	for i := range diff {
		diff[i] = float64(cover.ChannelAt(i)) - float64(stego.ChannelAt(i))
	}
	return floats.Dot(diff, diff) / float64(n)
}

// PSNR returns the peak signal-to-noise ratio in decibels.
// Identical buffers yield +Inf.
func PSNR(cover, stego *pixel.Buffer) float64 {
	mse := MSE(cover, stego)
	if mse == 0 {
		return math.Inf(1)
	}
	return 20*math.Log10(math.MaxUint8) - 10*math.Log10(mse)
}
