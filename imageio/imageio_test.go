package imageio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yyyoichi/steglsb/pixel"
)

func newGradient(w, h int) *pixel.Buffer {
	buf := pixel.New(w, h)
	for y := range h {
		for x := range w {
			buf.SetRGB(x, y, uint8(x*13), uint8(y*17), uint8(x+y))
		}
	}
	return buf
}

func TestSaveLoadLossless(t *testing.T) {
	test := []struct {
		name string
		file string
	}{
		{"png", "out.png"},
		{"bmp", "out.bmp"},
		{"tiff", "out.tiff"},
	}
	buf := newGradient(17, 9)
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, Save(path, buf))

			got, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, buf.Channels(), got.Channels())
			// every channel value survives, LSBs included
			for i := range buf.Channels() {
				require.Equal(t, buf.ChannelAt(i), got.ChannelAt(i), "channel %d", i)
			}
		})
	}
}

func TestSaveRejectsLossyAndUnknownFormats(t *testing.T) {
	buf := newGradient(4, 4)
	for _, file := range []string{"out.jpg", "out.jpeg", "out.webp", "out"} {
		t.Run(file, func(t *testing.T) {
			err := Save(filepath.Join(t.TempDir(), file), buf)
			require.Error(t, err)
			var ee *EncodeError
			assert.ErrorAs(t, err, &ee)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "nope.png", filepath.Base(de.Path))
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Load(path)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}
