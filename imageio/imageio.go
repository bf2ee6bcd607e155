// Package imageio loads and saves the pixel buffers the codec works on.
// Loading normalizes any supported source format to 8-bit RGB. Saving is
// restricted to lossless formats: a lossy re-encode would rewrite channel
// values and destroy embedded LSB data.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// decode-only; stego output must never be written as JPEG
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/yyyoichi/steglsb/pixel"
)

// DecodeError reports a failure to read or decode an image file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Path, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failure to encode or write an image file.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encode %s: %v", e.Path, e.Err) }
func (e *EncodeError) Unwrap() error { return e.Err }

// Load reads the image at path and returns it as an RGB pixel buffer.
// PNG, BMP, TIFF and JPEG sources are supported.
func Load(path string) (*pixel.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return pixel.FromImage(img), nil
}

// Save writes buf to path in the format chosen by the file extension.
// Only lossless formats are accepted: .png, .bmp, .tif/.tiff.
func Save(path string, buf *pixel.Buffer) error {
	encode, err := encoderFor(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := encode(f, buf.Image()); err != nil {
		f.Close()
		return &EncodeError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, nil
	case ".jpg", ".jpeg":
		return nil, fmt.Errorf("jpeg is lossy and would corrupt embedded bits")
	default:
		return nil, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}
