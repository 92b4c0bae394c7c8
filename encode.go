package mandel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// GrayImage wraps a rendered intensity buffer as an image.Gray without
// copying. The buffer layout, one byte per pixel in row-major order,
// is exactly image.Gray's Pix layout. The wrapped image aliases pix,
// so treat it as a read-only view once handed out.
func GrayImage(pix []byte, width, height int) *image.Gray {
	checkBufferLen(pix, width, height)
	return &image.Gray{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// WriteImage encodes pix as an 8-bit grayscale image into filename.
// The file extension selects the format: ".bmp" writes BMP, everything
// else PNG.
func WriteImage(filename string, pix []byte, width, height int) error {
	img := GrayImage(pix, width, height)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", filename, err)
	}
	return nil
}
