package mandel

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestGrayImageAliasesBuffer(t *testing.T) {
	pix := make([]byte, 6)
	img := GrayImage(pix, 3, 2)

	pix[1*3+2] = 200
	if got := img.GrayAt(2, 1).Y; got != 200 {
		t.Errorf("GrayAt(2,1) = %d, want 200", got)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v, want (0,0)-(3,2)", img.Bounds())
	}
}

func TestGrayImageRejectsWrongBufferLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GrayImage with short buffer did not panic")
		}
	}()
	GrayImage(make([]byte, 5), 3, 2)
}

func TestWriteImagePNG(t *testing.T) {
	const w, h = 20, 10
	pix := make([]byte, w*h)
	Render(pix, w, h, Region{UpperLeft: complex(-2, 1), LowerRight: complex(1, -1)})

	filename := filepath.Join(t.TempDir(), "out.png")
	if err := WriteImage(filename, pix, w, h); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode written PNG: %v", err)
	}
	checkDecoded(t, img, pix, w, h)
}

func TestWriteImageBMP(t *testing.T) {
	const w, h = 16, 8
	pix := make([]byte, w*h)
	Render(pix, w, h, SeahorseValley)

	filename := filepath.Join(t.TempDir(), "out.bmp")
	if err := WriteImage(filename, pix, w, h); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode written BMP: %v", err)
	}
	checkDecoded(t, img, pix, w, h)
}

func TestWriteImageBadPath(t *testing.T) {
	err := WriteImage(filepath.Join(t.TempDir(), "no", "such", "dir.png"), make([]byte, 4), 2, 2)
	if err == nil {
		t.Error("WriteImage into missing directory succeeded, want error")
	}
}

func checkDecoded(t *testing.T, img image.Image, pix []byte, w, h int) {
	t.Helper()
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Fatalf("decoded size %v, want %dx%d", img.Bounds(), w, h)
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			r, g, b, _ := img.At(col, row).RGBA()
			want := uint32(pix[row*w+col])
			want |= want << 8
			if r != want || g != want || b != want {
				t.Fatalf("pixel (%d,%d): decoded (%d,%d,%d), want gray %d", col, row, r>>8, g>>8, b>>8, pix[row*w+col])
			}
		}
	}
}
