package mandel

import (
	"fmt"
	"image"
	"image/color"
	"sync"
)

// Render fills pix with the grayscale rendering of r on a width x
// height grid. pix holds one byte per pixel at index row*width+col and
// its length must equal width*height exactly; anything else is a
// programming error and panics.
//
// A point escaping at iteration i shades as 255-i, so points that
// leave the disk quickly render bright while the presumed set interior
// renders black.
func Render(pix []byte, width, height int, r Region) {
	checkBufferLen(pix, width, height)
	renderRows(pix, width, height, 0, height, r)
}

// RenderRows renders like Render but splits the row range into at most
// workers contiguous bands, each filled by its own goroutine into its
// own disjoint sub-slice of pix. Pixels carry no cross dependencies,
// so the output is bit-identical to the sequential Render.
func RenderRows(pix []byte, width, height int, r Region, workers int) {
	checkBufferLen(pix, width, height)
	if workers < 1 {
		workers = 1
	}
	band := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for rowMin := 0; rowMin < height; rowMin += band {
		rowMin := rowMin
		rowMax := min(rowMin+band, height)
		wg.Add(1)
		go func() {
			defer wg.Done()
			renderRows(pix[rowMin*width:rowMax*width], width, height, rowMin, rowMax, r)
		}()
	}
	wg.Wait()
}

// renderRows fills rows [rowMin, rowMax) of a width x height rendering
// of r into pix, which backs exactly those rows.
func renderRows(pix []byte, width, height, rowMin, rowMax int, r Region) {
	for row := rowMin; row < rowMax; row++ {
		for col := 0; col < width; col++ {
			c := PixelToPoint(width, height, col, row, r)
			pix[(row-rowMin)*width+col] = shade(c)
		}
	}
}

// RenderTile renders one tile of an imgW x imgH rendering of r into a
// grayscale image carrying the tile's global pixel coordinates.
func RenderTile(r Region, tile image.Rectangle, imgW, imgH int) *image.Gray {
	img := image.NewGray(tile)
	for row := tile.Min.Y; row < tile.Max.Y; row++ {
		for col := tile.Min.X; col < tile.Max.X; col++ {
			c := PixelToPoint(imgW, imgH, col, row, r)
			img.SetGray(col, row, color.Gray{Y: shade(c)})
		}
	}
	return img
}

func shade(c complex128) byte {
	i, escaped := EscapeTime(c, EscapeLimit)
	if !escaped {
		return 0
	}
	return byte(255 - i)
}

func checkBufferLen(pix []byte, width, height int) {
	if len(pix) != width*height {
		panic(fmt.Sprintf("mandel: buffer length %d does not match %dx%d pixels", len(pix), width, height))
	}
}
