package mandel

import "image"

// SplitRect splits r into tiles of at most tileW x tileH pixels. Tiles
// at the right and bottom edges are smaller when r does not divide
// evenly. The tiles cover r exactly and never overlap.
func SplitRect(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("mandel: tile dimensions must be positive")
	}

	var tiles []image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y += tileH {
		for x := r.Min.X; x < r.Max.X; x += tileW {
			tile := image.Rect(x, y, min(x+tileW, r.Max.X), min(y+tileH, r.Max.Y))
			tiles = append(tiles, tile)
		}
	}
	return tiles
}
