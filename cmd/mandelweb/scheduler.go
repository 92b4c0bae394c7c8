package main

import (
	"image"
	"image/draw"
	"log"
	"sync"

	mandel "github.com/dili91/mandelbrot"
)

// tileScheduler owns the image under construction and hands out
// unrendered tiles to local worker goroutines. Workers render into
// their own tile images; only the composition into the full image and
// the progress counters sit behind the mutex.
type tileScheduler struct {
	region mandel.Region
	imgW   int
	imgH   int

	m        sync.Mutex
	img      *image.Gray
	pending  []image.Rectangle
	finished int
	total    int
	workers  int
}

func newTileScheduler(w, h int, region mandel.Region, tileSize int) *tileScheduler {
	img := image.NewGray(image.Rect(0, 0, w, h))
	tiles := mandel.SplitRect(img.Bounds(), tileSize, tileSize)
	return &tileScheduler{
		region:  region,
		imgW:    w,
		imgH:    h,
		img:     img,
		pending: tiles,
		total:   len(tiles),
	}
}

// start launches the worker pool. Workers exit once no tiles remain.
func (ts *tileScheduler) start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		go ts.render()
	}
}

// render pulls tiles until the queue drains.
// Runs on multiple goroutines in parallel.
func (ts *tileScheduler) render() {
	ts.incActiveWorkers()
	defer ts.decActiveWorkers()

	for {
		tile, found := ts.popTile()
		if !found {
			return
		}
		ts.tileFinished(mandel.RenderTile(ts.region, tile, ts.imgW, ts.imgH))
	}
}

func (ts *tileScheduler) popTile() (tile image.Rectangle, found bool) {
	ts.m.Lock()
	defer ts.m.Unlock()

	if len(ts.pending) == 0 {
		return image.Rectangle{}, false
	}
	tile = ts.pending[len(ts.pending)-1]
	ts.pending = ts.pending[:len(ts.pending)-1]
	return tile, true
}

// tileFinished composes a rendered tile into the full image. The tile
// carries global coordinates, so the draw lands where it belongs.
func (ts *tileScheduler) tileFinished(tileImg *image.Gray) {
	ts.m.Lock()
	defer ts.m.Unlock()

	draw.Draw(ts.img, tileImg.Bounds(), tileImg, tileImg.Bounds().Min, draw.Src)

	ts.finished++
	if ts.finished == ts.total {
		log.Printf("render complete: %d tiles", ts.total)
	}
}

// progress returns a snapshot of the tile and worker counters.
func (ts *tileScheduler) progress() progress {
	ts.m.Lock()
	defer ts.m.Unlock()
	return progress{
		TilesDone:  ts.finished,
		TilesTotal: ts.total,
		Workers:    ts.workers,
	}
}

// snapshot copies the current state of the image, finished or not.
func (ts *tileScheduler) snapshot() *image.Gray {
	ts.m.Lock()
	defer ts.m.Unlock()
	dup := image.NewGray(ts.img.Rect)
	copy(dup.Pix, ts.img.Pix)
	return dup
}

func (ts *tileScheduler) incActiveWorkers() {
	ts.m.Lock()
	ts.workers++
	w := ts.workers
	ts.m.Unlock()

	log.Printf("workers: %d", w)
}

func (ts *tileScheduler) decActiveWorkers() {
	ts.m.Lock()
	ts.workers--
	w := ts.workers
	ts.m.Unlock()

	log.Printf("workers: %d", w)
}
