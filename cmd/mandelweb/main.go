// mandelweb renders a landmark region of the Mandelbrot set on a local
// worker pool and shows the rendering progress in the browser: an HTML
// page polls the grayscale image while a websocket feed reports how
// many tiles are done.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"

	mandel "github.com/dili91/mandelbrot"
)

var landmarks = map[string]mandel.Region{
	"full":     mandel.FullSet,
	"seahorse": mandel.SeahorseValley,
	"elephant": mandel.ElephantValley,
	"spiral":   mandel.SpiralMinibrot,
	"triple":   mandel.TripleSpiral,
	"dragon":   mandel.ValleyOfTheDragon,
	"minibrot": mandel.MinibrotInMiniSpiral,
}

func main() {
	addr := flag.String("addr", ":8080", "http listen address")
	size := flag.String("size", "1920x1080", "image size as WIDTHxHEIGHT")
	region := flag.String("region", "seahorse", "landmark region to render (full, seahorse, elephant, spiral, triple, dragon, minibrot)")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of render workers")
	tile := flag.Int("tile", 64, "tile edge length in pixels")
	flag.Parse()

	if err := run(*addr, *size, *region, *workers, *tile); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(addr, size, regionName string, workers, tileSize int) error {
	width, height, err := mandel.ParsePixelSize(size)
	if err != nil {
		return err
	}
	region, ok := landmarks[regionName]
	if !ok {
		return fmt.Errorf("unknown region %q", regionName)
	}

	sched := newTileScheduler(width, height, region, tileSize)
	sched.start(workers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := webServer(addr, sched)
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on http://localhost%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
