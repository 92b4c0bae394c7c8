// mandelbrot renders a rectangle of the complex plane into a grayscale
// image file in one shot.

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	mandel "github.com/dili91/mandelbrot"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintf(os.Stderr, "Usage: %s FILE PIXELS UPPERLEFT LOWERRIGHT\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s mandel.png 1000x750 -1.20,0.35 -1.0,0.20\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2], os.Args[3], os.Args[4]); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run parses the arguments, renders the requested view across all
// available CPUs and saves the image. Returns an error if any step
// fails.
func run(file, pixels, upperLeft, lowerRight string) error {
	width, height, err := mandel.ParsePixelSize(pixels)
	if err != nil {
		return err
	}
	region, err := mandel.ParseRegion(upperLeft, lowerRight)
	if err != nil {
		return err
	}

	log.Printf("Rendering %dx%d pixels of %v..%v...", width, height, region.UpperLeft, region.LowerRight)
	pix := make([]byte, width*height)
	mandel.RenderRows(pix, width, height, region, runtime.GOMAXPROCS(0))

	log.Printf("Saving rendered image to %q...", file)
	if err := mandel.WriteImage(file, pix, width, height); err != nil {
		return err
	}

	log.Printf("Rendered image saved to %q", file)
	return nil
}
