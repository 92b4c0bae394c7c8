package mandel

// Region is an axis-aligned rectangle of the complex plane, given by
// its upper-left and lower-right corners. For a non-degenerate region
// real(LowerRight) > real(UpperLeft) and imag(UpperLeft) >
// imag(LowerRight). Nothing here defends against a violation; a
// degenerate region renders degenerate output.
type Region struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// FullSet – the whole set with some margin around it
	FullSet = Region{
		UpperLeft:  complex(-2.5, 1.25),
		LowerRight: complex(1.0, -1.25),
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		UpperLeft:  complex(-0.8, 0.15),
		LowerRight: complex(-0.7, 0.05),
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		UpperLeft:  complex(-1.85, -0.02),
		LowerRight: complex(-1.75, -0.10),
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		UpperLeft:  complex(-0.7435, 0.1325),
		LowerRight: complex(-0.7420, 0.1310),
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		UpperLeft:  complex(-0.7480, 0.0980),
		LowerRight: complex(-0.7450, 0.0950),
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		UpperLeft:  complex(-0.7400, 0.1850),
		LowerRight: complex(-0.7350, 0.1800),
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		UpperLeft:  complex(-1.7390, -0.0220),
		LowerRight: complex(-1.7375, -0.0235),
	}
)

// PixelToPoint returns the point of r represented by the pixel at
// (col, row) on a width x height grid. Row indices grow downward while
// the imaginary axis grows upward, so the imaginary component is
// interpolated top-down: visually "up" in the image is "increasing
// imaginary part" in the plane.
//
// Zero width or height divides by zero and yields non-finite
// components; callers own that precondition.
func PixelToPoint(width, height, col, row int, r Region) complex128 {
	planeWidth := real(r.LowerRight) - real(r.UpperLeft)
	planeHeight := imag(r.UpperLeft) - imag(r.LowerRight)
	return complex(
		real(r.UpperLeft)+float64(col)*planeWidth/float64(width),
		imag(r.UpperLeft)-float64(row)*planeHeight/float64(height),
	)
}
