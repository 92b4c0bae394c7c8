package mandel

import "testing"

func TestPixelToPoint(t *testing.T) {
	r := Region{UpperLeft: complex(-1.0, 1.0), LowerRight: complex(1.0, -1.0)}

	got := PixelToPoint(100, 200, 25, 175, r)
	if got != complex(-0.5, -0.75) {
		t.Errorf("PixelToPoint(100, 200, 25, 175, %v) = %v, want (-0.5-0.75i)", r, got)
	}
}

func TestPixelToPointCorners(t *testing.T) {
	r := Region{UpperLeft: complex(-2.0, 1.5), LowerRight: complex(0.5, -1.5)}
	const w, h = 640, 480

	if got := PixelToPoint(w, h, 0, 0, r); got != r.UpperLeft {
		t.Errorf("pixel (0,0) maps to %v, want upper left %v", got, r.UpperLeft)
	}
	// (w, h) is one past the last rendered pixel, yet maps exactly
	// onto the lower-right corner.
	if got := PixelToPoint(w, h, w, h, r); got != r.LowerRight {
		t.Errorf("pixel (%d,%d) maps to %v, want lower right %v", w, h, got, r.LowerRight)
	}
}

func TestPixelToPointIdempotent(t *testing.T) {
	r := SeahorseValley
	p1 := PixelToPoint(1920, 1080, 777, 333, r)
	p2 := PixelToPoint(1920, 1080, 777, 333, r)
	if p1 != p2 {
		t.Errorf("two runs disagree: %v vs %v", p1, p2)
	}
}

func TestLandmarksNonDegenerate(t *testing.T) {
	landmarks := map[string]Region{
		"FullSet":              FullSet,
		"SeahorseValley":       SeahorseValley,
		"ElephantValley":       ElephantValley,
		"SpiralMinibrot":       SpiralMinibrot,
		"TripleSpiral":         TripleSpiral,
		"ValleyOfTheDragon":    ValleyOfTheDragon,
		"MinibrotInMiniSpiral": MinibrotInMiniSpiral,
	}
	for name, r := range landmarks {
		if real(r.LowerRight) <= real(r.UpperLeft) {
			t.Errorf("%s: lower right is not east of upper left: %v", name, r)
		}
		if imag(r.UpperLeft) <= imag(r.LowerRight) {
			t.Errorf("%s: upper left is not north of lower right: %v", name, r)
		}
	}
}
