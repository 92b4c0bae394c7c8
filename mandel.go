// Package mandel computes and rasterises the Mandelbrot set. It maps
// pixels of an output grid onto a rectangle of the complex plane, runs
// the escape-time iteration z = z*z + c for each point and shades the
// escape counts as an 8-bit grayscale image.
package mandel

// EscapeLimit is the iteration budget used by the renderers. Escape
// counts below it map directly onto the single-byte intensity range,
// no rescaling needed.
const EscapeLimit = 255

// EscapeTime reports whether the orbit of c under z = z*z + c leaves
// the circle of radius 2 around the origin within limit iterations.
//
// If it does, EscapeTime returns the iteration index at which the
// squared norm of z first exceeded 4 and true. The orbit is then
// unbounded and c is provably outside the set. If the budget runs out
// first it returns 0 and false: c is presumed to be a member, since
// more iterations might still prove escape.
func EscapeTime(c complex128, limit int) (int, bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}
