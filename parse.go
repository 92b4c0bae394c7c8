package mandel

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePair splits s into "<left><sep><right>" on the first occurrence
// of sep and parses both halves with parse. A missing separator or a
// token parse rejects yields an error, never a partial result.
func ParsePair[T any](s string, sep byte, parse func(string) (T, error)) (T, T, error) {
	var zero T
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return zero, zero, fmt.Errorf("missing separator %q in %q", sep, s)
	}
	left, err := parse(s[:i])
	if err != nil {
		return zero, zero, fmt.Errorf("left of %q: %w", sep, err)
	}
	right, err := parse(s[i+1:])
	if err != nil {
		return zero, zero, fmt.Errorf("right of %q: %w", sep, err)
	}
	return left, right, nil
}

// ParsePixelSize parses an image size given as "WIDTHxHEIGHT" into its
// pixel dimensions, e.g. "1920x1080".
func ParsePixelSize(s string) (width, height int, err error) {
	width, height, err = ParsePair(s, 'x', strconv.Atoi)
	if err != nil {
		return 0, 0, fmt.Errorf("pixel size %q: %w", s, err)
	}
	return width, height, nil
}

// ParseComplex parses a comma separated pair of floats as a point of
// the complex plane, e.g. "-0.5,0.75".
func ParseComplex(s string) (complex128, error) {
	re, im, err := ParsePair(s, ',', func(tok string) (float64, error) {
		return strconv.ParseFloat(tok, 64)
	})
	if err != nil {
		return 0, fmt.Errorf("complex point %q: %w", s, err)
	}
	return complex(re, im), nil
}

// ParseRegion parses the upper-left and lower-right corner arguments
// into the region to render.
func ParseRegion(upperLeft, lowerRight string) (Region, error) {
	ul, err := ParseComplex(upperLeft)
	if err != nil {
		return Region{}, fmt.Errorf("upper left: %w", err)
	}
	lr, err := ParseComplex(lowerRight)
	if err != nil {
		return Region{}, fmt.Errorf("lower right: %w", err)
	}
	return Region{UpperLeft: ul, LowerRight: lr}, nil
}
