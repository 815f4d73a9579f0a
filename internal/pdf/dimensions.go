package pdf

import (
	"math"
)

const (
	GoodnotesPtWidth  = 455.04
	GoodnotesPtHeight = 587.52

	DimensionTolerance = 1.0
)

type PageDimensions struct {
	Width  float64
	Height float64
}

// Matches reports whether a page of the given size is a flashcard page, in
// either orientation.
func (d PageDimensions) Matches(width, height float64) bool {
	upright := near(width, d.Width) && near(height, d.Height)
	rotated := near(width, d.Height) && near(height, d.Width)
	return upright || rotated
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= DimensionTolerance
}
