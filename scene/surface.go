package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Surface describes the rectangular placement substrate (a table top) in
// world coordinates. It is an immutable value: engine stages read it but
// never write back, so one Surface may serve any number of generations.
type Surface struct {
	Length  float64 // extent along local x, meters
	Width   float64 // extent along local y, meters
	Height  float64 // plate thickness above the anchor position, meters
	Padding float64 // margin kept free on every edge, meters

	Position    mgl64.Vec3  // world position of the surface anchor
	Orientation *mgl64.Quat // world orientation; nil means identity
}

// UsableLength returns the x extent left after subtracting padding on both
// sides. May be zero or negative for degenerate padding.
func (s Surface) UsableLength() float64 {
	return s.Length - 2*s.Padding
}

// UsableWidth returns the y extent left after subtracting padding on both sides.
func (s Surface) UsableWidth() float64 {
	return s.Width - 2*s.Padding
}

// GridDims returns the number of grid columns and rows that fit on the
// usable area for the given cell edge length. A surface whose padding
// consumes the whole footprint yields (0, 0); that is a valid zero-capacity
// result, not an error.
func (s Surface) GridDims(gridSize float64) (cols, rows int) {
	if gridSize <= 0 {
		return 0, 0
	}
	usableLength := s.UsableLength()
	usableWidth := s.UsableWidth()
	if usableLength <= 0 || usableWidth <= 0 {
		return 0, 0
	}
	return int(usableLength / gridSize), int(usableWidth / gridSize)
}

// TotalCells returns cols*rows for the given cell edge length.
func (s Surface) TotalCells(gridSize float64) int {
	cols, rows := s.GridDims(gridSize)
	return cols * rows
}
