package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// GeneratePositions produces world-space placement points on the surface.
//
// One candidate point is generated per grid cell: the cell center, jittered
// by an independent uniform offset in [-gridSize/2, +gridSize/2) on x and y
// (z jitter is always zero), so no two points can share a cell. The grid is
// centered on the usable footprint. Points are rotated by the surface
// orientation, translated to world coordinates, pinned to the surface plane
// (z = position.z + height), shuffled uniformly, and truncated to
// floor(totalCells * occupancyRate).
//
// A degenerate surface (padding eats the footprint, or gridSize larger than
// the usable area) returns an empty slice; so does occupancyRate = 0.
// A malformed orientation quaternion falls back to unrotated points and
// continues — layout generation is never fatal.
func GeneratePositions(s Surface, gridSize, occupancyRate float64, rng *rand.Rand) []mgl64.Vec3 {
	cols, rows := s.GridDims(gridSize)
	total := cols * rows
	if total == 0 {
		logrus.Debugf("degenerate surface: usable %.3f x %.3f with grid size %.3f yields no cells",
			s.UsableLength(), s.UsableWidth(), gridSize)
		return nil
	}

	num := int(float64(total) * occupancyRate)
	if num <= 0 {
		return nil
	}
	if num > total {
		num = total
	}

	// Offsets that center the grid on the usable footprint.
	startX := -s.UsableLength()/2 + gridSize/2
	startY := -s.UsableWidth()/2 + gridSize/2

	points := make([]mgl64.Vec3, 0, total)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := startX + float64(col)*gridSize + (rng.Float64()-0.5)*gridSize
			y := startY + float64(row)*gridSize + (rng.Float64()-0.5)*gridSize
			points = append(points, mgl64.Vec3{x, y, 0})
		}
	}

	if s.Orientation != nil {
		if q, ok := usableQuat(*s.Orientation); ok {
			for i := range points {
				points[i] = q.Rotate(points[i])
			}
		} else {
			logrus.Warnf("malformed surface orientation %v, using unrotated grid", *s.Orientation)
		}
	}

	surfaceZ := s.Position.Z() + s.Height
	for i := range points {
		points[i] = points[i].Add(s.Position)
		points[i][2] = surfaceZ
	}

	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
	return points[:num]
}

// usableQuat normalizes q for rotation, rejecting quaternions whose norm is
// zero or non-finite.
func usableQuat(q mgl64.Quat) (mgl64.Quat, bool) {
	n := q.Norm()
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 1e-9 {
		return mgl64.Quat{}, false
	}
	return q.Normalize(), true
}
