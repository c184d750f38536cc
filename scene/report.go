package scene

import (
	"fmt"
)

// Report records what a generation actually produced, so degraded runs
// (truncated allocations, skipped categories, empty grids) are observable
// without parsing log output.
type Report struct {
	BatchID string // unique per generation

	Columns    int // grid columns on the usable footprint
	Rows       int // grid rows on the usable footprint
	TotalCells int // Columns * Rows

	AvailablePositions int // positions produced by the generator
	RequestedObjects   int // allocation total before reconciliation
	PlacedObjects      int // descriptors actually emitted

	Truncated    bool // allocation was cut down to capacity
	Supplemented bool // allocation was grown to fill capacity

	SkippedByCategory map[string]int // objects dropped for lack of catalog models
}

// SkippedObjects returns the total number of objects dropped across categories.
func (r *Report) SkippedObjects() int {
	total := 0
	for _, n := range r.SkippedByCategory {
		total += n
	}
	return total
}

// Degraded reports whether the batch came out smaller than requested for any
// reason.
func (r *Report) Degraded() bool {
	return r.Truncated || r.SkippedObjects() > 0 || r.PlacedObjects < r.RequestedObjects
}

// Print displays the generation summary.
func (r *Report) Print() {
	fmt.Println("=== Layout Report ===")
	fmt.Printf("Batch ID            : %s\n", r.BatchID)
	fmt.Printf("Grid                : %dx%d = %d cells\n", r.Columns, r.Rows, r.TotalCells)
	fmt.Printf("Available positions : %d\n", r.AvailablePositions)
	fmt.Printf("Requested objects   : %d\n", r.RequestedObjects)
	fmt.Printf("Placed objects      : %d\n", r.PlacedObjects)
	if r.Truncated {
		fmt.Println("Allocation truncated to capacity")
	}
	if r.Supplemented {
		fmt.Println("Allocation supplemented to capacity")
	}
	for category, n := range r.SkippedByCategory {
		fmt.Printf("Skipped %-12s: %d (no catalog models)\n", category, n)
	}
}
