package scene

import (
	"github.com/sirupsen/logrus"
)

// CountRequest expresses how many clutter objects the caller wants.
// Exactly one form is active:
//   - PerCategory non-nil: an explicit count per category, in category order
//   - Total non-nil: a grand total to split evenly across categories
//   - both nil: one object per category
//
// In scene YAML this is the num_objects key, which accepts either a scalar
// or a sequence (see config.go).
type CountRequest struct {
	Total       *int
	PerCategory []int
}

// Totalled returns a CountRequest asking for n objects in total.
func Totalled(n int) CountRequest {
	return CountRequest{Total: &n}
}

// PerCategory returns a CountRequest with explicit per-category counts.
func PerCategory(counts ...int) CountRequest {
	return CountRequest{PerCategory: counts}
}

// AllocateCounts resolves a CountRequest into one non-negative count per
// category, same order and length as categories.
//
// A per-category list whose length disagrees with categories is repaired
// deterministically: short lists are padded with 1s, long lists truncated.
// The repair is lossy and logged at warn level.
//
// A scalar total is split evenly; the remainder goes to the first categories
// in list order, so sum(result) == total always holds.
func AllocateCounts(categories []string, req CountRequest) []int {
	if len(categories) == 0 {
		return nil
	}

	if req.PerCategory != nil {
		counts := append([]int(nil), req.PerCategory...)
		if len(counts) != len(categories) {
			logrus.Warnf("num_objects length (%d) does not match categories length (%d), repairing",
				len(counts), len(categories))
			for len(counts) < len(categories) {
				counts = append(counts, 1)
			}
			counts = counts[:len(categories)]
		}
		return counts
	}

	if req.Total != nil {
		base := *req.Total / len(categories)
		remainder := *req.Total % len(categories)
		counts := make([]int, len(categories))
		for i := range counts {
			counts[i] = base
			if i < remainder {
				counts[i]++
			}
		}
		return counts
	}

	counts := make([]int, len(categories))
	for i := range counts {
		counts[i] = 1
	}
	return counts
}

// SumCounts returns the total of a per-category allocation.
func SumCounts(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
