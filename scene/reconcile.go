package scene

import (
	"github.com/sirupsen/logrus"
)

// ReconcileCounts fits a per-category allocation to the number of placement
// positions actually available. The input slice is never modified; the
// returned slice is always a fresh copy.
//
// Branches:
//   - available < requested: truncate. Each count is scaled by
//     available/requested and floored, then the leftover positions are handed
//     out one-by-one in category order until the sum is exactly available.
//   - available > requested and autoSupplement: grow. The surplus is split
//     proportionally to each category's share of the original total (floored),
//     rounding leftovers again handed out in category order, so the sum is
//     exactly available.
//   - otherwise: no-op copy. Without autoSupplement the engine simply uses
//     fewer positions than the grid offers.
//
// A zero-total request (empty or all-zero allocation) is a no-op regardless
// of capacity: there is no proportion to preserve.
func ReconcileCounts(counts []int, available int, autoSupplement bool) []int {
	adjusted := append([]int(nil), counts...)
	requested := SumCounts(adjusted)
	if requested == 0 {
		return adjusted
	}

	switch {
	case available < requested:
		logrus.Warnf("available positions (%d) fewer than requested objects (%d), truncating allocation",
			available, requested)
		scale := float64(available) / float64(requested)
		allocated := 0
		for i, c := range adjusted {
			adjusted[i] = int(float64(c) * scale)
			allocated += adjusted[i]
		}
		remaining := available - allocated
		for i := 0; remaining > 0 && i < len(adjusted); i++ {
			adjusted[i]++
			remaining--
		}

	case available > requested && autoSupplement:
		logrus.Infof("available positions (%d) exceed requested objects (%d), supplementing allocation",
			available, requested)
		extra := available - requested
		allocated := 0
		for i, c := range adjusted {
			add := int(float64(extra) * float64(c) / float64(requested))
			adjusted[i] = c + add
			allocated += add
		}
		remaining := extra - allocated
		for i := 0; remaining > 0 && i < len(adjusted); i++ {
			adjusted[i]++
			remaining--
		}
	}

	return adjusted
}
