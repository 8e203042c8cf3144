package layout

import (
	"fmt"
	"math"
)

// Aspect is a representative aspect ratio for a set of images. When the
// measured modal ratio is close to a well-known standard, W and H hold the
// canonical integer pair (e.g. 16:9) and Canonical is true; otherwise W is
// the raw ratio and H is 1.
type Aspect struct {
	W         float64 // canonical width component, or the raw ratio
	H         float64 // canonical height component, or 1
	Ratio     float64 // measured modal ratio (width/height)
	Canonical bool    // whether W:H comes from the canonical table
}

// String formats the aspect as "16:9" for canonical pairs or "1.85:1" for
// custom ratios.
func (a Aspect) String() string {
	if a.Canonical {
		return fmt.Sprintf("%d:%d", int(a.W), int(a.H))
	}
	return fmt.Sprintf("%.2f:1", a.Ratio)
}

// snapTolerance is the maximum distance between a measured ratio and a
// canonical ratio for snapping to apply.
const snapTolerance = 0.1

// canonicalRatios maps measured ratios to standard integer pairs. Both 1.78
// and 1.77 appear so that either rounding of 16/9 snaps cleanly.
var canonicalRatios = []struct {
	ratio float64
	w, h  int
}{
	{1.33, 4, 3},
	{1.78, 16, 9},
	{1.77, 16, 9},
	{1.60, 16, 10},
	{1.50, 3, 2},
	{1.00, 1, 1},
	{0.75, 3, 4},
	{0.67, 2, 3},
	{0.56, 9, 16},
}

// ModalRatio returns the most common ratio in the input, after rounding each
// value to two decimal places to bucket near-duplicates. Ties are broken in
// favor of the ratio encountered first. The second return value is false
// when the input is empty.
func ModalRatio(ratios []float64) (float64, bool) {
	if len(ratios) == 0 {
		return 0, false
	}

	counts := make(map[float64]int, len(ratios))
	var order []float64
	for _, r := range ratios {
		r = math.Round(r*100) / 100
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
	}

	best := order[0]
	for _, r := range order[1:] {
		if counts[r] > counts[best] {
			best = r
		}
	}
	return best, true
}

// Snap maps a measured ratio onto the closest canonical aspect ratio when
// within tolerance, and otherwise reports the raw ratio as a custom aspect.
func Snap(ratio float64) Aspect {
	closest := canonicalRatios[0]
	for _, c := range canonicalRatios[1:] {
		if math.Abs(c.ratio-ratio) < math.Abs(closest.ratio-ratio) {
			closest = c
		}
	}

	if math.Abs(closest.ratio-ratio) < snapTolerance {
		return Aspect{
			W:         float64(closest.w),
			H:         float64(closest.h),
			Ratio:     ratio,
			Canonical: true,
		}
	}
	return Aspect{W: ratio, H: 1, Ratio: ratio}
}
