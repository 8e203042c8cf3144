package layout

// Sample reduces items to at most maxCount entries while preserving the
// original relative order. When the list already fits, it is returned
// unchanged. Otherwise the first and last items are always kept and the
// interior slots are filled by evenly spaced picks across the remaining
// range.
//
// The interior picks use a float step of (n-2)/(maxCount-2) and select
// index int(1 + i*step + step/2) for each slot, discarding any index that
// reaches the final item. Computed indices are not de-duplicated, so the
// result can occasionally contain repeats for small interior counts; this
// matches the documented selection behavior and keeps outputs stable.
//
// For the degenerate case maxCount < 2 the first maxCount items are
// returned with no first/last guarantee.
func Sample(items []string, maxCount int) []string {
	if len(items) <= maxCount {
		return items
	}
	if maxCount <= 0 {
		return items[:0]
	}
	if maxCount < 2 {
		return items[:maxCount]
	}

	sampled := make([]string, 0, maxCount)
	sampled = append(sampled, items[0])

	interior := maxCount - 2
	if interior > 0 {
		step := float64(len(items)-2) / float64(interior)
		for i := 0; i < interior; i++ {
			idx := int(1 + float64(i)*step + step/2)
			if idx < len(items)-1 {
				sampled = append(sampled, items[idx])
			}
		}
	}

	sampled = append(sampled, items[len(items)-1])
	return sampled
}
