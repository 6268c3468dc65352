package cli

// Ellipsis marks a gap in the page-number strip.
const Ellipsis = -1

// PageNumbers computes the page-number strip for the pagination control:
// always the first and last page, a 3-page neighborhood around the current
// page, and at most one Ellipsis on each side. Purely cosmetic; the server's
// pagination meta stays authoritative.
func PageNumbers(current, last int) []int {
	if last < 1 {
		last = 1
	}
	if current < 1 {
		current = 1
	}

	pages := []int{1}

	start := max(2, current-1)
	end := min(last-1, current+1)
	if current <= 3 {
		end = min(4, last-1)
	}
	if current >= last-2 {
		start = max(last-3, 2)
	}

	if start > 2 {
		pages = append(pages, Ellipsis)
	}
	for i := start; i <= end; i++ {
		if i != 1 && i != last {
			pages = append(pages, i)
		}
	}
	if end < last-1 {
		pages = append(pages, Ellipsis)
	}
	if last > 1 {
		pages = append(pages, last)
	}

	// Collapse any adjacent ellipsis markers.
	out := make([]int, 0, len(pages))
	lastWasEllipsis := false
	for _, p := range pages {
		if p == Ellipsis {
			if lastWasEllipsis {
				continue
			}
			lastWasEllipsis = true
		} else {
			lastWasEllipsis = false
		}
		out = append(out, p)
	}
	return out
}
