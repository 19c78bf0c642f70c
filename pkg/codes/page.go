package codes

import "slices"

// Page slices items into the 1-based page number of the given size.
//
// total is len(items) and pages is ceil(total/size). A page outside
// 1..pages yields an empty, non-nil slice. The returned slice is a copy.
func Page(items []Code, number, size int) (page []Code, total, pages int) {
	total = len(items)
	if size <= 0 {
		return []Code{}, total, 0
	}
	pages = total / size
	if total%size != 0 {
		pages++
	}

	if number < 1 || number > pages {
		return []Code{}, total, pages
	}

	start := (number - 1) * size
	end := min(start+size, total)
	return slices.Clone(items[start:end]), total, pages
}
