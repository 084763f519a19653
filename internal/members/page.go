package members

// PageWindow returns the page numbers offered for direct navigation: a run of
// pagesToDisplay pages centred on currentPage.
//
// Near the tail the run is not clamped, so it may name pages past totalPages.
// Callers that render the window should treat those as unreachable.
func PageWindow(currentPage, totalPages, pagesToDisplay int) []int {
	if totalPages <= 0 {
		return []int{}
	}

	var start, end int
	if totalPages == pagesToDisplay {
		start, end = 1, totalPages
	} else {
		mid := pagesToDisplay / 2
		if currentPage <= mid {
			start = 1
		} else {
			start = currentPage - mid
		}
		if totalPages <= pagesToDisplay {
			end = totalPages
		} else {
			end = start + pagesToDisplay - 1
		}
	}

	if end < start {
		return []int{}
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// PageIndices returns the half-open index range [first, last) of currentPage.
func PageIndices(currentPage, pageSize int) (first, last int) {
	last = currentPage * pageSize
	first = last - pageSize
	return first, last
}

// Slice returns the records on currentPage, clipped to the bounds of records.
// The result never aliases records.
func Slice(records []Record, currentPage, pageSize int) []Record {
	first, last := PageIndices(currentPage, pageSize)
	if first < 0 {
		first = 0
	}
	if last > len(records) {
		last = len(records)
	}
	if first >= last {
		return []Record{}
	}
	out := make([]Record, last-first)
	copy(out, records[first:last])
	return out
}

// TotalPages is the number of pages needed to show n records.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
