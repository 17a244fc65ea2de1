// Package pagination estimates result totals for backends that do not report
// one, and converts between page numbers and skip offsets.
package pagination

// Query is a single page request
type Query struct {
	Limit int
	Skip  int
}

// EstimateTotal guesses a result total from one fetched page. A full page
// claims one more item beyond it so that a further page is offered.
func EstimateTotal(q Query, returned int) int {
	switch {
	case returned <= 0:
		return q.Skip
	case returned < q.Limit:
		return q.Skip + returned
	default:
		return q.Skip + q.Limit + 1
	}
}

// Total returns the server-reported total when present, otherwise the estimate
func Total(q Query, returned int, reported *int) int {
	if reported != nil {
		return *reported
	}
	return EstimateTotal(q, returned)
}

// Skip converts a 1-based page number into an offset
func Skip(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}
	return (page - 1) * size
}

// TotalPages returns how many pages of size cover total
func TotalPages(total, size int) int {
	if total <= 0 || size < 1 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage keeps page within the pages available for total. With no pages
// the result is page 1.
func ClampPage(page, total, size int) int {
	pages := TotalPages(total, size)
	if pages == 0 || page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}
