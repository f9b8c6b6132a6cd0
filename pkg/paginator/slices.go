package paginator

// PaginateSlice returns the page of items selected by query.
func PaginateSlice[T any](items []T, query PaginateQuery) ([]T, Paginator) {
	query.Adjust()

	total := int64(len(items))
	pag := Paginator{Total: total, PerPage: query.Limit, CurrentPage: query.Page}

	start := query.Offset()
	if start >= total {
		return []T{}, pag
	}
	end := min(start+query.Limit, total)

	page := items[start:end]
	pag.Count = int64(len(page))
	return page, pag
}
