package memory

import "carrent/internal/utils"

type pageBounds struct {
	start int
	end   int
}

// paginate clamps the pagination window to the slice length so callers can
// index safely.
func paginate(length int, params *utils.PaginationParams) pageBounds {
	if params == nil {
		return pageBounds{start: 0, end: length}
	}

	start := params.GetSkip()
	if start > length {
		start = length
	}
	end := start + params.GetLimit()
	if end > length {
		end = length
	}
	return pageBounds{start: start, end: end}
}
