package impl

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// pageBounds applies the default page size, caps it and clamps a negative offset.
func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	return min(limit, maxPageSize), max(offset, 0)
}
