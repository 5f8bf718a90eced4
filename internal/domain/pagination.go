package domain

// Paginate returns list[from : from+size], clipped to the available length.
// An offset beyond the end of the list yields an empty page, not an error.
func Paginate[T any](list []T, from, size int) ([]T, error) {
	if from < 0 || size <= 0 {
		return nil, NewBadRequestError("Bad params from or size for request")
	}
	if from >= len(list) {
		return []T{}, nil
	}
	end := from + size
	if end > len(list) {
		end = len(list)
	}
	return list[from:end], nil
}
