package ds

func Repeat[T any](n int, initial T) []T {
	ts := make([]T, 0, n)
	for i := 0; i < n; i++ {
		ts = append(ts, initial)
	}
	return ts
}

// PadRight returns a copy of ts extended with pad up to n elements. A slice
// already n long or longer is copied unchanged.
func PadRight[T any](ts []T, n int, pad T) []T {
	padded := make([]T, len(ts), max(n, len(ts)))
	copy(padded, ts)
	if len(ts) < n {
		padded = append(padded, Repeat(n-len(ts), pad)...)
	}
	return padded
}
