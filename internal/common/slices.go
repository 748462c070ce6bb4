package common

// Rotate returns a copy of s with the element at index i moved to the front
// and the remaining elements kept in their original order.
func Rotate[S ~[]E, E any](s S, i int) S {
	out := make(S, 0, len(s))
	out = append(out, s[i])
	out = append(out, s[:i]...)

	return append(out, s[i+1:]...)
}
