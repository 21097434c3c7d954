package slice

// MapPos maps the input slice using the provided mapper function, which also
// receives the 1-based position of each element.
func MapPos[In, Out any](in []In, fn func(int, In) Out) []Out {
	out := make([]Out, len(in))
	for i, v := range in {
		out[i] = fn(i+1, v)
	}
	return out
}
