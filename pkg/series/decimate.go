package series

// Decimate reduces src to at most maxPoints samples by stride selection.
// Destination-based: reuses dst.X and dst.Y if they have sufficient capacity, otherwise allocates new.
// If maxPoints <= 0 or src.Len() <= maxPoints, all samples are copied.
// The last sample of src is always kept so the trace still reaches its end.
func Decimate(dst, src Series, maxPoints int) Series {
	n := src.Len()
	dst.Name = src.Name

	if maxPoints <= 0 || n <= maxPoints {
		dst.X = resize(dst.X, n)
		dst.Y = resize(dst.Y, n)
		copy(dst.X, src.X)
		copy(dst.Y, src.Y)
		return dst
	}

	dst.X = resize(dst.X, 0)
	dst.Y = resize(dst.Y, 0)

	// Calculate step size for decimation
	step := float64(n) / float64(maxPoints)

	for i := 0; i < maxPoints-1; i++ {
		idx := int(float64(i) * step)
		dst.X = append(dst.X, src.X[idx])
		dst.Y = append(dst.Y, src.Y[idx])
	}
	dst.X = append(dst.X, src.X[n-1])
	dst.Y = append(dst.Y, src.Y[n-1])

	return dst
}

// resize returns s with length n, reusing its backing array when possible.
func resize(s []float64, n int) []float64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]float64, n, max(n, 2*cap(s)))
}
