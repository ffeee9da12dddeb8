package vector

import "math"

// Cosine calculates the cosine of the angle between two vectors.
// Zero-magnitude vectors and mismatched lengths yield 0.0 rather than
// an error; both are degenerate comparisons, not failures.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := 0; i < len(a); i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0.0 || normB == 0.0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
