package embedding

import "math"

// NormalizeL2 scales a vector to unit length in place. With unit-length
// vectors, inner product equals cosine similarity, which is what the index
// relies on.
func NormalizeL2(vector []float32) {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}

	// A zero vector stays zero; no valid embedding is all zeros.
	if sumSquares == 0 {
		return
	}

	magnitude := math.Sqrt(sumSquares)
	for i := range vector {
		vector[i] = float32(float64(vector[i]) / magnitude)
	}
}
