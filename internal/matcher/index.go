package matcher

import (
	"math"

	"zerohunger/internal/domain"
)

// index is an immutable brute-force cosine index over stored question vectors.
type index struct {
	vectors []domain.SparseVector
	norms   []float64
}

func newIndex(vectors []domain.SparseVector) *index {
	ix := &index{
		vectors: make([]domain.SparseVector, len(vectors)),
		norms:   make([]float64, len(vectors)),
	}
	for i, v := range vectors {
		ix.vectors[i] = v
		ix.norms[i] = norm(v)
	}
	return ix
}

func (ix *index) len() int { return len(ix.vectors) }

// best returns the position of the highest cosine score. Ties go to the
// lowest position. It returns -1 for an empty index.
func (ix *index) best(query domain.SparseVector) (int, float64) {
	qn := norm(query)
	bestIdx, bestScore := -1, 0.0
	for i, v := range ix.vectors {
		score := 0.0
		if qn > 0 && ix.norms[i] > 0 {
			score = dot(query, v) / (qn * ix.norms[i])
		}
		if bestIdx == -1 || score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx, bestScore
}

// dot merges two index-sorted sparse vectors.
func dot(a, b domain.SparseVector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

func norm(v domain.SparseVector) float64 {
	sum := 0.0
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}
