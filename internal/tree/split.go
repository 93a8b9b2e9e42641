package tree

import (
	"math"
	"math/rand"
)

// DefaultSeed is the fixed partition seed, so repeated runs on the
// same input produce the same split.
const DefaultSeed int64 = 42

// Split shuffles row indices 0..n-1 with the given seed and partitions
// them into training and evaluation sets. testFraction of the rows
// (rounded up, at least 1 when n > 1) land in the evaluation set.
func Split(n int, testFraction float64, seed int64) (train, test []int) {
	if n == 0 {
		return nil, nil
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	testSize := int(math.Ceil(float64(n) * testFraction))
	if testSize >= n {
		testSize = n - 1
	}
	if testSize < 0 {
		testSize = 0
	}

	test = append(test, perm[:testSize]...)
	train = append(train, perm[testSize:]...)
	return train, test
}

// Take gathers the rows and labels at the given indices.
func Take(X [][]float64, y []int, idx []int) ([][]float64, []int) {
	outX := make([][]float64, len(idx))
	outY := make([]int, len(idx))
	for k, i := range idx {
		outX[k] = X[i]
		outY[k] = y[i]
	}
	return outX, outY
}
