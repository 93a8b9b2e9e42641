package tree

import (
	"errors"
	"fmt"
	"sort"
)

// Config controls decision-tree fitting.
type Config struct {
	// MaxDepth limits tree depth; 0 means unlimited.
	MaxDepth int

	// MinSamplesSplit is the minimum number of rows a node needs to be
	// considered for splitting.
	MinSamplesSplit int

	// BalancedWeights weights each class by n/(k*count) to counteract
	// label imbalance between approved and not-approved.
	BalancedWeights bool
}

// DefaultConfig returns the standard fitting configuration.
func DefaultConfig() Config {
	return Config{
		MinSamplesSplit: 2,
		BalancedWeights: true,
	}
}

// Node is one decision node. Leaf nodes have no children and carry the
// majority class; interior nodes route rows by x[Feature] <= Threshold.
type Node struct {
	Feature   int
	Threshold float64
	Left      *Node
	Right     *Node
	Class     int
	Samples   int
	Impurity  float64
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool { return n.Left == nil }

// Classifier is a fitted binary decision tree bound to the exact
// ordered feature-column list it was trained on. Read-only after Fit;
// safe for concurrent prediction.
type Classifier struct {
	Root    *Node
	Columns []string
}

// ErrNotFitted is returned by Predict on a classifier without a tree.
var ErrNotFitted = errors.New("classifier is not fitted")

// Fit grows a binary CART tree on X (rows in the order of columns)
// with labels y in {0, 1}, using gini impurity. Splitting is fully
// deterministic: features are scanned in column order and the first
// best split wins, so identical data always yields an identical tree.
func Fit(X [][]float64, y []int, columns []string, cfg Config) (*Classifier, error) {
	if len(X) == 0 {
		return nil, errors.New("fit: empty dataset")
	}
	if len(X) != len(y) {
		return nil, fmt.Errorf("fit: %d rows but %d labels", len(X), len(y))
	}
	for i, row := range X {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("fit: row %d has %d features, want %d", i, len(row), len(columns))
		}
	}
	for i, label := range y {
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("fit: row %d has label %d, want 0 or 1", i, label)
		}
	}
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}

	weights := classWeights(y, cfg.BalancedWeights)

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}

	b := &builder{X: X, y: y, weights: weights, cfg: cfg}
	root := b.grow(idx, 1)

	return &Classifier{Root: root, Columns: append([]string(nil), columns...)}, nil
}

// Predict returns the predicted label for one feature vector, which
// must match the training column order exactly.
func (c *Classifier) Predict(x []float64) (int, error) {
	if c == nil || c.Root == nil {
		return 0, ErrNotFitted
	}
	if len(x) != len(c.Columns) {
		return 0, fmt.Errorf("predict: vector has %d features, want %d", len(x), len(c.Columns))
	}
	n := c.Root
	for !n.Leaf() {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Class, nil
}

// PredictAll predicts a label for every row.
func (c *Classifier) PredictAll(X [][]float64) ([]int, error) {
	out := make([]int, len(X))
	for i, row := range X {
		label, err := c.Predict(row)
		if err != nil {
			return nil, err
		}
		out[i] = label
	}
	return out, nil
}

// classWeights returns per-class sample weights. Balanced weighting
// follows n/(k*count_c) over the classes actually present.
func classWeights(y []int, balanced bool) [2]float64 {
	w := [2]float64{1, 1}
	if !balanced {
		return w
	}
	var counts [2]float64
	for _, label := range y {
		counts[label]++
	}
	classes := 0
	for _, c := range counts {
		if c > 0 {
			classes++
		}
	}
	n := float64(len(y))
	for c, count := range counts {
		if count > 0 {
			w[c] = n / (float64(classes) * count)
		}
	}
	return w
}

type builder struct {
	X       [][]float64
	y       []int
	weights [2]float64
	cfg     Config
}

func (b *builder) grow(idx []int, depth int) *Node {
	counts := b.countClasses(idx)
	node := &Node{
		Samples:  len(idx),
		Impurity: gini(counts),
		Class:    majority(counts),
	}

	if node.Impurity == 0 || len(idx) < b.cfg.MinSamplesSplit {
		return node
	}
	if b.cfg.MaxDepth > 0 && depth > b.cfg.MaxDepth {
		return node
	}

	feature, threshold, gain := b.bestSplit(idx, counts)
	if gain <= 1e-12 {
		return node
	}

	var left, right []int
	for _, i := range idx {
		if b.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return node
	}

	node.Feature = feature
	node.Threshold = threshold
	node.Left = b.grow(left, depth+1)
	node.Right = b.grow(right, depth+1)
	return node
}

// bestSplit scans every feature in column order, sweeping sorted
// values and testing the midpoint between each pair of distinct
// neighbors. Strictly-greater comparison keeps the first best split,
// making tree structure reproducible.
func (b *builder) bestSplit(idx []int, counts [2]float64) (feature int, threshold float64, gain float64) {
	total := counts[0] + counts[1]
	parent := gini(counts)

	order := make([]int, len(idx))
	for f := 0; f < len(b.X[idx[0]]); f++ {
		copy(order, idx)
		sort.SliceStable(order, func(i, j int) bool {
			return b.X[order[i]][f] < b.X[order[j]][f]
		})

		var left [2]float64
		for k := 0; k < len(order)-1; k++ {
			i := order[k]
			left[b.y[i]] += b.weights[b.y[i]]

			v, next := b.X[i][f], b.X[order[k+1]][f]
			if v == next {
				continue
			}

			right := [2]float64{counts[0] - left[0], counts[1] - left[1]}
			nl, nr := left[0]+left[1], right[0]+right[1]
			weighted := (nl*gini(left) + nr*gini(right)) / total
			if g := parent - weighted; g > gain {
				gain = g
				feature = f
				threshold = (v + next) / 2
			}
		}
	}
	return feature, threshold, gain
}

func (b *builder) countClasses(idx []int) [2]float64 {
	var counts [2]float64
	for _, i := range idx {
		counts[b.y[i]] += b.weights[b.y[i]]
	}
	return counts
}

func gini(counts [2]float64) float64 {
	total := counts[0] + counts[1]
	if total == 0 {
		return 0
	}
	p0 := counts[0] / total
	p1 := counts[1] / total
	return 1 - p0*p0 - p1*p1
}

func majority(counts [2]float64) int {
	if counts[1] > counts[0] {
		return 1
	}
	return 0
}
