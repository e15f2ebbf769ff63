package anomaly

import (
	"math"
	"math/rand"
)

// treeNode is one node of an isolation tree in flat form. Left/Right
// are indices into the tree's node slice; -1 marks a leaf, in which
// case Size is the number of training samples that reached it.
type treeNode struct {
	Feature int     `json:"f"`
	Split   float64 `json:"v"`
	Left    int     `json:"l"`
	Right   int     `json:"r"`
	Size    int     `json:"n"`
}

type isolationTree struct {
	Nodes []treeNode `json:"nodes"`
}

// Forest is an isolation forest. Scores follow the original paper's
// convention: s(x) = 2^(-E[h(x)]/c(n)) in (0, 1], higher means more
// anomalous.
type Forest struct {
	Trees      []isolationTree `json:"trees"`
	SampleSize int             `json:"sample_size"`
	Dim        int             `json:"dim"`
}

// FitForest builds numTrees isolation trees over data, each on a random
// subsample of at most sampleSize rows. The forest is deterministic for
// a fixed seed.
func FitForest(data [][]float64, numTrees, sampleSize int, seed int64) *Forest {
	if sampleSize > len(data) {
		sampleSize = len(data)
	}

	rng := rand.New(rand.NewSource(seed))
	maxHeight := int(math.Ceil(math.Log2(float64(sampleSize)))) + 1

	forest := &Forest{
		Trees:      make([]isolationTree, 0, numTrees),
		SampleSize: sampleSize,
		Dim:        len(data[0]),
	}

	for range numTrees {
		sample := subsample(data, sampleSize, rng)
		tree := isolationTree{}
		buildNode(&tree, sample, 0, maxHeight, rng)
		forest.Trees = append(forest.Trees, tree)
	}

	return forest
}

func subsample(data [][]float64, size int, rng *rand.Rand) [][]float64 {
	perm := rng.Perm(len(data))
	sample := make([][]float64, size)
	for i := range size {
		sample[i] = data[perm[i]]
	}
	return sample
}

// buildNode appends the subtree for rows to tree.Nodes and returns its
// root index.
func buildNode(tree *isolationTree, rows [][]float64, depth, maxHeight int, rng *rand.Rand) int {
	idx := len(tree.Nodes)
	tree.Nodes = append(tree.Nodes, treeNode{Left: -1, Right: -1, Size: len(rows)})

	if len(rows) <= 1 || depth >= maxHeight {
		return idx
	}

	feature, split, ok := pickSplit(rows, rng)
	if !ok {
		// All rows identical across every feature.
		return idx
	}

	var left, right [][]float64
	for _, row := range rows {
		if row[feature] < split {
			left = append(left, row)
		} else {
			right = append(right, row)
		}
	}

	tree.Nodes[idx].Feature = feature
	tree.Nodes[idx].Split = split
	leftIdx := buildNode(tree, left, depth+1, maxHeight, rng)
	rightIdx := buildNode(tree, right, depth+1, maxHeight, rng)
	tree.Nodes[idx].Left = leftIdx
	tree.Nodes[idx].Right = rightIdx

	return idx
}

// pickSplit chooses a random feature with spread and a uniform split
// point strictly inside its (min, max) range.
func pickSplit(rows [][]float64, rng *rand.Rand) (int, float64, bool) {
	dim := len(rows[0])
	for _, feature := range rng.Perm(dim) {
		lo, hi := rows[0][feature], rows[0][feature]
		for _, row := range rows[1:] {
			if row[feature] < lo {
				lo = row[feature]
			}
			if row[feature] > hi {
				hi = row[feature]
			}
		}
		if hi > lo {
			return feature, lo + rng.Float64()*(hi-lo), true
		}
	}
	return 0, 0, false
}

// Score returns the anomaly score of vec in (0, 1].
func (f *Forest) Score(vec []float64) float64 {
	var total float64
	for i := range f.Trees {
		total += f.Trees[i].pathLength(vec)
	}
	avg := total / float64(len(f.Trees))

	// c(1) is 0; normalize by 1 instead so a single-row training
	// sample still yields a defined score rather than 0/0.
	norm := avgPathLength(f.SampleSize)
	if norm == 0 {
		norm = 1
	}
	return math.Exp2(-avg / norm)
}

func (t *isolationTree) pathLength(vec []float64) float64 {
	idx := 0
	depth := 0.0
	for {
		node := t.Nodes[idx]
		if node.Left < 0 {
			return depth + avgPathLength(node.Size)
		}
		if vec[node.Feature] < node.Split {
			idx = node.Left
		} else {
			idx = node.Right
		}
		depth++
	}
}

const eulerGamma = 0.5772156649015329

// avgPathLength is c(n), the expected path length of an unsuccessful
// BST search over n samples. c(2) is 1 by definition; the harmonic
// approximation only holds from n = 3 up.
func avgPathLength(n int) float64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	}
	fn := float64(n)
	return 2*(math.Log(fn-1)+eulerGamma) - 2*(fn-1)/fn
}
