// SPDX-License-Identifier: MIT

package coherence

// Labeling assigns a cluster id to every context index. Ids are dense in
// [0, K) and appear in increasing order of the first index carrying them.
type Labeling []int

// Count returns K, the number of distinct clusters.
func (l Labeling) Count() int {
	k := 0
	for _, id := range l {
		if id+1 > k {
			k = id + 1
		}
	}

	return k
}

// Groups returns the member indices of every cluster, in ascending order,
// indexed by cluster id.
func (l Labeling) Groups() [][]int {
	groups := make([][]int, l.Count())
	for i, id := range l {
		groups[id] = append(groups[id], i)
	}

	return groups
}

// Sizes returns the member count of every cluster, indexed by cluster id.
func (l Labeling) Sizes() []int {
	sizes := make([]int, l.Count())
	for _, id := range l {
		sizes[id]++
	}

	return sizes
}

// FindClusters partitions the indices into connected components of the graph
// whose edges are the positive off-diagonal cells.
//
// Traversal is breadth-first from the lowest unvisited index, neighbors are
// scanned in ascending order, so the labeling is fully deterministic.
// An isolated index forms its own singleton cluster.
//
// Time:   O(N²) (dense adjacency scan).
// Memory: O(N) for labels and the queue.
func (m *Matrix) FindClusters() Labeling {
	n := m.Len()
	labels := make(Labeling, n)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	var v float64
	for start := 0; start < n; start++ {
		if labels[start] >= 0 {
			continue
		}
		queue := []int{start}
		labels[start] = next

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for w := 0; w < n; w++ {
				if w == u || labels[w] >= 0 {
					continue
				}
				if v, _ = m.data.At(u, w); v > 0 {
					labels[w] = next
					queue = append(queue, w)
				}
			}
		}
		next++
	}

	return labels
}

// NumClusters is shorthand for FindClusters().Count().
func (m *Matrix) NumClusters() int {
	return m.FindClusters().Count()
}
