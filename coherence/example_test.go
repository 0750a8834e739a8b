package coherence_test

import (
	"fmt"

	"github.com/katalvlaran/sic/coherence"
)

// ExampleAnalyze runs the full pipeline on nine contexts from three
// unrelated domains.
func ExampleAnalyze() {
	rep, err := coherence.Analyze(referenceSet(), 0.1, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("clusters:", rep.Labels.Groups())
	fmt.Println("collapsed:", rep.Collapsed())
	// Output:
	// clusters: [[0 1 2 3] [4 5 6] [7 8]]
	// collapsed: [0 1 2]
}

// ExampleMatrix_LocalCollapse shows the singleton convention.
func ExampleMatrix_LocalCollapse() {
	m := coherence.FromContexts(referenceSet())
	c, _ := m.LocalCollapse([]int{5}, 0.9)
	fmt.Println(c.Gamma, c.Collapsed)
	// Output: 1 true
}
