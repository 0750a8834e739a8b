package contexts_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sic/contexts"
	"github.com/stretchr/testify/require"
)

// TestDistance covers shared keys, one-sided keys and reflexivity.
func TestDistance(t *testing.T) {
	a := contexts.WithParams(contexts.KindThermal,
		contexts.Param{Name: "temperature", Value: 25},
		contexts.Param{Name: "pressure", Value: 1},
	)
	b := contexts.WithParams(contexts.KindThermal,
		contexts.Param{Name: "temperature", Value: 28},
		contexts.Param{Name: "humidity", Value: 4},
	)

	// (25-28)² + 1² + 4² = 9 + 1 + 16 = 26
	require.InDelta(t, math.Sqrt(26), a.Distance(b), 1e-12)
	require.Equal(t, a.Distance(b), b.Distance(a))
	require.Zero(t, a.Distance(a))
	require.Zero(t, contexts.Context{}.Distance(contexts.Context{}))
}

// TestUnion averages shared keys and inherits the left kind.
func TestUnion(t *testing.T) {
	a := contexts.New(contexts.KindThermal, map[string]float64{"t": 20, "p": 1})
	b := contexts.New(contexts.KindQuantum, map[string]float64{"t": 30, "e": 3})

	u := a.Union(b)
	require.Equal(t, contexts.KindThermal, u.Kind)
	require.Equal(t, 25.0, u.Param("t"))
	require.Equal(t, 1.0, u.Param("p"))
	require.Equal(t, 3.0, u.Param("e"))
	require.Equal(t, []string{"e", "p", "t"}, u.Keys())

	// New copies its input map.
	src := map[string]float64{"x": 1}
	c := contexts.New(contexts.KindSocial, src)
	src["x"] = 2
	require.Equal(t, 1.0, c.Param("x"))
}

// TestKind distinguishes builtin kinds from custom ones.
func TestKind(t *testing.T) {
	require.True(t, contexts.ParseKind(" Thermal ").IsBuiltin())
	require.Equal(t, contexts.KindThermal, contexts.ParseKind("THERMAL"))
	require.False(t, contexts.ParseKind("lab-bench").IsBuiltin())
}

// TestArenaLifetime checks handle resolution before and after Release.
func TestArenaLifetime(t *testing.T) {
	a := contexts.NewArena(contexts.Context{Kind: contexts.KindSocial})
	h, err := a.Add(contexts.Context{Kind: contexts.KindQuantum})
	require.NoError(t, err)
	require.Equal(t, contexts.Handle(1), h)
	require.Equal(t, 2, a.Len())

	c, err := a.Get(h)
	require.NoError(t, err)
	require.Equal(t, contexts.KindQuantum, c.Kind)

	_, err = a.Get(7)
	require.ErrorIs(t, err, contexts.ErrBadHandle)

	a.Release()
	_, err = a.Get(h)
	require.ErrorIs(t, err, contexts.ErrReleased)
	_, err = a.Add(contexts.Context{})
	require.ErrorIs(t, err, contexts.ErrReleased)
	require.Nil(t, a.Contexts())
}

// TestScaleAndPerspective covers the merge rules used by composition.
func TestScaleAndPerspective(t *testing.T) {
	require.Equal(t, contexts.ScaleQuantum, contexts.ScaleHuman.Intersect(contexts.ScaleQuantum))
	require.Equal(t, contexts.ScaleMesoscopic, contexts.ScaleMesoscopic.Intersect(contexts.ScaleCosmic))
	require.Equal(t, "human", contexts.ScaleHuman.String())

	obj := contexts.NewPerspective(contexts.PerspectiveObjective)
	stat := contexts.Perspective{Kind: contexts.PerspectiveStatistical, Weight: 3}

	fused := obj.Compose(stat, 0.8)
	require.Equal(t, contexts.PerspectiveObjective, fused.Kind)
	require.InDelta(t, 3.2, fused.Weight, 1e-12)

	kept := obj.Compose(stat, 0.2)
	require.Equal(t, stat, kept)
}
