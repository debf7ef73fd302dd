// SPDX-License-Identifier: MIT

package homology_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/builder"
	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/homology"
	"github.com/katalvlaran/homalg/numbers"
	"github.com/katalvlaran/homalg/simplicial"
)

type Z = numbers.Int

func complexOf(t *testing.T, cons ...builder.Constructor) *simplicial.Complex {
	t.Helper()
	c, err := builder.BuildComplex([]builder.BuilderOption{builder.WithDisjointUnion(), builder.WithSeed(7)}, cons...)
	require.NoError(t, err)

	return c
}

func computeOver[R algebra.Ring[R]](t *testing.T, sc *simplicial.Complex, opts ...homology.Option) (*chain.Complex[R], *homology.Homology[R]) {
	t.Helper()
	cc, err := chain.FromSimplicial[R](sc)
	require.NoError(t, err)
	h, err := homology.Compute(context.Background(), cc, opts...)
	require.NoError(t, err)

	return cc, h
}

// requireCycles checks that every generator is a cycle of its degree.
func requireCycles[R algebra.Ring[R]](t *testing.T, cc *chain.Complex[R], h *homology.Homology[R]) {
	t.Helper()
	for _, g := range h.Groups() {
		for _, z := range g.Generators() {
			d, err := z.Degree()
			require.NoError(t, err)
			require.Equal(t, g.Degree(), d)
			bd, err := cc.Apply(z)
			require.NoError(t, err)
			require.True(t, bd.IsZero(), "∂(%s) = %s", z, bd)
		}
	}
}

func TestCompute_FilledTriangle(t *testing.T) {
	cc, h := computeOver[Z](t, complexOf(t, builder.Simplex(2)))
	require.Equal(t, []int{1, 0, 0}, h.Betti())
	require.Equal(t, "Z", h.Group(0).String())
	require.True(t, h.Group(1).IsTrivial())
	require.True(t, h.Group(2).IsTrivial())
	require.Equal(t, "H_0 = Z\nH_1 = 0\nH_2 = 0", h.String())
	requireCycles(t, cc, h)
}

func TestCompute_HollowTriangle(t *testing.T) {
	cc, h := computeOver[Z](t, complexOf(t, builder.Cycle(3)))
	require.Equal(t, []int{1, 1}, h.Betti())

	gens := h.Group(1).Generators()
	require.Len(t, gens, 1)
	loop := chain.Boundary(chain.Elementary[Z](simplicial.MustSimplex(0, 1, 2)))
	require.True(t, gens[0].Equal(loop) || gens[0].Equal(loop.Neg()), gens[0].String())
	requireCycles(t, cc, h)
}

func TestCompute_ClassicalSpaces(t *testing.T) {
	tests := []struct {
		name    string
		ctor    builder.Constructor
		betti   []int
		torsion map[int][]string
		render  []string
	}{
		{"circle", builder.Sphere(1), []int{1, 1}, nil, []string{"Z", "Z"}},
		{"sphere", builder.Sphere(2), []int{1, 0, 1}, nil, []string{"Z", "0", "Z"}},
		{"torus", builder.Torus(), []int{1, 2, 1}, nil, []string{"Z", "Z ⊕ Z", "Z"}},
		{"projective plane", builder.ProjectivePlane(), []int{1, 0, 0}, map[int][]string{1: {"2"}}, []string{"Z", "Z/2", "0"}},
		{"klein bottle", builder.KleinBottle(), []int{1, 1, 0}, map[int][]string{1: {"2"}}, []string{"Z", "Z ⊕ Z/2", "0"}},
		{"disk", builder.Disk(6), []int{1, 0, 0}, nil, []string{"Z", "0", "0"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := complexOf(t, tc.ctor)
			cc, h := computeOver[Z](t, sc, homology.WithParallelism(2))
			require.Equal(t, tc.betti, h.Betti())
			require.Equal(t, sc.EulerCharacteristic(), h.EulerCharacteristic())
			for i, want := range tc.render {
				require.Equal(t, want, h.Group(i).String(), "H_%d", i)
				var got []string
				for _, d := range h.Group(i).TorsionDivisors() {
					got = append(got, d.String())
				}
				require.Equal(t, tc.torsion[i], got, "torsion of H_%d", i)
			}
			requireCycles(t, cc, h)
		})
	}
}

func TestCompute_FieldCoefficients(t *testing.T) {
	rp2 := complexOf(t, builder.ProjectivePlane())

	_, mod2 := computeOver[numbers.Z2](t, rp2)
	require.Equal(t, []int{1, 1, 1}, mod2.Betti())
	require.Equal(t, "Z/2", mod2.Group(1).String())

	_, mod3 := computeOver[numbers.Z3](t, rp2)
	require.Equal(t, []int{1, 0, 0}, mod3.Betti())

	_, rat := computeOver[numbers.Rational](t, complexOf(t, builder.Torus()))
	require.Equal(t, []int{1, 2, 1}, rat.Betti())
	require.Equal(t, "Q ⊕ Q", rat.Group(1).String())

	_, fr := computeOver[numbers.Fr](t, complexOf(t, builder.KleinBottle()))
	require.Equal(t, []int{1, 1, 0}, fr.Betti())
}

func TestCompute_DisjointUnion(t *testing.T) {
	cc, h := computeOver[Z](t, complexOf(t, builder.Sphere(1), builder.Sphere(1), builder.Point()))
	require.Equal(t, []int{3, 2}, h.Betti())
	require.Equal(t, "Z + Z + Z", h.Group(0).Format(homology.ASCII))
	requireCycles(t, cc, h)
}

func TestCompute_RandomFlagEuler(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		sc, err := builder.BuildComplex([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomFlag(9, 0.45))
		require.NoError(t, err)
		cc, h := computeOver[Z](t, sc)
		require.Equal(t, sc.EulerCharacteristic(), h.EulerCharacteristic(), "seed %d", seed)
		require.Equal(t, len(sc.Components()), h.Betti()[0], "seed %d", seed)
		requireCycles(t, cc, h)
	}
}

func TestCompute_EmptyComplex(t *testing.T) {
	_, h := computeOver[Z](t, simplicial.NewComplex(nil))
	require.Equal(t, -1, h.Dim())
	require.Empty(t, h.Betti())
	require.True(t, h.Group(4).IsTrivial())
}

func TestCompute_CapabilityError(t *testing.T) {
	cc, err := chain.FromSimplicial[numbers.Z4](complexOf(t, builder.Cycle(4)))
	require.NoError(t, err)
	_, err = homology.Compute(context.Background(), cc)
	require.ErrorIs(t, err, algebra.ErrCapability)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { homology.WithParallelism(-1) })
	require.Panics(t, func() { homology.WithLogger(nil) })
	require.Panics(t, func() { homology.WithMulStrategy(nil) })
}
