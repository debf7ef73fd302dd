// SPDX-License-Identifier: MIT

package complexfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/builder"
	"github.com/katalvlaran/homalg/internal/complexfile"
	"github.com/katalvlaran/homalg/simplicial"
)

const triangleYAML = `
labels:
  "0": a
  1: b
simplices:
  - [0, 1, 2]
  - [2, 3]
`

const filtrationTOML = `
stages = [
  [[0, 1], [1, 2]],
  [[0, 2]],
  [],
  [[0, 1, 2]],
]
`

func TestDecode_YAMLComplex(t *testing.T) {
	doc, err := complexfile.Decode(complexfile.YAML, []byte(triangleYAML))
	require.NoError(t, err)
	require.False(t, doc.IsFiltration())

	c, err := doc.Complex()
	require.NoError(t, err)
	require.Equal(t, []int{4, 4, 1}, []int{c.CellCount(0), c.CellCount(1), c.CellCount(2)})
	require.Equal(t, "a", c.Label(0))
	require.Equal(t, "b", c.Label(1))
	require.Equal(t, "3", c.Label(3))

	f, err := doc.Filtration()
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())
}

func TestDecode_TOMLFiltration(t *testing.T) {
	doc, err := complexfile.Decode(complexfile.TOML, []byte(filtrationTOML))
	require.NoError(t, err)
	require.True(t, doc.IsFiltration())

	f, err := doc.Filtration()
	require.NoError(t, err)
	require.Equal(t, 4, f.Len())
	bt, err := f.BirthTime(simplicial.MustSimplex(0, 2))
	require.NoError(t, err)
	require.Equal(t, 1, bt)
	bt, err = f.BirthTime(simplicial.MustSimplex(0, 1, 2))
	require.NoError(t, err)
	require.Equal(t, 3, bt)

	c, err := doc.Complex()
	require.NoError(t, err)
	require.Equal(t, 7, c.Size())
}

func TestDecode_Errors(t *testing.T) {
	_, err := complexfile.Decode(complexfile.YAML, []byte("vertices: [1, 2]"))
	require.ErrorIs(t, err, complexfile.ErrDecode)

	_, err = complexfile.Decode(complexfile.TOML, []byte(`shape = "torus"`))
	require.ErrorIs(t, err, complexfile.ErrDecode)

	_, err = complexfile.Decode("json", nil)
	require.ErrorIs(t, err, complexfile.ErrFormat)

	doc, err := complexfile.Decode(complexfile.YAML, []byte("labels: {x: a}\nsimplices: [[0]]"))
	require.NoError(t, err)
	_, err = doc.Complex()
	require.ErrorIs(t, err, complexfile.ErrLabel)

	doc, err = complexfile.Decode(complexfile.YAML, []byte("simplices: [[0], []]"))
	require.NoError(t, err)
	_, err = doc.Complex()
	require.ErrorIs(t, err, simplicial.ErrEmptySimplex)

	_, err = (&complexfile.Document{}).Complex()
	require.ErrorIs(t, err, complexfile.ErrEmpty)

	both := &complexfile.Document{
		Simplices: []complexfile.VertexList{{0}},
		Stages:    [][]complexfile.VertexList{{{0}}},
	}
	_, err = both.Filtration()
	require.ErrorIs(t, err, complexfile.ErrAmbiguous)
}

func TestFormatOf(t *testing.T) {
	for name, want := range map[string]complexfile.Format{
		"a.yaml": complexfile.YAML, "b.YML": complexfile.YAML, "dir/c.toml": complexfile.TOML,
	} {
		got, err := complexfile.FormatOf(name)
		require.NoError(t, err)
		require.Equal(t, want, got, name)
	}
	_, err := complexfile.FormatOf("d.json")
	require.ErrorIs(t, err, complexfile.ErrFormat)
}

func TestEncode_ComplexRoundTrip(t *testing.T) {
	torus, err := builder.BuildComplex([]builder.BuilderOption{builder.WithSymbolLabels()}, builder.Torus())
	require.NoError(t, err)

	doc := complexfile.FromComplex(torus)
	require.Len(t, doc.Simplices, 14)
	require.Equal(t, "A", doc.Labels["0"])

	for _, format := range []complexfile.Format{complexfile.YAML, complexfile.TOML} {
		data, err := doc.Encode(format)
		require.NoError(t, err)
		back, err := complexfile.Decode(format, data)
		require.NoError(t, err)
		c, err := back.Complex()
		require.NoError(t, err)
		require.Equal(t, torus.String(), c.String(), format)
		require.Equal(t, "G", c.Label(6))
	}
}

func TestEncode_YAMLFlowStyle(t *testing.T) {
	c, err := builder.BuildComplex(nil, builder.Cycle(3))
	require.NoError(t, err)
	data, err := complexfile.FromComplex(c).Encode(complexfile.YAML)
	require.NoError(t, err)
	require.Contains(t, string(data), "- [0, 1]")
	require.NotContains(t, string(data), "labels")
}

func TestEncode_FiltrationRoundTrip(t *testing.T) {
	f, err := builder.RandomFlagFiltration(6, 0.7, builder.WithSeed(3), builder.WithUniformTimes(0, 2))
	require.NoError(t, err)

	doc := complexfile.FromFiltration(f)
	require.Len(t, doc.Stages, f.Len())

	path := filepath.Join(t.TempDir(), "flag.yaml")
	data, err := doc.Encode(complexfile.YAML)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	back, err := complexfile.ReadFile(path)
	require.NoError(t, err)
	g, err := back.Filtration()
	require.NoError(t, err)
	require.Equal(t, f.Len(), g.Len())
	for st := 0; st < f.Len(); st++ {
		require.Equal(t, f.At(st).String(), g.At(st).String(), "stage %d", st)
	}
}
