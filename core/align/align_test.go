package align

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func twoGenes(t *testing.T) *Alignment {
	t.Helper()
	a := New()
	require.NoError(t, a.AddGene(Gene{Name: "gene1"}, []string{"A", "B"},
		map[string]string{"A": "ACGT", "B": "ACGA"}))
	require.NoError(t, a.AddGene(Gene{Name: "gene2"}, []string{"A", "B"},
		map[string]string{"A": "TTT", "B": "TTA"}))
	return a
}

func TestConcatAndCharsets(t *testing.T) {
	a := twoGenes(t)

	seq, ok := a.ConcatSequence("A")
	require.True(t, ok)
	require.Equal(t, "ACGTTTT", seq)
	seq, _ = a.ConcatSequence("B")
	require.Equal(t, "ACGATTA", seq)
	require.Equal(t, 7, a.TotalLength())

	cs := a.Charsets()
	require.Equal(t, []Charset{
		{Name: "gene1", Start: 0, End: 4},
		{Name: "gene2", Start: 4, End: 7},
	}, cs)
}

func TestAddGeneGapFill(t *testing.T) {
	a := New()
	require.NoError(t, a.AddGene(Gene{Name: "g1"}, []string{"x", "y"},
		map[string]string{"x": "AC", "y": "GT"}))
	// z appears only in the second gene; x has no data for it.
	require.NoError(t, a.AddGene(Gene{Name: "g2"}, []string{"y", "z"},
		map[string]string{"y": "TTT", "z": "AAA"}))

	require.Equal(t, []string{"x", "y", "z"}, a.Samples())
	seq, _ := a.Sequence("x", "g2")
	require.Equal(t, "???", seq)
	seq, _ = a.Sequence("z", "g1")
	require.Equal(t, "??", seq)
	seq, _ = a.Sequence("z", "g2")
	require.Equal(t, "AAA", seq)
}

func TestAddGenePadsShortSequences(t *testing.T) {
	a := New()
	require.NoError(t, a.AddGene(Gene{Name: "g"}, []string{"a", "b"},
		map[string]string{"a": "ACGTAC", "b": "ACG"}))
	seq, _ := a.Sequence("b", "g")
	require.Equal(t, "ACG???", seq)
	g, _ := a.Gene("g")
	require.Equal(t, 6, g.Length)
}

func TestAddGeneErrors(t *testing.T) {
	a := twoGenes(t)
	err := a.AddGene(Gene{Name: "gene1"}, nil, nil)
	require.ErrorIs(t, err, ErrDuplicateGene)

	err = a.AddGene(Gene{Name: "g3", Frame: 3}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidFrame)

	err = a.AddGene(Gene{Name: "g3", Length: 2}, []string{"A"},
		map[string]string{"A": "ACGT"})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrDuplicateGene))
}

func TestSetGeneInfo(t *testing.T) {
	a := twoGenes(t)
	require.NoError(t, a.SetGeneInfo("gene1", 2, 1))
	g, _ := a.Gene("gene1")
	require.Equal(t, 2, g.GeneticCode)
	require.Equal(t, 1, g.Frame)

	require.ErrorIs(t, a.SetGeneInfo("nope", 1, 0), ErrUnknownGene)
	require.ErrorIs(t, a.SetGeneInfo("gene1", 1, 5), ErrInvalidFrame)
}

func TestCloneIsIndependent(t *testing.T) {
	a := twoGenes(t)
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.SetSequence("A", "gene1", "GGGG"))
	require.False(t, a.Equal(b))
	seq, _ := a.Sequence("A", "gene1")
	require.Equal(t, "ACGT", seq)
}

func TestSelectGenes(t *testing.T) {
	a := twoGenes(t)
	b, err := a.SelectGenes("gene2")
	require.NoError(t, err)
	require.Equal(t, 1, b.NumGenes())
	require.Equal(t, []string{"A", "B"}, b.Samples())
	seq, _ := b.Sequence("B", "gene2")
	require.Equal(t, "TTA", seq)

	_, err = a.SelectGenes("missing")
	require.ErrorIs(t, err, ErrUnknownGene)
}

func TestMetadataRoundTrip(t *testing.T) {
	a := twoGenes(t)
	a.SetMeta("A", "locality", "here")
	a.SetMeta("B", "locality", "there")
	require.Equal(t, []string{"locality"}, a.MetaColumns())
	require.Equal(t, "there", a.Meta("B", "locality"))
	require.Equal(t, "", a.Meta("A", "voucher"))

	b := a.Clone()
	require.True(t, a.Equal(b))
	b.SetMeta("A", "locality", "elsewhere")
	require.False(t, a.Equal(b))
}
