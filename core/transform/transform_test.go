package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seqcat-core/align"
)

func twoGenes(t *testing.T) *align.Alignment {
	t.Helper()
	a := align.New()
	err := a.AddGene(align.Gene{Name: "gene1", Length: 4}, []string{"x", "y"},
		map[string]string{"x": "ACGT", "y": "ACGA"})
	require.NoError(t, err)
	err = a.AddGene(align.Gene{Name: "gene2", Length: 3}, []string{"x", "y"},
		map[string]string{"x": "TTT", "y": "TTA"})
	require.NoError(t, err)
	return a
}

func TestConcatenate(t *testing.T) {
	a := twoGenes(t)
	a.SetMeta("x", "locality", "here")

	out, charsets, err := Concatenate(a)
	require.NoError(t, err)

	require.Equal(t, []align.Gene{{Name: ConcatGeneName, Length: 7}}, out.Genes())
	seq, ok := out.Sequence("x", ConcatGeneName)
	require.True(t, ok)
	require.Equal(t, "ACGTTTT", seq)
	seq, _ = out.Sequence("y", ConcatGeneName)
	require.Equal(t, "ACGATTA", seq)

	require.Equal(t, []align.Charset{
		{Name: "gene1", Start: 0, End: 4},
		{Name: "gene2", Start: 4, End: 7},
	}, charsets)

	// Metadata survives the merge.
	require.Equal(t, "here", out.Meta("x", "locality"))
}

func TestConcatenateEmpty(t *testing.T) {
	_, _, err := Concatenate(align.New())
	require.ErrorIs(t, err, align.ErrEmptyAlignment)
}

func TestSplitCodonPositions(t *testing.T) {
	a := align.New()
	require.NoError(t, a.AddGene(align.Gene{Name: "g", Length: 6}, []string{"x"},
		map[string]string{"x": "ACGTCA"}))

	out, err := SplitCodonPositions(a)
	require.NoError(t, err)
	require.Equal(t, []string{"g_pos1", "g_pos2", "g_pos3"}, geneNames(out))

	for gene, want := range map[string]string{
		"g_pos1": "AT",
		"g_pos2": "CC",
		"g_pos3": "GA",
	} {
		seq, ok := out.Sequence("x", gene)
		require.True(t, ok, gene)
		require.Equal(t, want, seq, gene)
	}
}

func TestSplitCodonPositionsFrame(t *testing.T) {
	a := align.New()
	require.NoError(t, a.AddGene(
		align.Gene{Name: "g", Length: 7, GeneticCode: 1, Frame: 1},
		[]string{"x"}, map[string]string{"x": "NACGTCA"}))

	out, err := SplitCodonPositions(a)
	require.NoError(t, err)

	// Frame 1: codons start at index 1, so pos1 reads indices 1, 4, ...
	seq, _ := out.Sequence("x", "g_pos1")
	require.Equal(t, "AT", seq)
	seq, _ = out.Sequence("x", "g_pos2")
	require.Equal(t, "CC", seq)
	// pos3 wraps to index 0 and keeps the leading character.
	seq, _ = out.Sequence("x", "g_pos3")
	require.Equal(t, "NGA", seq)

	// The genetic code rides along to each position gene.
	for _, g := range out.Genes() {
		require.Equal(t, 1, g.GeneticCode)
	}
}

// Splitting at frame 0 loses no characters: re-interleaving the three
// position genes restores the original sequence when its length is a
// multiple of three.
func TestSplitCodonPositionsReversible(t *testing.T) {
	const orig = "ACGTCAGGATAC"
	a := align.New()
	require.NoError(t, a.AddGene(align.Gene{Name: "g", Length: len(orig)}, []string{"x"},
		map[string]string{"x": orig}))

	out, err := SplitCodonPositions(a)
	require.NoError(t, err)

	p1, _ := out.Sequence("x", "g_pos1")
	p2, _ := out.Sequence("x", "g_pos2")
	p3, _ := out.Sequence("x", "g_pos3")
	require.Equal(t, len(orig), len(p1)+len(p2)+len(p3))

	rebuilt := make([]byte, 0, len(orig))
	for i := range p1 {
		rebuilt = append(rebuilt, p1[i], p2[i], p3[i])
	}
	require.Equal(t, orig, string(rebuilt))
}

func TestSplitCodonPositionsInvalidFrame(t *testing.T) {
	a := align.New()
	require.NoError(t, a.AddGene(align.Gene{Name: "g", Length: 3}, []string{"x"},
		map[string]string{"x": "ACG"}))

	// An out-of-range frame cannot enter the alignment in the first
	// place, so the split only ever sees frames 0 to 2.
	require.ErrorIs(t, a.SetGeneInfo("g", 0, 3), align.ErrInvalidFrame)
	_, err := SplitCodonPositions(a)
	require.NoError(t, err)
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]Op{
		"concat":       OpConcatenate,
		"concatenate":  OpConcatenate,
		"split-codons": OpSplitCodons,
		"codons":       OpSplitCodons,
	} {
		op, err := ParseOp(in)
		require.NoError(t, err, in)
		require.Equal(t, want, op, in)
	}
	_, err := ParseOp("reverse")
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	a := twoGenes(t)

	res, err := Apply(a, []Descriptor{{Op: OpConcatenate}})
	require.NoError(t, err)
	require.Equal(t, 1, res.Alignment.NumGenes())
	require.Len(t, res.Charsets, 2)

	// The input alignment is untouched.
	require.Equal(t, 2, a.NumGenes())

	// No descriptors: a clone of the input comes back.
	res, err = Apply(a, nil)
	require.NoError(t, err)
	require.True(t, a.Equal(res.Alignment))
	require.Nil(t, res.Charsets)

	// Split after concat works on the merged gene.
	res, err = Apply(a, []Descriptor{{Op: OpConcatenate}, {Op: OpSplitCodons}})
	require.NoError(t, err)
	require.Equal(t, []string{
		ConcatGeneName + "_pos1",
		ConcatGeneName + "_pos2",
		ConcatGeneName + "_pos3",
	}, geneNames(res.Alignment))
}

func geneNames(a *align.Alignment) []string {
	genes := a.Genes()
	names := make([]string, len(genes))
	for i, g := range genes {
		names[i] = g.Name
	}
	return names
}
