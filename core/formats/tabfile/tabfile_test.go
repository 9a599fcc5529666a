package tabfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const table = "seqid\tlocality\tsequence_gene1\tsequence_gene2\n" +
	"A\tnorth\tACGT\tTTT\n" +
	"B\tsouth\tACGA\tTTA\n"

func TestRead(t *testing.T) {
	a, err := Read(strings.NewReader(table))
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B"}, a.Samples())
	genes := a.Genes()
	require.Len(t, genes, 2)
	require.Equal(t, "gene1", genes[0].Name)
	require.Equal(t, "gene2", genes[1].Name)
	require.Equal(t, 4, genes[0].Length)
	require.Equal(t, 3, genes[1].Length)

	seq, _ := a.Sequence("B", "gene1")
	require.Equal(t, "ACGA", seq)
	require.Equal(t, "north", a.Meta("A", "locality"))
}

func TestReadRaggedRow(t *testing.T) {
	in := "seqid\tsequence_g\nA\tACGT\tEXTRA\n"
	_, err := Read(strings.NewReader(in))
	require.ErrorIs(t, err, ErrMalformedTable)
	require.Contains(t, err.Error(), "line 2")
}

func TestReadNoSequenceColumns(t *testing.T) {
	in := "seqid\tlocality\nA\tnorth\n"
	_, err := Read(strings.NewReader(in))
	require.ErrorIs(t, err, ErrMalformedTable)
}

func TestRoundTrip(t *testing.T) {
	a, err := Read(strings.NewReader(table))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	require.Equal(t, table, buf.String())

	b, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	// Deterministic: writing again yields identical bytes.
	var again bytes.Buffer
	require.NoError(t, Write(&again, b))
	require.Equal(t, buf.String(), again.String())
}

func TestGeneNameNormalization(t *testing.T) {
	require.Equal(t, "coi", GeneName("sequence_coi"))
	require.Equal(t, "coi", GeneName("coi_sequence"))
	require.Equal(t, "sequence", GeneName("sequence"))
	require.Equal(t, "sequence_coi", SeqColumn("coi"))
}
