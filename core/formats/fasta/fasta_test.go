package fasta

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seqcat-core/align"
)

func TestReadWrapped(t *testing.T) {
	in := ">s1\nACGT\nACGT\n\n>s2\nTTTTTTTT\n"
	a, err := Read(strings.NewReader(in), "coi")
	require.NoError(t, err)

	require.Equal(t, []string{"s1", "s2"}, a.Samples())
	seq, _ := a.Sequence("s1", "coi")
	require.Equal(t, "ACGTACGT", seq)
	g, _ := a.Gene("coi")
	require.Equal(t, 8, g.Length)
}

func TestReadPadsRagged(t *testing.T) {
	a, err := Read(strings.NewReader(">s1\nACGTAC\n>s2\nACG\n"), "g")
	require.NoError(t, err)
	seq, _ := a.Sequence("s2", "g")
	require.Equal(t, "ACG???", seq)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("ACGT\n>s1\nACGT\n"), "g")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")

	_, err = Read(strings.NewReader(">\nACGT\n"), "g")
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	in := ">s1\nACGTACGT\n>s2\nTTTT-CCC\n"
	a, err := Read(strings.NewReader(in), "coi")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	require.Equal(t, in, buf.String())

	b, err := Read(bytes.NewReader(buf.Bytes()), "coi")
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestWriteSkipsEmptySamples(t *testing.T) {
	a := align.New()
	require.NoError(t, a.AddGene(align.Gene{Name: "g"}, []string{"s1", "s2"},
		map[string]string{"s1": "ACGT", "s2": "??--"}))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	require.Equal(t, ">s1\nACGT\n", buf.String())
}

func TestHasData(t *testing.T) {
	require.False(t, HasData("??--NNnn"))
	require.True(t, HasData("???A"))
	require.False(t, HasData(""))
}
