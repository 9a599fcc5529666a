package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"seqcat-core/align"
	"seqcat-core/gencode"
	"seqcat-core/transform"
	"seqcat/internal/format"
)

const tabInput = "seqid\tlocality\tsequence_gene1\tsequence_gene2\n" +
	"x\there\tACGT\tTTT\n" +
	"y\tthere\tACGA\tTTA\n"

func newPipeline(files map[string]string) (*Pipeline, afero.Fs) {
	fs := afero.NewMemMapFs()
	for name, body := range files {
		_ = afero.WriteFile(fs, name, []byte(body), 0o644)
	}
	return New(fs, zerolog.Nop()), fs
}

func TestRunTabToNexus(t *testing.T) {
	p, fs := newPipeline(map[string]string{"in.tab": tabInput})

	err := p.Run(context.Background(), Request{
		Input:  "in.tab",
		Output: "out.nex",
	})
	require.NoError(t, err)

	out, err := afero.ReadFile(fs, "out.nex")
	require.NoError(t, err)
	s := string(out)
	require.True(t, strings.HasPrefix(s, "#NEXUS\n"))
	require.Contains(t, s, "dimensions ntax=2 nchar=7;")
	require.Contains(t, s, "charset gene1 = 1-4;")
	require.Contains(t, s, "charset gene2 = 5-7;")
}

func TestRunSniffsInput(t *testing.T) {
	p, fs := newPipeline(map[string]string{"in.data": ">x\nACGT\n>y\nACGA\n"})

	// No From and an unhelpful input extension: content sniffing decides.
	err := p.Run(context.Background(), Request{
		Input:  "in.data",
		Output: "out.phy",
	})
	require.NoError(t, err)

	out, err := afero.ReadFile(fs, "out.phy")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "2 4\n"))
}

func TestRunTransforms(t *testing.T) {
	p, fs := newPipeline(map[string]string{"in.tab": tabInput})

	err := p.Run(context.Background(), Request{
		Input:      "in.tab",
		Output:     "out.fas",
		Transforms: []transform.Descriptor{{Op: transform.OpConcatenate}},
	})
	require.NoError(t, err)

	out, err := afero.ReadFile(fs, "out.fas")
	require.NoError(t, err)
	require.Equal(t, ">x\nACGTTTT\n>y\nACGATTA\n", string(out))
}

func TestRunGeneInfo(t *testing.T) {
	p, fs := newPipeline(map[string]string{"in.tab": tabInput})

	err := p.Run(context.Background(), Request{
		Input:  "in.tab",
		Output: "out.zip",
		To:     format.PartitionFinder,
		Genes:  map[string]GeneInfo{"gene1": {Code: 1, Frame: 0}},
	})
	require.NoError(t, err)

	out, err := afero.ReadFile(fs, "out.zip")
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	rc, err := zr.File[1].Open()
	require.NoError(t, err)
	cfg, err := afero.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Contains(t, string(cfg), "gene1_pos1 = 1-4\\3;")
	require.Contains(t, string(cfg), "gene2 = 5-7;")
}

func TestRunUnknownGeneticCode(t *testing.T) {
	p, _ := newPipeline(map[string]string{"in.tab": tabInput})

	err := p.Run(context.Background(), Request{
		Input:  "in.tab",
		Output: "out.nex",
		Genes:  map[string]GeneInfo{"gene1": {Code: 7}},
	})
	require.ErrorIs(t, err, gencode.ErrUnknownGeneticCode)
	require.Contains(t, err.Error(), "gene1")
}

func TestRunUnknownGene(t *testing.T) {
	p, _ := newPipeline(map[string]string{"in.tab": tabInput})

	err := p.Run(context.Background(), Request{
		Input:  "in.tab",
		Output: "out.nex",
		Genes:  map[string]GeneInfo{"nope": {Code: 1}},
	})
	require.ErrorIs(t, err, align.ErrUnknownGene)
}

func TestRunNoPartialOutput(t *testing.T) {
	p, fs := newPipeline(map[string]string{"in.tab": "seqid\tlocality\nx\there\n"})

	err := p.Run(context.Background(), Request{
		Input:  "in.tab",
		Output: "out.nex",
	})
	require.Error(t, err)

	exists, err := afero.Exists(fs, "out.nex")
	require.NoError(t, err)
	require.False(t, exists, "a failed run must not leave an output file")
}

func TestRunOutputFormat(t *testing.T) {
	p, _ := newPipeline(map[string]string{"in.tab": tabInput})

	err := p.Run(context.Background(), Request{
		Input:  "in.tab",
		Output: "out.bin",
	})
	require.ErrorIs(t, err, format.ErrUnsupportedFormat)
}

func TestRunDirectoryInput(t *testing.T) {
	p, fs := newPipeline(map[string]string{
		"genes/gene1.fas": ">x\nACGT\n>y\nACGA\n",
		"genes/gene2.fas": ">x\nTTT\n>y\nTTA\n",
	})

	// A directory needs an explicit member format.
	err := p.Run(context.Background(), Request{Input: "genes", Output: "out.nex"})
	require.ErrorIs(t, err, format.ErrUnsupportedFormat)

	err = p.Run(context.Background(), Request{
		Input:  "genes",
		Output: "out.nex",
		From:   format.ZipFasta,
	})
	require.NoError(t, err)

	out, err := afero.ReadFile(fs, "out.nex")
	require.NoError(t, err)
	require.Contains(t, string(out), "charset gene2 = 5-7;")
}

func TestRunCanceled(t *testing.T) {
	p, fs := newPipeline(map[string]string{"in.tab": tabInput})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Run(ctx, Request{Input: "in.tab", Output: "out.nex"})
	require.ErrorIs(t, err, context.Canceled)

	exists, _ := afero.Exists(fs, "out.nex")
	require.False(t, exists)
}
