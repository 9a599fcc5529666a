// core/partition/partition.go

// Package partition exports a concatenated alignment in the layout
// PartitionFinder consumes: a relaxed Phylip alignment plus a cfg file
// whose [data_blocks] section lists each gene's 1-based inclusive
// range. Genes carrying a genetic-code table are treated as coding and
// emit three codon-position subsets instead of one block.
package partition

import (
	"bytes"
	"fmt"

	"seqcat-core/align"
	"seqcat-core/formats/phylip"
)

// Options are the knobs surfaced in the cfg file.
type Options struct {
	Alignment      string
	BranchLengths  string
	Models         string
	ModelSelection string
	Search         string
}

// DefaultOptions mirror the defaults of the upstream tool.
func DefaultOptions() Options {
	return Options{
		Alignment:      "partition_finder.phy",
		BranchLengths:  "linked",
		Models:         "mrbayes",
		ModelSelection: "aicc",
		Search:         "greedy",
	}
}

// Member is one file of the export bundle, in emit order.
type Member struct {
	Name string
	Data []byte
}

const cfgName = "partition_finder.cfg"

// Export produces the bundle: the alignment member named by
// opts.Alignment and the cfg member. The charset table is derived here
// from the alignment's gene offsets; no sequence data is transformed.
func Export(a *align.Alignment, opts Options) ([]Member, error) {
	if a.NumGenes() == 0 {
		return nil, fmt.Errorf("partition export: %w", align.ErrEmptyAlignment)
	}
	def := DefaultOptions()
	if opts.Alignment == "" {
		opts.Alignment = def.Alignment
	}
	if opts.BranchLengths == "" {
		opts.BranchLengths = def.BranchLengths
	}
	if opts.Models == "" {
		opts.Models = def.Models
	}
	if opts.ModelSelection == "" {
		opts.ModelSelection = def.ModelSelection
	}
	if opts.Search == "" {
		opts.Search = def.Search
	}

	var phy bytes.Buffer
	if err := phylip.Write(&phy, a); err != nil {
		return nil, err
	}

	var cfg bytes.Buffer
	fmt.Fprintf(&cfg, "## ALIGNMENT FILE ##\nalignment = %s;\n\n", opts.Alignment)
	fmt.Fprintf(&cfg, "## BRANCHLENGTHS: linked | unlinked ##\nbranchlengths = %s;\n\n", opts.BranchLengths)
	fmt.Fprintf(&cfg, "## MODELS OF EVOLUTION: all | allx | mrbayes | beast | gamma | gammai | <list> ##\nmodels = %s;\n\n", opts.Models)
	fmt.Fprintf(&cfg, "# MODEL SELECTION: AIC | AICc | BIC #\nmodel_selection = %s;\n\n", opts.ModelSelection)
	cfg.WriteString("## DATA BLOCKS: see manual for how to define ##\n[data_blocks]\n")
	for _, cs := range a.Charsets() {
		for _, line := range DataBlocks(cs) {
			cfg.WriteString(line + "\n")
		}
	}
	fmt.Fprintf(&cfg, "\n## SCHEMES, search: all | user | greedy | rcluster | rclusterf | kmeans ##\n[schemes]\nsearch = %s;\n", opts.Search)

	return []Member{
		{Name: opts.Alignment, Data: phy.Bytes()},
		{Name: cfgName, Data: cfg.Bytes()},
	}, nil
}

// DataBlocks renders one charset as cfg data-block lines. Coding genes
// (those with a genetic-code table assigned) yield three codon subsets
// with a stride of 3, offset by the gene's reading frame.
func DataBlocks(cs align.Charset) []string {
	if cs.GeneticCode == 0 {
		return []string{fmt.Sprintf("%s = %d-%d;", cs.Name, cs.Start+1, cs.End)}
	}
	lines := make([]string, 0, 3)
	for k := 0; k < 3; k++ {
		first := cs.Start + 1 + (cs.Frame+k)%3
		lines = append(lines, fmt.Sprintf("%s_pos%d = %d-%d\\3;", cs.Name, k+1, first, cs.End))
	}
	return lines
}
