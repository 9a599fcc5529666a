// internal/cli/root.go

// Package cli builds the seqcat command: one conversion per
// invocation, configured by flags, environment (SEQCAT_*) or a config
// file, resolved in that order of precedence by viper.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seqcat/internal/pipeline"
	"seqcat/internal/version"
)

const envPrefix = "SEQCAT"

// NewRootCommand builds the command against an explicit filesystem and
// output streams so tests can run it on afero.MemMapFs.
func NewRootCommand(fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	var (
		opt     Options
		cfgFile string
	)

	root := &cobra.Command{
		Use:   "seqcat <input> <output>",
		Short: "convert, concatenate and partition multi-gene sequence alignments",
		Long: `seqcat converts multi-gene alignments between tab tables, NEXUS,
FASTA, Phylip and Ali files (single or zipped per-gene), concatenates
genes, splits codon positions and exports PartitionFinder bundles.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				v.SetFs(fs)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			// Re-resolve scalar flags through viper so env/config
			// values apply when the flag was not set.
			opt.From = v.GetString("from")
			opt.To = v.GetString("to")
			opt.Strict = v.GetBool("strict")
			opt.PFBranchLengths = v.GetString("pf-branchlengths")
			opt.PFModels = v.GetString("pf-models")
			opt.PFModelSelection = v.GetString("pf-model-selection")
			opt.PFSearch = v.GetString("pf-search")
			opt.Verbose = v.GetBool("verbose")

			req, err := opt.Request(args[0], args[1])
			if err != nil {
				return err
			}

			log := newLogger(stderr, opt.Verbose)
			p := pipeline.New(fs, log)
			if err := p.Run(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "wrote %s\n", req.Output)
			return nil
		},
	}

	f := root.Flags()
	f.StringVar(&opt.From, "from", "auto", "input format: auto | tab | nexus | fasta | phylip | ali | zip-fasta | zip-phylip | zip-ali")
	f.StringVar(&opt.To, "to", "auto", "output format (auto derives it from the output extension; also: partitionfinder)")
	f.StringSliceVarP(&opt.Transforms, "transform", "t", nil, "transform to apply, in order: concat | split-codons (repeatable)")
	f.BoolVar(&opt.Strict, "strict", false, "fail on sample-set mismatches between archive members instead of gap-filling")
	f.StringSliceVar(&opt.GeneCodes, "gene-code", nil, "NCBI genetic-code table per gene, as gene=id (repeatable)")
	f.StringSliceVar(&opt.GeneFrames, "gene-frame", nil, "reading-frame offset per gene, as gene=0|1|2 (repeatable)")
	f.StringVar(&opt.PFBranchLengths, "pf-branchlengths", "", "partitionfinder branchlengths (default linked)")
	f.StringVar(&opt.PFModels, "pf-models", "", "partitionfinder models (default mrbayes)")
	f.StringVar(&opt.PFModelSelection, "pf-model-selection", "", "partitionfinder model selection (default aicc)")
	f.StringVar(&opt.PFSearch, "pf-search", "", "partitionfinder scheme search (default greedy)")
	f.BoolVarP(&opt.Verbose, "verbose", "v", false, "log pipeline stages to stderr")
	f.StringVar(&cfgFile, "config", "", "config file (yaml), read by viper")

	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).With().Timestamp().Logger()
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(afero.NewOsFs(), stdout, stderr)
	root.SetArgs(argv)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "seqcat:", err)
		return 1
	}
	return 0
}
