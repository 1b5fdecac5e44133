package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inodb/vcf-compare/internal/compare"
	"github.com/inodb/vcf-compare/internal/output"
)

func newStatsCmd() *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "stats <vcf-file>",
		Short: "Summarize variant classes and quality scores in a VCF",
		Example: `  vcf-compare stats output.vcf.gz
  cat output.vcf | vcf-compare stats -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			engine := compare.NewEngine()
			engine.SetLogger(logger)

			in, err := engine.Load(args[0], sample)
			if err != nil {
				return err
			}

			output.WriteStats(os.Stdout, args[0], compare.Summarize(in.Records))
			return nil
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "", "Sample column for allele-fraction extraction (default: first)")

	return cmd
}
