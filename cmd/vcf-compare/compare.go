package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vcf-compare/internal/compare"
	"github.com/inodb/vcf-compare/internal/duckdb"
	"github.com/inodb/vcf-compare/internal/output"
)

// Non-PASS labels DeepSomatic assigns: reference-only calls, germline
// variants and low-quality calls. Used by --pass-only.
var nonPassFilters = []string{"RefCall", "GERMLINE", "LowQual"}

func newCompareCmd() *cobra.Command {
	var (
		truthPath      string
		queryPath      string
		outputDir      string
		excludeFilters []string
		passOnly       bool
		region         string
		chromosomes    []string
		minVAF         float64
		sample         string
		store          bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a query VCF against a ground-truth VCF",
		Example: `  vcf-compare compare --truth truth.vcf.gz --query output.vcf.gz
  vcf-compare compare --truth truth.vcf --query output.vcf --pass-only --min-vaf 0.05
  vcf-compare compare --truth truth.vcf --query output.vcf --region 10000000-10100000 --chromosomes 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			// Config-file defaults apply only when the flag was not given;
			// the config is loaded after flag registration, so resolve here.
			if !cmd.Flags().Changed("min-vaf") {
				minVAF = viper.GetFloat64("filters.min_vaf")
			}
			if !cmd.Flags().Changed("sample") {
				sample = viper.GetString("sample")
			}

			opts := compare.FilterOptions{
				ExcludeFilters:    excludeFilters,
				Chromosomes:       chromosomes,
				MinAlleleFraction: minVAF,
				Sample:            sample,
			}
			if passOnly {
				opts.ExcludeFilters = append(opts.ExcludeFilters, nonPassFilters...)
			}
			if region != "" {
				r, err := parseRegion(region)
				if err != nil {
					return err
				}
				opts.Region = r
			}

			engine := compare.NewEngine()
			engine.SetLogger(logger)

			report, err := engine.Run(truthPath, queryPath, opts)
			if err != nil {
				return err
			}

			output.WriteSummary(os.Stdout, report)

			if outputDir != "" {
				if err := writeCSV(outputDir, report); err != nil {
					return err
				}
			}

			if store {
				runID, err := storeReport(report)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "\nStored as run %d\n", runID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&truthPath, "truth", "", "Ground-truth VCF file (required)")
	cmd.Flags().StringVar(&queryPath, "query", "", "Query VCF file to evaluate (required)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for comparison_results.csv (omit to skip)")
	cmd.Flags().StringSliceVar(&excludeFilters, "exclude-filter", nil, "Drop records with this FILTER label (repeatable)")
	cmd.Flags().BoolVar(&passOnly, "pass-only", false, "Drop RefCall, GERMLINE and LowQual records")
	cmd.Flags().StringVar(&region, "region", "", "Inclusive position range MIN-MAX")
	cmd.Flags().StringSliceVar(&chromosomes, "chromosomes", nil, "Only compare these chromosomes")
	cmd.Flags().Float64Var(&minVAF, "min-vaf", 0, "Drop records with allele fraction below this")
	cmd.Flags().StringVar(&sample, "sample", "", "Sample column for allele-fraction extraction (default: first)")
	cmd.Flags().BoolVar(&store, "store", false, "Persist the run to the history database")
	cmd.MarkFlagRequired("truth")
	cmd.MarkFlagRequired("query")

	return cmd
}

// parseRegion parses an inclusive "MIN-MAX" position range.
func parseRegion(s string) (*compare.Region, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid region %q: expected MIN-MAX", s)
	}
	min, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid region start %q", parts[0])
	}
	max, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid region end %q", parts[1])
	}
	return &compare.Region{Min: min, Max: max}, nil
}

func writeCSV(dir string, report *compare.Report) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, "comparison_results.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	if err := output.NewCSVWriter(f).WriteResult(report.Result()); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	fmt.Fprintf(os.Stdout, "\nDetailed results saved to %s\n", path)
	return nil
}

func storeReport(report *compare.Report) (int64, error) {
	s, err := duckdb.Open(viper.GetString("history.path"))
	if err != nil {
		return 0, err
	}
	defer s.Close()

	return s.SaveReport(report)
}
