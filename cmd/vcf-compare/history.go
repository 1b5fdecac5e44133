package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vcf-compare/internal/duckdb"
)

func newHistoryCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List persisted comparison runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = viper.GetString("history.path")
			}
			if _, err := os.Stat(dbPath); err != nil {
				return fmt.Errorf("no history database at %s", dbPath)
			}

			s, err := duckdb.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.ListRuns()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tDATE\tQUERY\tTP\tFP\tFN\tPRECISION\tRECALL\tF1\tFILTERED")
			for _, r := range runs {
				filtered := "no"
				if r.Filtered {
					filtered = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%.4f\t%.4f\t%.4f\t%s\n",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.QueryPath,
					r.TP, r.FP, r.FN, r.Precision, r.Recall, r.F1, filtered)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "History database path (default from config)")

	return cmd
}
