package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/inodb/vcf-compare/internal/compare"
)

// WriteSummary writes a human-readable summary of one comparison run:
// input sizes, classification counts and the accuracy metrics.
func WriteSummary(w io.Writer, report *compare.Report) {
	fmt.Fprintf(w, "Comparison Summary\n")
	fmt.Fprintf(w, "  Truth: %s (%d variants, %d lines skipped)\n",
		report.TruthPath, report.TruthParsed, report.TruthSkipped)
	fmt.Fprintf(w, "  Query: %s (%d variants, %d lines skipped)\n",
		report.QueryPath, report.QueryParsed, report.QuerySkipped)

	writeClassification(w, "Results", report.Result(), report.Metrics())

	// When filters were active, show the unfiltered pass alongside for contrast
	if report.Filtered != nil {
		writeClassification(w, "Unfiltered", report.Unfiltered, report.UnfilteredMetrics)
	}
}

func writeClassification(w io.Writer, title string, r *compare.Result, m compare.Metrics) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintf(w, "  True Positives:  %6d\n", r.TruePositives.Len())
	fmt.Fprintf(w, "  False Positives: %6d\n", r.FalsePositives.Len())
	fmt.Fprintf(w, "  False Negatives: %6d\n", r.FalseNegatives.Len())
	fmt.Fprintf(w, "  Precision: %.4f (%.2f%%)\n", m.Precision, m.Precision*100)
	fmt.Fprintf(w, "  Recall:    %.4f (%.2f%%)\n", m.Recall, m.Recall*100)
	fmt.Fprintf(w, "  F1 Score:  %.4f (%.2f%%)\n", m.F1, m.F1*100)
}

// WriteStats writes the composition summary for one parsed input.
func WriteStats(w io.Writer, name string, s compare.Stats) {
	fmt.Fprintf(w, "%s: %d variants\n", name, s.Total)

	classes := make([]string, 0, len(s.ByClass))
	for class := range s.ByClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		fmt.Fprintf(w, "  %-4s %6d\n", class, s.ByClass[class])
	}

	if s.WithQual > 0 {
		fmt.Fprintf(w, "  QUAL mean %.1f, median %.1f (%d scored)\n",
			s.QualMean, s.QualMedian, s.WithQual)
	}
}
