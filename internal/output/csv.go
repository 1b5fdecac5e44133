// Package output provides result formatters: categorized CSV and the
// human-readable comparison summary.
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/inodb/vcf-compare/internal/compare"
)

// Category labels for classified variants in CSV output.
const (
	CategoryTruePositive  = "True Positive"
	CategoryFalsePositive = "False Positive"
	CategoryFalseNegative = "False Negative"
)

// CSVWriter writes classified variants as CSV rows, one per variant key,
// sorted within each category for deterministic output.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a CSV writer for categorized comparison results.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteResult writes the header and all three categories of the result.
func (c *CSVWriter) WriteResult(r *compare.Result) error {
	if err := c.w.Write([]string{"Category", "Chromosome", "Position", "Reference", "Alternate"}); err != nil {
		return err
	}

	categories := []struct {
		name string
		set  compare.VariantSet
	}{
		{CategoryTruePositive, r.TruePositives},
		{CategoryFalsePositive, r.FalsePositives},
		{CategoryFalseNegative, r.FalseNegatives},
	}

	for _, cat := range categories {
		for _, k := range cat.set.SortedKeys() {
			row := []string{cat.name, k.Chrom, strconv.FormatInt(k.Pos, 10), k.Ref, k.Alt}
			if err := c.w.Write(row); err != nil {
				return err
			}
		}
	}

	c.w.Flush()
	return c.w.Error()
}
