package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vcf-compare/internal/compare"
	"github.com/inodb/vcf-compare/internal/vcf"
)

func set(variants ...*vcf.Variant) compare.VariantSet {
	return compare.NewVariantSet(variants)
}

func TestCSVWriter_WriteResult(t *testing.T) {
	r := &compare.Result{
		TruePositives: set(
			&vcf.Variant{Chrom: "17", Pos: 100, Ref: "A", Alt: "G"},
		),
		FalsePositives: set(
			// Out of order on purpose: output must be sorted within a category
			&vcf.Variant{Chrom: "17", Pos: 300, Ref: "G", Alt: "A"},
			&vcf.Variant{Chrom: "17", Pos: 250, Ref: "C", Alt: "T"},
		),
		FalseNegatives: set(
			&vcf.Variant{Chrom: "17", Pos: 200, Ref: "C", Alt: "T"},
		),
	}

	var buf strings.Builder
	require.NoError(t, NewCSVWriter(&buf).WriteResult(r))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "Category,Chromosome,Position,Reference,Alternate", lines[0])
	assert.Equal(t, "True Positive,17,100,A,G", lines[1])
	assert.Equal(t, "False Positive,17,250,C,T", lines[2])
	assert.Equal(t, "False Positive,17,300,G,A", lines[3])
	assert.Equal(t, "False Negative,17,200,C,T", lines[4])
}

func TestCSVWriter_EmptyResult(t *testing.T) {
	r := &compare.Result{
		TruePositives:  set(),
		FalsePositives: set(),
		FalseNegatives: set(),
	}

	var buf strings.Builder
	require.NoError(t, NewCSVWriter(&buf).WriteResult(r))

	assert.Equal(t, "Category,Chromosome,Position,Reference,Alternate\n", buf.String())
}
