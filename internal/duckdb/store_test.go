package duckdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vcf-compare/internal/compare"
	"github.com/inodb/vcf-compare/internal/output"
	"github.com/inodb/vcf-compare/internal/vcf"
)

func testReport() *compare.Report {
	truth := compare.NewVariantSet([]*vcf.Variant{
		{Chrom: "17", Pos: 100, Ref: "A", Alt: "G"},
		{Chrom: "17", Pos: 200, Ref: "C", Alt: "T"},
	})
	query := compare.NewVariantSet([]*vcf.Variant{
		{Chrom: "17", Pos: 100, Ref: "A", Alt: "G"},
		{Chrom: "17", Pos: 300, Ref: "G", Alt: "A"},
	})

	result := compare.Match(truth, query)
	return &compare.Report{
		TruthPath:         "truth.vcf",
		QueryPath:         "query.vcf",
		Unfiltered:        result,
		UnfilteredMetrics: result.Metrics(),
		TruthParsed:       2,
		QueryParsed:       2,
	}
}

func TestStore_SaveAndListRuns(t *testing.T) {
	s, err := Open("") // in-memory
	require.NoError(t, err)
	defer s.Close()

	id, err := s.SaveReport(testReport())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id2, err := s.SaveReport(testReport())
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, int64(2), runs[0].ID)
	assert.Equal(t, int64(1), runs[1].ID)

	r := runs[0]
	assert.Equal(t, "truth.vcf", r.TruthPath)
	assert.Equal(t, "query.vcf", r.QueryPath)
	assert.Equal(t, int64(1), r.TP)
	assert.Equal(t, int64(1), r.FP)
	assert.Equal(t, int64(1), r.FN)
	assert.InDelta(t, 0.5, r.Precision, 1e-9)
	assert.InDelta(t, 0.5, r.Recall, 1e-9)
	assert.InDelta(t, 0.5, r.F1, 1e-9)
	assert.False(t, r.Filtered)
}

func TestStore_RunVariants(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	id, err := s.SaveReport(testReport())
	require.NoError(t, err)

	tps, err := s.RunVariants(id, output.CategoryTruePositive)
	require.NoError(t, err)
	require.Len(t, tps, 1)
	assert.Equal(t, compare.VariantKey{Chrom: "17", Pos: 100, Ref: "A", Alt: "G"}, tps[0])

	fns, err := s.RunVariants(id, output.CategoryFalseNegative)
	require.NoError(t, err)
	require.Len(t, fns, 1)
	assert.Equal(t, int64(200), fns[0].Pos)

	none, err := s.RunVariants(id+10, output.CategoryTruePositive)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_PersistsToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "runs.duckdb")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.SaveReport(testReport())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.ListRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
