package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vcf-compare/internal/compare"
	"github.com/inodb/vcf-compare/internal/output"
)

// Run is one persisted comparison run.
type Run struct {
	ID         int64
	CreatedAt  time.Time
	TruthPath  string
	QueryPath  string
	TruthBytes int64
	QueryBytes int64
	TP         int64
	FP         int64
	FN         int64
	Precision  float64
	Recall     float64
	F1         float64
	Filtered   bool
}

// SaveReport persists a comparison report and its classified variants.
// Returns the new run's id.
func (s *Store) SaveReport(report *compare.Report) (int64, error) {
	var id int64
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(run_id), 0) + 1 FROM comparison_runs`).Scan(&id); err != nil {
		return 0, fmt.Errorf("allocate run id: %w", err)
	}

	result := report.Result()
	metrics := report.Metrics()

	_, err := s.db.Exec(`INSERT INTO comparison_runs
		(run_id, created_at, truth_path, query_path, truth_bytes, query_bytes,
		 tp, fp, fn, precision, recall, f1, filtered)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now(), report.TruthPath, report.QueryPath,
		fileSize(report.TruthPath), fileSize(report.QueryPath),
		result.TruePositives.Len(), result.FalsePositives.Len(), result.FalseNegatives.Len(),
		metrics.Precision, metrics.Recall, metrics.F1, report.Filtered != nil)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	if err := s.appendVariants(id, result); err != nil {
		return 0, err
	}

	return id, nil
}

// appendVariants batch-inserts the run's classified variants using the
// Appender API, one row per variant key.
func (s *Store) appendVariants(runID int64, result *compare.Result) error {
	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "classified_variants")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	categories := []struct {
		name string
		set  compare.VariantSet
	}{
		{output.CategoryTruePositive, result.TruePositives},
		{output.CategoryFalsePositive, result.FalsePositives},
		{output.CategoryFalseNegative, result.FalseNegatives},
	}

	for _, cat := range categories {
		for _, k := range cat.set.SortedKeys() {
			if err := appender.AppendRow(runID, cat.name, k.Chrom, k.Pos, k.Ref, k.Alt); err != nil {
				return fmt.Errorf("append classified variant: %w", err)
			}
		}
	}

	return appender.Flush()
}

// ListRuns returns all persisted runs, newest first.
func (s *Store) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(`SELECT
		run_id, created_at, truth_path, query_path, truth_bytes, query_bytes,
		tp, fp, fn, precision, recall, f1, filtered
		FROM comparison_runs ORDER BY run_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.CreatedAt, &r.TruthPath, &r.QueryPath, &r.TruthBytes, &r.QueryBytes,
			&r.TP, &r.FP, &r.FN, &r.Precision, &r.Recall, &r.F1, &r.Filtered,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// RunVariants returns the classified variant keys of one run and category,
// in insertion order (sorted by chromosome, position, ref, alt at save time).
func (s *Store) RunVariants(runID int64, category string) ([]compare.VariantKey, error) {
	rows, err := s.db.Query(`SELECT chrom, pos, ref, alt
		FROM classified_variants WHERE run_id=? AND category=?`, runID, category)
	if err != nil {
		return nil, fmt.Errorf("query classified variants: %w", err)
	}
	defer rows.Close()

	var keys []compare.VariantKey
	for rows.Next() {
		var k compare.VariantKey
		if err := rows.Scan(&k.Chrom, &k.Pos, &k.Ref, &k.Alt); err != nil {
			return nil, fmt.Errorf("scan classified variant: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classified variants: %w", err)
	}
	return keys, nil
}
