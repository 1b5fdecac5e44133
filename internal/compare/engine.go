package compare

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/vcf-compare/internal/vcf"
)

// Engine runs one comparison: parse both inputs once, build variant sets,
// apply the configured filters, match and score. Each stage consumes an
// immutable slice or set and produces a new one, so the filtered and
// unfiltered passes share the same parsed records without copying.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{logger: zap.NewNop()}
}

// SetLogger sets the logger for progress and warning messages.
func (e *Engine) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Report carries everything one run produced: the filtered classification
// (when filters were configured), the unfiltered one, and per-input parse
// and composition summaries.
type Report struct {
	TruthPath string
	QueryPath string

	Unfiltered        *Result
	UnfilteredMetrics Metrics

	// Filtered is nil when no filter was configured.
	Filtered        *Result
	FilteredMetrics Metrics

	TruthStats Stats
	QueryStats Stats

	TruthParsed  int
	QueryParsed  int
	TruthSkipped int // short or malformed truth lines tolerated
	QuerySkipped int
}

// Result returns the classification the run was configured for: the filtered
// one when filters were active, otherwise the unfiltered one.
func (r *Report) Result() *Result {
	if r.Filtered != nil {
		return r.Filtered
	}
	return r.Unfiltered
}

// Metrics returns the metrics matching Result.
func (r *Report) Metrics() Metrics {
	if r.Filtered != nil {
		return r.FilteredMetrics
	}
	return r.UnfilteredMetrics
}

// Run compares the query VCF against the truth VCF under the given filter
// options. Misconfigured options fail before any file is opened. A missing
// input file is fatal; malformed data lines are skipped and counted.
func (e *Engine) Run(truthPath, queryPath string, opts FilterOptions) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("filter configuration: %w", err)
	}

	truth, err := e.Load(truthPath, opts.Sample)
	if err != nil {
		return nil, fmt.Errorf("load truth: %w", err)
	}
	query, err := e.Load(queryPath, opts.Sample)
	if err != nil {
		return nil, fmt.Errorf("load query: %w", err)
	}

	report := &Report{
		TruthPath:    truthPath,
		QueryPath:    queryPath,
		TruthStats:   Summarize(truth.Records),
		QueryStats:   Summarize(query.Records),
		TruthParsed:  len(truth.Records),
		QueryParsed:  len(query.Records),
		TruthSkipped: truth.Skipped,
		QuerySkipped: query.Skipped,
	}

	truthSet := NewVariantSet(truth.Records)
	querySet := NewVariantSet(query.Records)

	report.Unfiltered = Match(truthSet, querySet)
	report.UnfilteredMetrics = report.Unfiltered.Metrics()

	if opts.Active() {
		filteredTruth := NewVariantSet(opts.Apply(truth.Records, truth.Sample))
		filteredQuery := NewVariantSet(opts.Apply(query.Records, query.Sample))
		report.Filtered = Match(filteredTruth, filteredQuery)
		report.FilteredMetrics = report.Filtered.Metrics()
	}

	e.logger.Info("comparison complete",
		zap.Int("truth_variants", truthSet.Len()),
		zap.Int("query_variants", querySet.Len()),
		zap.Int("tp", report.Result().TruePositives.Len()),
		zap.Int("fp", report.Result().FalsePositives.Len()),
		zap.Int("fn", report.Result().FalseNegatives.Len()))

	return report, nil
}

// Input is one fully-read VCF: its records, the tolerated-line count and the
// resolved sample column index for allele-fraction extraction.
type Input struct {
	Records []*vcf.Variant
	Skipped int
	Sample  int
}

// Load reads every variant from one VCF in a single pass. Malformed records
// are skipped and counted rather than aborting the run.
func (e *Engine) Load(path, sampleName string) (*Input, error) {
	parser, err := vcf.NewParser(path)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	in := &Input{}
	for {
		v, err := parser.Next()
		if err != nil {
			var perr *vcf.ParseError
			if errors.As(err, &perr) {
				in.Skipped++
				e.logger.Warn("skipping malformed record",
					zap.String("path", path),
					zap.Int("line", perr.Line),
					zap.String("reason", perr.Message))
				continue
			}
			return nil, err
		}
		if v == nil {
			break
		}
		in.Records = append(in.Records, v)
	}
	in.Skipped += parser.SkippedLines()

	in.Sample = resolveSample(parser.SampleNames(), sampleName)
	if sampleName != "" && in.Sample == 0 && len(parser.SampleNames()) > 0 && parser.SampleNames()[0] != sampleName {
		e.logger.Warn("sample not found, using first sample column",
			zap.String("path", path),
			zap.String("sample", sampleName))
	}

	if len(in.Records) == 0 {
		e.logger.Warn("no variants parsed", zap.String("path", path))
	}

	return in, nil
}

// resolveSample maps a sample name to its column index; empty or unknown
// names fall back to the first sample column.
func resolveSample(names []string, want string) int {
	if want == "" {
		return 0
	}
	for i, name := range names {
		if name == want {
			return i
		}
	}
	return 0
}
