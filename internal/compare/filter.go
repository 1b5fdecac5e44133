package compare

import (
	"fmt"

	"github.com/inodb/vcf-compare/internal/vcf"
)

// Region is an inclusive genomic position range.
type Region struct {
	Min int64
	Max int64
}

// FilterOptions configures the pre-match record filters. The zero value
// disables everything. Filters compose by conjunction: a record survives only
// if it passes every configured filter. The same options are applied
// identically and independently to the truth and query inputs.
type FilterOptions struct {
	// ExcludeFilters drops records whose FILTER status matches any of these
	// labels (e.g. RefCall for reference-only calls, GERMLINE for non-somatic).
	ExcludeFilters []string

	// Region drops records whose position falls outside the inclusive range.
	Region *Region

	// Chromosomes is an allow-set of canonical chromosome labels.
	Chromosomes []string

	// MinAlleleFraction drops records whose VAF is strictly below the
	// threshold. Zero keeps everything, since fractions are never negative.
	MinAlleleFraction float64

	// Sample names the sample column used for allele-fraction extraction.
	// Empty selects the first sample.
	Sample string
}

// Active reports whether any filter is configured.
func (o *FilterOptions) Active() bool {
	return len(o.ExcludeFilters) > 0 || o.Region != nil ||
		len(o.Chromosomes) > 0 || o.MinAlleleFraction > 0
}

// Validate fails fast on misconfiguration, before any parsing work.
func (o *FilterOptions) Validate() error {
	if o.Region != nil && o.Region.Min > o.Region.Max {
		return fmt.Errorf("invalid region: min %d is greater than max %d", o.Region.Min, o.Region.Max)
	}
	if o.MinAlleleFraction < 0 || o.MinAlleleFraction > 1 {
		return fmt.Errorf("invalid allele fraction threshold %g: must be within [0, 1]", o.MinAlleleFraction)
	}
	return nil
}

// Apply returns the records that pass every configured filter, preserving
// order. sample is the resolved sample column index for VAF extraction.
// The input slice is never modified.
func (o *FilterOptions) Apply(records []*vcf.Variant, sample int) []*vcf.Variant {
	if !o.Active() {
		return records
	}

	excluded := make(map[string]bool, len(o.ExcludeFilters))
	for _, label := range o.ExcludeFilters {
		excluded[label] = true
	}
	allowed := make(map[string]bool, len(o.Chromosomes))
	for _, chrom := range o.Chromosomes {
		allowed[vcf.NormalizeChrom(chrom)] = true
	}

	kept := make([]*vcf.Variant, 0, len(records))
	for _, v := range records {
		if excluded[v.Filter] {
			continue
		}
		if o.Region != nil && (v.Pos < o.Region.Min || v.Pos > o.Region.Max) {
			continue
		}
		if len(allowed) > 0 && !allowed[v.Chrom] {
			continue
		}
		if o.MinAlleleFraction > 0 && v.AlleleFraction(sample) < o.MinAlleleFraction {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}
