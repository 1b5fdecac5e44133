// Package vcf provides VCF file parsing functionality.
package vcf

import "strings"

// Variant represents a single genomic variant from a VCF file.
// Instances are built once by the parser and not mutated afterwards.
type Variant struct {
	Chrom   string   // Chromosome name, canonicalized (e.g. "17", never "chr17")
	Pos     int64    // 1-based genomic position
	ID      string   // Variant identifier (e.g. rs ID), "." when absent
	Ref     string   // Reference allele
	Alt     string   // Alternate allele (single allele after splitting)
	Qual    float64  // Quality score; only meaningful when HasQual is true
	HasQual bool     // False when the QUAL field was "."
	Filter  string   // Filter status (PASS, RefCall, GERMLINE, ...), "." when absent
	Format  []string // Declared FORMAT field order (e.g. GT, GQ, DP, AD, VAF, PL)
	Samples []string // Per-sample colon-joined values, same order as the header samples
}

// IsSNV returns true if the variant is a single nucleotide variant.
func (v *Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.Alt) == 1
}

// IsInsertion returns true if the variant is an insertion.
func (v *Variant) IsInsertion() bool {
	return len(v.Alt) > len(v.Ref)
}

// IsDeletion returns true if the variant is a deletion.
func (v *Variant) IsDeletion() bool {
	return len(v.Ref) > len(v.Alt)
}

// Class returns the variant class: SNV, INS, DEL or MNV.
func (v *Variant) Class() string {
	switch {
	case v.IsSNV():
		return "SNV"
	case v.IsInsertion():
		return "INS"
	case v.IsDeletion():
		return "DEL"
	default:
		return "MNV"
	}
}

// NormalizeChrom returns the chromosome label without the "chr" build prefix,
// so b37-style ("17") and hg19-style ("chr17") labels compare equal. The match
// is case-sensitive and anchored at the start, and stripping repeats until the
// prefix is gone so the result is a fixed point: normalizing an already
// normalized label never changes it again.
func NormalizeChrom(chrom string) string {
	for len(chrom) > 3 && strings.HasPrefix(chrom, "chr") {
		chrom = chrom[3:]
	}
	return chrom
}
