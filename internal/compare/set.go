// Package compare implements the variant comparison and scoring engine:
// truth/query set matching, filtering and precision/recall/F1 metrics.
package compare

import (
	"sort"

	"github.com/inodb/vcf-compare/internal/vcf"
)

// VariantKey is the canonical identity of a variant. Two records are the
// same variant iff their keys are equal, regardless of quality, filter
// status or sample data.
type VariantKey struct {
	Chrom string
	Pos   int64
	Ref   string
	Alt   string
}

// KeyOf builds the canonical key for a variant. The chromosome is assumed
// to be canonicalized already (the parser normalizes before records leave it).
func KeyOf(v *vcf.Variant) VariantKey {
	return VariantKey{Chrom: v.Chrom, Pos: v.Pos, Ref: v.Ref, Alt: v.Alt}
}

// VariantSet is a set of variants keyed by VariantKey. Inserting a duplicate
// key is a no-op: the first record seen for a key wins.
type VariantSet map[VariantKey]*vcf.Variant

// NewVariantSet builds a set from a record slice, collapsing duplicate keys.
func NewVariantSet(records []*vcf.Variant) VariantSet {
	s := make(VariantSet, len(records))
	for _, v := range records {
		s.Add(v)
	}
	return s
}

// Add inserts a variant unless its key is already present.
func (s VariantSet) Add(v *vcf.Variant) {
	k := KeyOf(v)
	if _, ok := s[k]; !ok {
		s[k] = v
	}
}

// Contains reports whether the key is in the set.
func (s VariantSet) Contains(k VariantKey) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of distinct variant keys in the set.
func (s VariantSet) Len() int {
	return len(s)
}

// SortedKeys returns the set's keys ordered by chromosome, position,
// reference and alternate allele, for deterministic output.
func (s VariantSet) SortedKeys() []VariantKey {
	keys := make([]VariantKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Chrom != b.Chrom {
			return a.Chrom < b.Chrom
		}
		if a.Pos != b.Pos {
			return a.Pos < b.Pos
		}
		if a.Ref != b.Ref {
			return a.Ref < b.Ref
		}
		return a.Alt < b.Alt
	})
	return keys
}
