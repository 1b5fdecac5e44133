package compare

import (
	"sort"

	"github.com/inodb/vcf-compare/internal/vcf"
)

// Stats summarizes the composition of a parsed input: counts by variant
// class and the distribution of the quality scores that were present.
type Stats struct {
	Total      int
	ByClass    map[string]int // SNV, INS, DEL, MNV
	WithQual   int            // records whose QUAL was not "."
	QualMean   float64
	QualMedian float64
}

// Summarize computes per-class counts and quality summary for a record slice.
// Records without a quality score are excluded from the mean and median.
func Summarize(records []*vcf.Variant) Stats {
	s := Stats{
		Total:   len(records),
		ByClass: make(map[string]int),
	}

	var quals []float64
	for _, v := range records {
		s.ByClass[v.Class()]++
		if v.HasQual {
			quals = append(quals, v.Qual)
		}
	}

	s.WithQual = len(quals)
	if len(quals) == 0 {
		return s
	}

	var sum float64
	for _, q := range quals {
		sum += q
	}
	s.QualMean = sum / float64(len(quals))

	sort.Float64s(quals)
	mid := len(quals) / 2
	if len(quals)%2 == 0 {
		s.QualMedian = (quals[mid-1] + quals[mid]) / 2
	} else {
		s.QualMedian = quals[mid]
	}

	return s
}
