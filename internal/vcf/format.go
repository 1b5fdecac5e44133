package vcf

import (
	"strconv"
	"strings"
)

// FORMAT field name carrying the variant allele fraction, as written by
// DeepVariant/DeepSomatic (GT:GQ:DP:AD:VAF:PL).
const FormatVAF = "VAF"

// FormatIndex resolves a FORMAT field name to its index in the declared
// per-record order. Different files declare different orders, so the index
// is looked up by name every time rather than assumed. Returns -1 when the
// field is not declared.
func FormatIndex(format []string, name string) int {
	for i, f := range format {
		if f == name {
			return i
		}
	}
	return -1
}

// SampleValue returns the value of the named FORMAT field for the sample at
// the given index. The bool is false when the field is not declared, the
// sample does not exist, or the sample string has fewer components than the
// field's position.
func (v *Variant) SampleValue(name string, sample int) (string, bool) {
	idx := FormatIndex(v.Format, name)
	if idx < 0 || sample < 0 || sample >= len(v.Samples) {
		return "", false
	}

	// Colon-delimited sample values; trailing fields may be omitted
	parts := strings.Split(v.Samples[sample], ":")
	if idx >= len(parts) {
		return "", false
	}
	return parts[idx], true
}

// AlleleFraction returns the variant allele fraction for the sample at the
// given index. Absent field, short sample string or unparseable value all
// yield 0.0: downstream filtering treats that as "excluded", never as fatal.
func (v *Variant) AlleleFraction(sample int) float64 {
	raw, ok := v.SampleValue(FormatVAF, sample)
	if !ok || raw == "" || raw == "." {
		return 0.0
	}
	vaf, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0.0
	}
	return vaf
}
