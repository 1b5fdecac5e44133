package vcf

import "testing"

func TestNormalizeChrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chr1", "1"},
		{"chr17", "17"},
		{"chrX", "X"},
		{"chrMT", "MT"},
		{"1", "1"},
		{"17", "17"},
		{"X", "X"},
		{"MT", "MT"},
		{"CHR1", "CHR1"},   // case-sensitive match
		{"chr", "chr"},     // bare prefix stays as-is
		{"chrchr1", "1"},   // repeated prefix strips to a fixed point
		{"chrchrX", "X"},
		{"chrchr", "chr"},
	}

	for _, tt := range tests {
		if got := NormalizeChrom(tt.in); got != tt.want {
			t.Errorf("NormalizeChrom(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeChrom_Idempotent(t *testing.T) {
	labels := []string{"chr1", "1", "chr20", "chrX", "X", "MT", "chrMT", "GL000192.1", "chrchr1", "chrchrX", "chrchr"}
	for _, label := range labels {
		once := NormalizeChrom(label)
		twice := NormalizeChrom(once)
		if once != twice {
			t.Errorf("NormalizeChrom not idempotent for %q: %q then %q", label, once, twice)
		}
	}
}

func TestVariant_Class(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		alt  string
		want string
	}{
		{"snv", "A", "G", "SNV"},
		{"insertion", "A", "AT", "INS"},
		{"deletion", "AT", "A", "DEL"},
		{"mnv", "AT", "GC", "MNV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Variant{Ref: tt.ref, Alt: tt.alt}
			if got := v.Class(); got != tt.want {
				t.Errorf("Class() = %q, want %q", got, tt.want)
			}
		})
	}
}
