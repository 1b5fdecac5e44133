// Package vcf provides VCF file parsing functionality.
package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Minimum tab-separated fields for a data line to be considered at all:
// CHROM, POS, ID, REF, ALT. Shorter lines are skipped, not errors.
const minFields = 5

// Parser reads variants from a VCF file in a single pass.
// Multi-allelic records are expanded into one Variant per alternate allele,
// and chromosome labels are canonicalized as records are produced.
type Parser struct {
	reader       *bufio.Reader
	file         *os.File
	gzipReader   *gzip.Reader
	lineNumber   int
	header       []string
	sampleNames  []string   // sample names from the #CHROM header line
	pending      []*Variant // remaining alleles of a multi-allelic record
	skippedLines int        // lines dropped for having too few fields
}

// NewParser creates a new VCF parser for the given file.
// Supports both plain VCF and gzipped VCF (.vcf.gz) files; compression is
// detected from the gzip magic bytes rather than trusting the suffix alone.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read vcf file: %w", err)
	}

	// Seek back to beginning
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek vcf file: %w", err)
	}

	// Gzip magic number (0x1f, 0x8b)
	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	return &Parser{reader: bufio.NewReader(r)}, nil
}

// Next reads the next variant from the VCF file.
// Returns nil, nil when there are no more variants. A *ParseError marks a
// structurally broken data line; callers may skip it and keep reading.
func (p *Parser) Next() (*Variant, error) {
	if len(p.pending) > 0 {
		v := p.pending[0]
		p.pending = p.pending[1:]
		return v, nil
	}

	for {
		line, err := p.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				if line == "" {
					return nil, nil
				}
				// Last line without trailing newline
			} else {
				return nil, fmt.Errorf("read variant line: %w", err)
			}
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		if strings.HasPrefix(line, "##") {
			p.header = append(p.header, line)
			continue
		}

		if strings.HasPrefix(line, "#") {
			p.header = append(p.header, line)
			// Sample names follow the FORMAT column (index 9+)
			fields := strings.Split(line, "\t")
			if len(fields) > 9 {
				p.sampleNames = fields[9:]
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			// Tolerate truncated or blank trailing lines
			p.skippedLines++
			continue
		}

		variants, perr := p.parseFields(fields)
		if perr != nil {
			return nil, perr
		}

		v := variants[0]
		p.pending = variants[1:]
		return v, nil
	}
}

// parseFields parses a tab-split data line into one Variant per alternate allele.
func (p *Parser) parseFields(fields []string) ([]*Variant, error) {
	if fields[0] == "" {
		return nil, &ParseError{Line: p.lineNumber, Message: "missing chromosome"}
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid position: %s", fields[1]),
		}
	}

	ref := fields[3]
	alt := fields[4]
	if ref == "" || ref == "." {
		return nil, &ParseError{Line: p.lineNumber, Message: "missing reference allele"}
	}
	if alt == "" || alt == "." {
		return nil, &ParseError{Line: p.lineNumber, Message: "missing alternate allele"}
	}

	// "." in QUAL means absent, not zero
	var qual float64
	var hasQual bool
	if len(fields) > 5 && fields[5] != "." {
		if q, err := strconv.ParseFloat(fields[5], 64); err == nil {
			qual = q
			hasQual = true
		}
	}

	filter := "."
	if len(fields) > 6 && fields[6] != "" {
		filter = fields[6]
	}

	var format []string
	var samples []string
	if len(fields) > 8 {
		format = strings.Split(fields[8], ":")
		if len(fields) > 9 {
			samples = fields[9:]
		}
	}

	chrom := NormalizeChrom(fields[0])

	alts := strings.Split(alt, ",")
	variants := make([]*Variant, len(alts))
	for i, a := range alts {
		variants[i] = &Variant{
			Chrom:   chrom,
			Pos:     pos,
			ID:      fields[2],
			Ref:     ref,
			Alt:     a,
			Qual:    qual,
			HasQual: hasQual,
			Filter:  filter,
			Format:  format,
			Samples: samples,
		}
	}

	return variants, nil
}

// Header returns the VCF header lines seen so far.
func (p *Parser) Header() []string {
	return p.header
}

// SampleNames returns sample names from the #CHROM header line.
// Returns nil if no sample columns are present.
func (p *Parser) SampleNames() []string {
	return p.sampleNames
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// SkippedLines returns the number of data lines dropped for having fewer
// than the minimum number of fields.
func (p *Parser) SkippedLines() int {
	return p.skippedLines
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError represents a structurally broken data line: the line had enough
// fields but a required value (chromosome, position, ref or alt) is missing
// or unparseable. The comparison engine skips these and keeps a count.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vcf parse error at line %d: %s", e.Line, e.Message)
}
