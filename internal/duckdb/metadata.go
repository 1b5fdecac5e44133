package duckdb

import "os"

// fileSize returns the on-disk size of an input file, or 0 when it cannot be
// stat'ed (e.g. stdin or a file removed after the run).
func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
