package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"42", int64(42)},
		{"1", int64(1)}, // numeric wins over ParseBool's "1"
		{"0.05", 0.05},
		{"TUMOR", "TUMOR"},
		{"/data/history.duckdb", "/data/history.duckdb"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, coerceValue(tt.in), "coerceValue(%q)", tt.in)
	}
}
