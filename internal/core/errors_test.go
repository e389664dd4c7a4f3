package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestSchemaError_MissingHeader(t *testing.T) {
	err := &SchemaError{Missing: []string{"name", "seq"}}

	expected := "the CSV appears to be empty or missing a header row"
	if err.Error() != expected {
		t.Errorf("SchemaError.Error() = %q, want %q", err.Error(), expected)
	}
}

func TestSchemaError_MissingColumns(t *testing.T) {
	err := &SchemaError{
		Missing:   []string{"seq"},
		Available: []string{"name", "sequence", "notes"},
	}

	expected := "missing columns in CSV header: seq. Available columns: name, sequence, notes"
	if err.Error() != expected {
		t.Errorf("SchemaError.Error() = %q, want %q", err.Error(), expected)
	}
}

func TestEmptyResultError(t *testing.T) {
	tests := []struct {
		name     string
		err      *EmptyResultError
		expected string
	}{
		{
			name:     "no rows",
			err:      &EmptyResultError{},
			expected: "the CSV did not contain any usable target sequences",
		},
		{
			name:     "all rows skipped",
			err:      &EmptyResultError{Rows: 3, Skipped: 3},
			expected: "the CSV did not contain any usable target sequences (3 of 3 rows skipped)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("EmptyResultError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorsAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("error while reading CSV: %w", &SchemaError{Missing: []string{"seq"}, Available: []string{"name"}})

	var schemaErr *SchemaError
	if !errors.As(wrapped, &schemaErr) {
		t.Fatal("errors.As should find the SchemaError")
	}

	if schemaErr.Missing[0] != "seq" {
		t.Errorf("Missing = %v, want [seq]", schemaErr.Missing)
	}
}

func TestSkipReason_String(t *testing.T) {
	tests := []struct {
		reason   SkipReason
		expected string
	}{
		{SkipReasonNone, ""},
		{SkipReasonEmptySequence, "empty sequence"},
		{SkipReason(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.reason.String(); got != tt.expected {
				t.Errorf("SkipReason(%d).String() = %q, want %q", tt.reason, got, tt.expected)
			}
		})
	}
}
