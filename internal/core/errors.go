package core

import (
	"fmt"
	"strings"
)

// SchemaError indicates the CSV has no header row or lacks a required column.
type SchemaError struct {
	Missing   []string
	Available []string
}

func (e *SchemaError) Error() string {
	if len(e.Available) == 0 {
		return "the CSV appears to be empty or missing a header row"
	}

	return fmt.Sprintf("missing columns in CSV header: %s. Available columns: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

// EmptyResultError indicates no usable target rows remained after filtering.
type EmptyResultError struct {
	Rows    int
	Skipped int
}

func (e *EmptyResultError) Error() string {
	if e.Rows == 0 {
		return "the CSV did not contain any usable target sequences"
	}

	return fmt.Sprintf("the CSV did not contain any usable target sequences (%d of %d rows skipped)",
		e.Skipped, e.Rows)
}

// SkipReason categorizes why a CSV row was skipped
type SkipReason int

const (
	SkipReasonNone SkipReason = iota
	SkipReasonEmptySequence
)

func (r SkipReason) String() string {
	switch r {
	case SkipReasonNone:
		return ""
	case SkipReasonEmptySequence:
		return "empty sequence"
	}
	return ""
}
