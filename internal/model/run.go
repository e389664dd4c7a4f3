package model

import "time"

// Run is the history record of one generation.
type Run struct {
	// ID is the unique identifier (UUID)
	ID string `json:"id"`

	// CreatedAt is when the payload was emitted
	CreatedAt time.Time `json:"created_at"`

	// CSVPath is the targets file that was loaded
	CSVPath string `json:"csv_path"`

	// NameColumn and SequenceColumn are the CSV columns that were read
	NameColumn     string `json:"name_column"`
	SequenceColumn string `json:"sequence_column"`

	// Chains, Targets and Jobs count the screening chains, loaded targets and
	// generated job records
	Chains  int `json:"chains"`
	Targets int `json:"targets"`
	Jobs    int `json:"jobs"`

	// SkippedRows lists the 1-based CSV rows dropped for an empty sequence
	SkippedRows []int `json:"skipped_rows,omitempty"`

	// Destination is the requested output path, empty for console output
	Destination string `json:"destination,omitempty"`

	// Files lists the chunk files written
	Files []string `json:"files,omitempty"`
}
