package model

// SequenceEntry is a named sequence. Sequence never contains whitespace and is
// never empty; callers filter empty sequences before constructing an entry.
type SequenceEntry struct {
	// Name is the display label used to build job names
	Name string `json:"name"`

	// Sequence is the normalized sequence
	Sequence string `json:"sequence"`
}

// NewSequenceEntry creates an entry from an already normalized sequence.
func NewSequenceEntry(name, sequence string) SequenceEntry {
	return SequenceEntry{Name: name, Sequence: sequence}
}
