package model

const (
	// Dialect is the payload dialect understood by the prediction service
	Dialect = "alphafoldserver"

	// Version is the payload schema version
	Version = 1
)

// ProteinChain describes one chain of a job.
type ProteinChain struct {
	Sequence             string `json:"sequence"`
	Count                int    `json:"count"`
	UseStructureTemplate bool   `json:"useStructureTemplate"`
}

// ChainSequence wraps a ProteinChain the way the service schema expects.
type ChainSequence struct {
	ProteinChain ProteinChain `json:"proteinChain"`
}

// JobRecord is a single prediction request pairing one target with one
// screening chain. Sequences holds the target first and the chain second.
type JobRecord struct {
	Name       string          `json:"name"`
	ModelSeeds []string        `json:"modelSeeds"`
	Sequences  []ChainSequence `json:"sequences"`
	Dialect    string          `json:"dialect"`
	Version    int             `json:"version"`
}

// NewProteinChain returns a single-copy chain descriptor that uses structure
// templates.
func NewProteinChain(sequence string) ChainSequence {
	return ChainSequence{
		ProteinChain: ProteinChain{
			Sequence:             sequence,
			Count:                1,
			UseStructureTemplate: true,
		},
	}
}

// NewJobRecord builds the job for a (target, chain) pair.
func NewJobRecord(target, chain SequenceEntry, seed string) JobRecord {
	return JobRecord{
		Name:       target.Name + "_" + chain.Name,
		ModelSeeds: []string{seed},
		Sequences: []ChainSequence{
			NewProteinChain(target.Sequence),
			NewProteinChain(chain.Sequence),
		},
		Dialect: Dialect,
		Version: Version,
	}
}
