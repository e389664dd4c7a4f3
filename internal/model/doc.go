// Package model defines the data structures used throughout afscreen.
//
// # SequenceEntry
//
// The [SequenceEntry] struct is a named protein sequence, either a screening
// chain entered by the user or a target read from a CSV file:
//
//	type SequenceEntry struct {
//	    Name     string // Display label, e.g. "Chain1" or "Entry12"
//	    Sequence string // Sequence with all whitespace removed
//	}
//
// # JobRecord
//
// The [JobRecord] struct is one batch-prediction request pairing a target with
// a screening chain. Its JSON form is the payload accepted by the prediction
// service:
//
//	{
//	  "name": "target_chain",
//	  "modelSeeds": ["123456789"],
//	  "sequences": [
//	    {"proteinChain": {"sequence": "...", "count": 1, "useStructureTemplate": true}},
//	    {"proteinChain": {"sequence": "...", "count": 1, "useStructureTemplate": true}}
//	  ],
//	  "dialect": "alphafoldserver",
//	  "version": 1
//	}
//
// # Run
//
// The [Run] struct is the history record stored after each generation.
package model
