package core

import "github.com/inovacc/afscreen/internal/model"

// BuildPayload pairs every target with every screening chain. Records are in
// target-major order: all chains for the first target, then the second, and
// so on. One seed is drawn per record.
func BuildPayload(targets, chains []model.SequenceEntry, seeds SeedSource) []model.JobRecord {
	payload := make([]model.JobRecord, 0, len(targets)*len(chains))

	for _, target := range targets {
		for _, chain := range chains {
			payload = append(payload, model.NewJobRecord(target, chain, seeds.Seed()))
		}
	}

	return payload
}
