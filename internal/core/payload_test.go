package core

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/inovacc/afscreen/internal/model"
	"github.com/stretchr/testify/require"
)

// counterSeeds returns sequential seeds starting at MinSeed.
func counterSeeds() (SeedSource, *int) {
	calls := 0
	return SeedFunc(func() string {
		calls++
		return strconv.Itoa(MinSeed + calls)
	}), &calls
}

func entries(prefix string, n int) []model.SequenceEntry {
	out := make([]model.SequenceEntry, n)
	for i := range out {
		out[i] = model.NewSequenceEntry(fmt.Sprintf("%s%d", prefix, i+1), fmt.Sprintf("SEQ%s%d", prefix, i+1))
	}
	return out
}

func TestBuildPayload_TargetMajorOrder(t *testing.T) {
	targets := entries("t", 2)
	chains := entries("c", 2)
	seeds, _ := counterSeeds()

	payload := BuildPayload(targets, chains, seeds)

	names := make([]string, 0, len(payload))
	for _, job := range payload {
		names = append(names, job.Name)
	}

	require.Equal(t, []string{"t1_c1", "t1_c2", "t2_c1", "t2_c2"}, names)
}

func TestBuildPayload_CrossProduct(t *testing.T) {
	tests := []struct {
		targets int
		chains  int
	}{
		{1, 1},
		{1, 3},
		{4, 1},
		{7, 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.targets, tt.chains), func(t *testing.T) {
			targets := entries("t", tt.targets)
			chains := entries("c", tt.chains)
			seeds, calls := counterSeeds()

			payload := BuildPayload(targets, chains, seeds)

			require.Len(t, payload, tt.targets*tt.chains)
			require.Equal(t, tt.targets*tt.chains, *calls)

			pairs := make(map[[2]string]struct{})
			for _, job := range payload {
				key := [2]string{job.Sequences[0].ProteinChain.Sequence, job.Sequences[1].ProteinChain.Sequence}
				pairs[key] = struct{}{}
			}
			require.Len(t, pairs, tt.targets*tt.chains)
		})
	}
}

func TestBuildPayload_SeedPerRecord(t *testing.T) {
	seeds, _ := counterSeeds()

	payload := BuildPayload(entries("t", 3), entries("c", 2), seeds)

	seen := make(map[string]struct{})
	for _, job := range payload {
		require.Len(t, job.ModelSeeds, 1)
		seen[job.ModelSeeds[0]] = struct{}{}
	}
	require.Len(t, seen, len(payload))
}

func TestBuildPayload_RoundTrip(t *testing.T) {
	targets := entries("t", 3)
	chains := entries("c", 2)

	payload := BuildPayload(targets, chains, NewSeedSource())

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed []model.JobRecord
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, len(targets)*len(chains))

	for i, job := range parsed {
		target := targets[i/len(chains)]
		chain := chains[i%len(chains)]

		require.Equal(t, target.Name+"_"+chain.Name, job.Name)
		require.Equal(t, target.Sequence, job.Sequences[0].ProteinChain.Sequence)
		require.Equal(t, chain.Sequence, job.Sequences[1].ProteinChain.Sequence)
		require.Equal(t, model.Dialect, job.Dialect)
		require.Equal(t, model.Version, job.Version)
	}
}
