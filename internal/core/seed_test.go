package core

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCryptoSeeds_Range(t *testing.T) {
	seeds := NewSeedSource()

	for i := 0; i < 10_000; i++ {
		s := seeds.Seed()

		require.Len(t, s, 9)
		require.NotEqual(t, byte('0'), s[0])

		n, err := strconv.Atoi(s)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, MinSeed)
		require.LessOrEqual(t, n, MaxSeed)
	}
}

func TestCryptoSeeds_NotConstant(t *testing.T) {
	seeds := CryptoSeeds{}
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		seen[seeds.Seed()] = struct{}{}
	}

	require.Greater(t, len(seen), 1)
}

func TestSeedFunc(t *testing.T) {
	var src SeedSource = SeedFunc(func() string { return "123456789" })
	require.Equal(t, "123456789", src.Seed())
}
