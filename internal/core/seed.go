package core

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	// MinSeed and MaxSeed bound model seeds. The service rejects seeds that
	// are not nine digits or that start with 0.
	MinSeed = 100_000_000
	MaxSeed = 999_999_999
)

// SeedSource produces model seeds.
type SeedSource interface {
	Seed() string
}

// SeedFunc adapts a function to a SeedSource.
type SeedFunc func() string

func (f SeedFunc) Seed() string { return f() }

// CryptoSeeds draws seeds uniformly from [MinSeed, MaxSeed] using crypto/rand.
type CryptoSeeds struct{}

var seedSpan = big.NewInt(MaxSeed - MinSeed + 1)

func (CryptoSeeds) Seed() string {
	n, err := rand.Int(rand.Reader, seedSpan)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic("afscreen: reading random seed: " + err.Error())
	}

	return strconv.FormatInt(n.Int64()+MinSeed, 10)
}

// NewSeedSource returns the process seed source.
func NewSeedSource() SeedSource {
	return CryptoSeeds{}
}
