package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// Seed returns the PCG seed from BUSCAMINAS_SEED ("SEED1:SEED2"). Without it
// the seed is random and ok is false.
func Seed() (seed1, seed2 uint64, ok bool, err error) {
	s, found := os.LookupEnv("BUSCAMINAS_SEED")
	if !found || s == "" {
		return new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(), false, nil
	}
	seed1, seed2, err = ParseSeed(s)
	if err != nil {
		return 0, 0, false, err
	}
	return seed1, seed2, true, nil
}

func ParseSeed(s string) (seed1, seed2 uint64, err error) {
	first, second, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, fmt.Errorf(`invalid seed "%s": want SEED1:SEED2`, s)
	}
	if seed1, err = strconv.ParseUint(first, 10, 64); err != nil {
		return 0, 0, fmt.Errorf(`invalid seed "%s": %w`, s, err)
	}
	if seed2, err = strconv.ParseUint(second, 10, 64); err != nil {
		return 0, 0, fmt.Errorf(`invalid seed "%s": %w`, s, err)
	}
	return seed1, seed2, nil
}

// Rand builds the random source for the game from [Seed].
func Rand() (*rand.Rand, error) {
	seed1, seed2, _, err := Seed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(seed1, seed2)), nil
}
