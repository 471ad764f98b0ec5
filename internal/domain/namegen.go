// Package domain contains the core rewrite pipeline: scanning, renaming and
// string mutation.
package domain

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
)

// ErrCapacityExhausted is returned when a (length, alphabet) pool has issued
// every possible name.
var ErrCapacityExhausted = errors.New("name pool capacity exhausted")

// DefaultAlphabet is the ASCII letter alphabet used when no alphabet is
// configured.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultNameLength is the generated identifier length used when none is
// configured.
const DefaultNameLength = 8

type poolKey struct {
	length   int
	alphabet string
}

// NameGenerator draws random identifiers and guarantees that no name is
// issued twice for the same (length, alphabet) pool across one rewrite
// session. It is safe for concurrent use; the workflow runs one worker per
// input file against a shared generator.
type NameGenerator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	pools map[poolKey]map[string]struct{}
}

// NewNameGenerator returns a generator backed by the given random source.
// Tests inject a seeded source for deterministic output.
func NewNameGenerator(src rand.Source) *NameGenerator {
	return &NameGenerator{
		rnd:   rand.New(src),
		pools: make(map[poolKey]map[string]struct{}),
	}
}

// Generate draws length characters uniformly from alphabet until it finds a
// name the pool has not issued yet, then records it. Duplicate characters in
// alphabet are permitted and simply bias sampling. Fails with
// ErrCapacityExhausted once the pool holds |alphabet|^length names.
func (g *NameGenerator) Generate(length int, alphabet string) (string, error) {
	if length <= 0 || alphabet == "" {
		return "", fmt.Errorf("name generator: invalid pool (length %d, alphabet %q)", length, alphabet)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := poolKey{length: length, alphabet: alphabet}

	pool := g.pools[key]
	if pool == nil {
		pool = make(map[string]struct{})
		g.pools[key] = pool
	}

	if uint64(len(pool)) >= capacity(length, len(alphabet)) {
		return "", fmt.Errorf("%w: %d names of length %d over alphabet %q",
			ErrCapacityExhausted, len(pool), length, alphabet)
	}

	var sb strings.Builder

	for {
		sb.Reset()

		for range length {
			sb.WriteByte(alphabet[g.rnd.Intn(len(alphabet))])
		}

		name := sb.String()
		if _, taken := pool[name]; taken {
			continue
		}

		pool[name] = struct{}{}

		return name, nil
	}
}

// Issued returns how many names the (length, alphabet) pool has handed out.
func (g *NameGenerator) Issued(length int, alphabet string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.pools[poolKey{length: length, alphabet: alphabet}])
}

// capacity computes |alphabet|^length, saturating instead of overflowing.
func capacity(length, alphabetLen int) uint64 {
	result := uint64(1)

	for range length {
		next := result * uint64(alphabetLen)
		if next/uint64(alphabetLen) != result {
			return math.MaxUint64
		}

		result = next
	}

	return result
}
