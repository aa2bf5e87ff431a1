// Package testing provides test utilities for taghash.
package testing

import (
	"github.com/zoobzio/taghash"
)

// AlphaTag is a test tag seeded with the SHA-256 midstate convention.
type AlphaTag struct{}

// Engine implements taghash.Tag.
func (AlphaTag) Engine() *taghash.Engine {
	return taghash.TaggedEngine("taghash/test/alpha")
}

// BetaTag is a second test tag. Its seed differs from AlphaTag, so
// identical payloads hash to unrelated digests.
type BetaTag struct{}

// Engine implements taghash.Tag.
func (BetaTag) Engine() *taghash.Engine {
	return taghash.TaggedEngine("taghash/test/beta")
}

// DerivedTag is a test tag backed by BLAKE3 key derivation.
type DerivedTag struct{}

// Engine implements taghash.Tag.
func (DerivedTag) Engine() *taghash.Engine {
	return taghash.DerivedEngine("taghash/test/derived")
}

// Pattern returns the 32-byte test pattern 0x00 through 0x1f.
func Pattern() []byte {
	out := make([]byte, taghash.DigestSize)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
