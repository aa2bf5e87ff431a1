// Package taghash provides domain-separated, fixed-length tagged hashes
// with a canonical hexadecimal text form.
//
// A tag is a zero-size marker type that supplies a pre-seeded hash
// engine. Hashing the same payload under two different tags yields
// unrelated digests, and the resulting Hash values are distinct Go
// types, so a digest produced under one tag cannot be passed where a
// digest of another tag is expected.
//
// # Defining a tag
//
// Declare an empty struct and give it an Engine method returning a
// seeded engine. Seeding determines the domain separation:
//
//	type TxID struct{}
//
//	func (TxID) Engine() *taghash.Engine {
//	    return taghash.TaggedEngine("myapp/txid")
//	}
//
//	digest := taghash.Sum[TxID](payload)
//
// TaggedEngine seeds with the SHA-256 midstate convention (the tag's
// own SHA-256 digest absorbed twice before caller data). DerivedEngine
// seeds via BLAKE3 key derivation instead. NewEngine wraps any
// hash.Hash with a 32-byte digest for custom seeding schemes.
//
// # Text form
//
// The canonical text form is 64 lowercase hex characters encoding the
// 32 digest bytes in reverse order. The reversal is a display
// convention only: slice construction, binary serialization, and
// ordering all use storage order.
//
// # Serialization
//
// Hash implements encoding.TextMarshaler and TextUnmarshaler (the hex
// form, picked up by encoding/json), encoding.BinaryMarshaler and
// BinaryUnmarshaler (the raw 32 bytes, picked up by fxamacker/cbor),
// yaml.Marshaler and yaml.Unmarshaler, and the msgpack CustomEncoder
// and CustomDecoder pair.
//
// # Errors
//
// All parse failures are returned as typed errors carrying enough
// context for a precise diagnostic: OddLengthError, InvalidCharError,
// LengthError. Each unwraps to a package sentinel (ErrOddLength,
// ErrInvalidChar, ErrInvalidLength) for errors.Is checks. Malformed
// external input never panics; engine misuse (reuse after finalize, a
// digest size other than 32) does, because it indicates a programming
// error rather than bad data.
package taghash

// Tag is a compile-time marker that selects a pre-seeded hash engine.
// Implementations are zero-size struct types; the tag carries no
// runtime data and exists only to make digests from different domains
// incompatible at the type level.
type Tag interface {
	// Engine returns a fresh engine seeded with this tag's
	// domain-separation prefix. It must be deterministic and free of
	// side effects: two calls return independent engines with
	// identical seeded state.
	Engine() *Engine
}

// New returns a fresh seeded engine for tag T.
func New[T Tag]() *Engine {
	var tag T
	return tag.Engine()
}
