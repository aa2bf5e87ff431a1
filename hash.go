package taghash

import (
	"bytes"
	"reflect"
	"time"
)

// Hash is a 32-byte digest produced under tag T. The tag is a
// compile-time marker only: it occupies no memory and does not
// participate in equality, but it makes digests produced under
// different tags distinct, incompatible types.
//
// Hash is comparable with ==; two hashes are equal iff their 32 bytes
// are equal. The zero value is the all-zero digest. Values are
// immutable once constructed.
type Hash[T Tag] struct {
	b [DigestSize]byte
}

// FromEngine finalizes e and wraps the digest. The engine is consumed
// and must not be used again. Panics if e finalizes to anything other
// than 32 bytes, which indicates a broken Tag implementation.
func FromEngine[T Tag](e *Engine) Hash[T] {
	return Hash[T]{b: e.finalize()}
}

// Sum hashes data under tag T in one call: fresh engine, absorb,
// finalize.
func Sum[T Tag](data []byte) Hash[T] {
	start := time.Now()
	e := New[T]()
	e.Absorb(data)
	h := Hash[T]{b: e.finalize()}
	emitDigestComputed(tagName[T](), len(data), time.Since(start))
	return h
}

// FromSlice constructs a Hash from exactly 32 raw digest bytes in
// storage order. The bytes are copied verbatim; the display reversal
// is a text-form convention and does not apply here.
func FromSlice[T Tag](sl []byte) (Hash[T], error) {
	if len(sl) != DigestSize {
		err := &LengthError{Expected: DigestSize, Actual: len(sl)}
		emitParseFailed("slice", len(sl), err)
		return Hash[T]{}, err
	}
	var h Hash[T]
	copy(h.b[:], sl)
	return h, nil
}

// FromHex parses the canonical text form: 64 hex characters encoding
// the digest bytes in reverse order. Any other length is rejected with
// *LengthError before decoding.
func FromHex[T Tag](s string) (Hash[T], error) {
	if len(s) != 2*DigestSize {
		err := &LengthError{Expected: 2 * DigestSize, Actual: len(s)}
		emitParseFailed("hex", len(s), err)
		return Hash[T]{}, err
	}
	arr, err := DecodeArray[[DigestSize]byte](s)
	if err != nil {
		emitParseFailed("hex", len(s), err)
		return Hash[T]{}, err
	}
	var h Hash[T]
	for i, b := range arr {
		h.b[DigestSize-1-i] = b
	}
	return h, nil
}

// Hex returns the canonical text form: 64 lowercase hex characters
// encoding the digest bytes in reverse order.
func (h Hash[T]) Hex() string {
	buf := make([]byte, 0, 2*DigestSize)
	for i := DigestSize - 1; i >= 0; i-- {
		buf = append(buf, hexDigits[h.b[i]>>4], hexDigits[h.b[i]&0x0f])
	}
	return string(buf)
}

// String implements fmt.Stringer; identical to Hex.
func (h Hash[T]) String() string { return h.Hex() }

// Bytes returns a copy of the digest in storage order.
func (h Hash[T]) Bytes() []byte {
	out := make([]byte, DigestSize)
	copy(out, h.b[:])
	return out
}

// Array returns the digest as a fixed-size array in storage order.
func (h Hash[T]) Array() [DigestSize]byte { return h.b }

// Compare orders hashes lexicographically over the raw storage-order
// bytes. The ordering is total and deterministic.
func (h Hash[T]) Compare(other Hash[T]) int {
	return bytes.Compare(h.b[:], other.b[:])
}

// Less reports whether h orders before other.
func (h Hash[T]) Less(other Hash[T]) bool { return h.Compare(other) < 0 }

// IsZero reports whether h is the all-zero digest, the zero value of
// the type.
func (h Hash[T]) IsZero() bool { return h == Hash[T]{} }

// tagName returns the Go type name of the tag, for signal fields.
func tagName[T Tag]() string {
	return reflect.TypeFor[T]().Name()
}
