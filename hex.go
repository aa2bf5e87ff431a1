package taghash

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// EncodeToString returns the lowercase hex encoding of src, two
// characters per byte in input order. It never fails; the output
// length is always 2*len(src).
func EncodeToString(src []byte) string {
	var b strings.Builder
	b.Grow(2 * len(src))
	for _, c := range src {
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

// AppendEncode appends the lowercase hex encoding of src to dst and
// returns the extended slice.
func AppendEncode(dst, src []byte) []byte {
	for _, c := range src {
		dst = append(dst, hexDigits[c>>4], hexDigits[c&0x0f])
	}
	return dst
}

// Decode returns an iterator over the bytes encoded by s. The text is
// consumed two characters at a time, left to right; digits are
// case-insensitive. An odd-length s yields a single *OddLengthError
// before any byte. The first character that is not a hex digit yields
// an *InvalidCharError carrying that character; within a pair the high
// character is checked before the low one. Iteration stops after the
// first error, so an error at position k never forces bytes beyond k
// to be decoded.
func Decode(s string) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		if len(s)%2 == 1 {
			yield(0, &OddLengthError{Length: len(s)})
			return
		}
		for len(s) > 0 {
			hiRune, hiSize := utf8.DecodeRuneInString(s)
			hi, ok := digit(hiRune)
			if !ok {
				yield(0, &InvalidCharError{Char: hiRune})
				return
			}
			loRune, loSize := utf8.DecodeRuneInString(s[hiSize:])
			lo, ok := digit(loRune)
			if !ok {
				yield(0, &InvalidCharError{Char: loRune})
				return
			}
			if !yield(hi<<4|lo, nil) {
				return
			}
			s = s[hiSize+loSize:]
		}
	}
}

// DecodeString decodes hex text into a new byte slice.
func DecodeString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2)
	for b, err := range Decode(s) {
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// DecodeArray decodes hex text into a fixed-size byte array type. A
// must be a byte array ([N]byte for any N); any other type argument is
// a programming error and panics. The text must be exactly twice the
// array length: odd-length text is rejected with *OddLengthError, any
// other length mismatch with *LengthError.
func DecodeArray[A any](s string) (A, error) {
	var out A
	v := reflect.ValueOf(&out).Elem()
	if v.Kind() != reflect.Array || v.Type().Elem().Kind() != reflect.Uint8 {
		panic(fmt.Sprintf("taghash: DecodeArray target %s is not a byte array", v.Type()))
	}
	n := v.Len()
	if len(s) != 2*n {
		var zero A
		if len(s)%2 == 1 {
			return zero, &OddLengthError{Length: len(s)}
		}
		return zero, &LengthError{Expected: 2 * n, Actual: len(s)}
	}
	i := 0
	for b, err := range Decode(s) {
		if err != nil {
			var zero A
			return zero, err
		}
		v.Index(i).SetUint(uint64(b))
		i++
	}
	return out, nil
}

// digit converts one hex digit to its value. Accepts exactly
// [0-9a-fA-F]; everything else, including non-ASCII runes, is
// rejected.
func digit(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}
