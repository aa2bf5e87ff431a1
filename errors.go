package taghash

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrOddLength indicates hex text with an odd number of characters.
	ErrOddLength = errors.New("odd length hex string")

	// ErrInvalidChar indicates a character that is not a hex digit.
	ErrInvalidChar = errors.New("invalid hex character")

	// ErrInvalidLength indicates input that does not match a required
	// fixed length.
	ErrInvalidLength = errors.New("invalid length")
)

// OddLengthError reports hex text whose length is odd. Hex text always
// has two characters per byte, so an odd length can never decode.
type OddLengthError struct {
	Length int // Length of the rejected text in bytes
}

func (e *OddLengthError) Error() string {
	return fmt.Sprintf("odd length hex string: %d characters", e.Length)
}

func (e *OddLengthError) Unwrap() error { return ErrOddLength }

// InvalidCharError reports the first character that is not a valid
// hexadecimal digit. Within a two-character pair the high digit is
// checked first, so if both are invalid the high one is reported.
type InvalidCharError struct {
	Char rune // Offending character
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid hex character %q", e.Char)
}

func (e *InvalidCharError) Unwrap() error { return ErrInvalidChar }

// LengthError reports a fixed-length mismatch. Expected and Actual are
// in the unit of the rejected input: hex characters when text was
// rejected, bytes when a byte slice was rejected.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid length: expected %d, got %d", e.Expected, e.Actual)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }
