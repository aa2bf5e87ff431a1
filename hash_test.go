package taghash

import (
	"errors"
	"strings"
	"testing"
)

type alphaTag struct{}

func (alphaTag) Engine() *Engine { return TaggedEngine("taghash/test/alpha") }

type betaTag struct{}

func (betaTag) Engine() *Engine { return TaggedEngine("taghash/test/beta") }

func TestSum_Deterministic(t *testing.T) {
	payload := []byte("payload")
	if Sum[alphaTag](payload) != Sum[alphaTag](payload) {
		t.Error("Sum should be deterministic")
	}
}

func TestSum_DomainSeparation(t *testing.T) {
	payload := []byte("payload")

	// alphaTag and betaTag digests are distinct Go types; compare the
	// raw arrays to check that the seeds actually differ.
	a := Sum[alphaTag](payload)
	b := Sum[betaTag](payload)
	if a.Array() == b.Array() {
		t.Error("identical payloads under different tags should yield different digests")
	}
}

func TestFromEngine_MatchesSum(t *testing.T) {
	payload := []byte("payload")

	e := New[alphaTag]()
	e.Absorb(payload)
	if FromEngine[alphaTag](e) != Sum[alphaTag](payload) {
		t.Error("FromEngine and Sum should agree")
	}
}

func TestFromSlice(t *testing.T) {
	src := seq(32)

	h, err := FromSlice[alphaTag](src)
	if err != nil {
		t.Fatalf("FromSlice() error: %v", err)
	}

	got := h.Bytes()
	for i, b := range got {
		if b != src[i] {
			t.Fatalf("Bytes()[%d] = %#x, want %#x (bytes must be copied verbatim)", i, b, src[i])
		}
	}
}

func TestFromSlice_WrongLength(t *testing.T) {
	for _, n := range []int{31, 33} {
		_, err := FromSlice[alphaTag](seq(n))
		var lengthErr *LengthError
		if !errors.As(err, &lengthErr) {
			t.Fatalf("FromSlice(%d bytes) error = %v, want *LengthError", n, err)
		}
		if lengthErr.Expected != 32 || lengthErr.Actual != n {
			t.Errorf("LengthError = (%d, %d), want (32, %d)", lengthErr.Expected, lengthErr.Actual, n)
		}
		if !errors.Is(err, ErrInvalidLength) {
			t.Error("error should match ErrInvalidLength")
		}
	}
}

func TestHash_HexRoundTrip(t *testing.T) {
	h, err := FromSlice[alphaTag](seq(32))
	if err != nil {
		t.Fatalf("FromSlice() error: %v", err)
	}

	text := h.Hex()
	if len(text) != 64 {
		t.Fatalf("Hex() length = %d, want 64", len(text))
	}

	parsed, err := FromHex[alphaTag](text)
	if err != nil {
		t.Fatalf("FromHex() error: %v", err)
	}
	if parsed != h {
		t.Error("FromHex(Hex()) should round-trip")
	}
}

func TestHash_DisplayReversal(t *testing.T) {
	src := seq(32)
	h, err := FromSlice[alphaTag](src)
	if err != nil {
		t.Fatalf("FromSlice() error: %v", err)
	}

	reversed := make([]byte, 32)
	for i, b := range src {
		reversed[31-i] = b
	}

	if got, want := h.Hex(), EncodeToString(reversed); got != want {
		t.Errorf("Hex() = %q, want reversed encoding %q", got, want)
	}
}

func TestFromHex_WrongLength(t *testing.T) {
	// Any length other than 64 is a length error, even an odd one:
	// the fixed-length check runs before the codec sees the text.
	for _, n := range []int{62, 63, 65} {
		_, err := FromHex[alphaTag](strings.Repeat("0", n))
		var lengthErr *LengthError
		if !errors.As(err, &lengthErr) {
			t.Fatalf("FromHex(%d chars) error = %v, want *LengthError", n, err)
		}
		if lengthErr.Expected != 64 || lengthErr.Actual != n {
			t.Errorf("LengthError = (%d, %d), want (64, %d)", lengthErr.Expected, lengthErr.Actual, n)
		}
	}
}

func TestFromHex_InvalidChar(t *testing.T) {
	_, err := FromHex[alphaTag](strings.Repeat("0", 63) + "Z")
	var charErr *InvalidCharError
	if !errors.As(err, &charErr) || charErr.Char != 'Z' {
		t.Errorf("FromHex() error = %v, want InvalidCharError('Z')", err)
	}
}

func TestHash_Ordering(t *testing.T) {
	low := make([]byte, 32)
	high := make([]byte, 32)
	high[0] = 1

	a, _ := FromSlice[alphaTag](low)
	b, _ := FromSlice[alphaTag](high)

	if a.Compare(b) >= 0 {
		t.Error("all-zero digest should order before digest with leading 1")
	}
	if !a.Less(b) || b.Less(a) {
		t.Error("Less should agree with Compare")
	}
	if a.Compare(a) != 0 {
		t.Error("a hash should compare equal to itself")
	}
}

func TestHash_IsZero(t *testing.T) {
	var zero Hash[alphaTag]
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if Sum[alphaTag](nil).IsZero() {
		t.Error("a computed digest should not report IsZero")
	}
}

func TestHash_String(t *testing.T) {
	h := Sum[alphaTag]([]byte("payload"))
	if h.String() != h.Hex() {
		t.Error("String() should equal Hex()")
	}
}

func TestHash_ZeroValueHex(t *testing.T) {
	var zero Hash[alphaTag]
	if got, want := zero.Hex(), strings.Repeat("0", 64); got != want {
		t.Errorf("zero value Hex() = %q, want %q", got, want)
	}
}
