package taghash

import (
	"errors"
	"testing"
	"time"
)

func TestEmitDigestComputed(_ *testing.T) {
	// Should not panic
	emitDigestComputed("alphaTag", 64, 10*time.Millisecond)
}

func TestEmitParseFailed(_ *testing.T) {
	emitParseFailed("hex", 62, errors.New("test error"))
}

func TestEmitParseFailed_Slice(_ *testing.T) {
	emitParseFailed("slice", 31, &LengthError{Expected: 32, Actual: 31})
}
