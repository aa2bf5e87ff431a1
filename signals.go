package taghash

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for hash events.
var (
	SignalDigestComputed = capitan.NewSignal("taghash.digest.computed", "Payload hashed under a tag")
	SignalParseFailed    = capitan.NewSignal("taghash.parse.failed", "Hash construction rejected malformed input")
)

// Keys for typed event data.
var (
	KeyTag      = capitan.NewStringKey("tag")
	KeyForm     = capitan.NewStringKey("form")
	KeySize     = capitan.NewIntKey("size")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitDigestComputed emits an event when a payload is hashed under a
// tag via Sum.
func emitDigestComputed(tag string, size int, duration time.Duration) {
	capitan.Emit(context.Background(), SignalDigestComputed,
		KeyTag.Field(tag),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	)
}

// emitParseFailed emits an event when hash construction rejects input.
// form names the input surface ("hex" or "slice"); size is the
// rejected input's length in the unit of that surface.
func emitParseFailed(form string, size int, err error) {
	capitan.Error(context.Background(), SignalParseFailed,
		KeyForm.Field(form),
		KeySize.Field(size),
		KeyError.Field(err),
	)
}
