package taghash

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the canonical
// hex form. encoding/json picks this up, so a Hash serializes as a
// JSON string of 64 hex characters.
func (h Hash[T]) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the
// canonical hex form.
func (h *Hash[T]) UnmarshalText(text []byte) error {
	parsed, err := FromHex[T](string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler: the raw 32 digest
// bytes in storage order, no reversal. fxamacker/cbor uses this
// automatically, so the compact CBOR form is a 32-byte string.
func (h Hash[T]) MarshalBinary() ([]byte, error) {
	return h.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, requiring
// exactly 32 bytes.
func (h *Hash[T]) UnmarshalBinary(data []byte) error {
	parsed, err := FromSlice[T](data)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical hex
// form as a YAML scalar.
func (h Hash[T]) MarshalYAML() (any, error) {
	return h.Hex(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Hash[T]) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := FromHex[T](s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder: the compact form,
// raw 32 bytes in storage order.
func (h Hash[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(h.Bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder. It accepts the
// compact form (32 raw bytes, as bin or as a string from encoders that
// do not distinguish the two) or the text form (a 64-character hex
// string).
func (h *Hash[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if msgpcode.IsString(code) {
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		if len(s) == DigestSize {
			return h.UnmarshalBinary([]byte(s))
		}
		parsed, err := FromHex[T](s)
		if err != nil {
			return err
		}
		*h = parsed
		return nil
	}
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return h.UnmarshalBinary(b)
}
