package djkit

import (
	"encoding/base64"
	"fmt"
)

// Base64Field accepts base64 input and re-encodes on output. In its
// default direction, Receive decodes inbound base64 text and Send
// encodes the stored value back; Reverse flips both directions for
// callers that store the encoded form instead.
type Base64Field struct {
	reverse bool
	enc     *base64.Encoding
}

// NewBase64Field creates a base64 field using standard encoding.
func NewBase64Field() *Base64Field {
	return &Base64Field{enc: base64.StdEncoding}
}

// Reverse flips the field's direction: Receive encodes and Send
// decodes. Returns the field for chaining.
func (f *Base64Field) Reverse() *Base64Field {
	f.reverse = true
	return f
}

// Receive converts an inbound value into its internal form.
func (f *Base64Field) Receive(data string) (string, error) {
	if f.reverse {
		return f.enc.EncodeToString([]byte(data)), nil
	}
	return f.decode(data)
}

// Send converts the internal value into its outward representation.
func (f *Base64Field) Send(value string) (string, error) {
	if f.reverse {
		return f.decode(value)
	}
	return f.enc.EncodeToString([]byte(value)), nil
}

func (f *Base64Field) decode(data string) (string, error) {
	raw, err := f.enc.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("value is not valid base64: %w", err)
	}
	return string(raw), nil
}
