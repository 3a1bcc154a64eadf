package djkit

import "encoding/json"

// Codec provides content-type aware marshaling for rendered responses.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)
}

// jsonCodec implements Codec for JSON.
type jsonCodec struct{}

// JSON returns the JSON codec. It is the renderer's default.
func JSON() Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
