package djkit

import (
	"context"
	"errors"
)

// ErrorResponse is the outward shape of a failed request: errors scoped
// to a field in one bucket, everything else in the other. Both buckets
// are always present so clients can rely on the shape.
type ErrorResponse struct {
	FieldErrors    map[string][]string `json:"field_errors"`
	NonFieldErrors []string            `json:"non_field_errors"`
}

// PartitionErrors splits errs into the two-bucket error shape.
// An error anywhere in a chain wrapped by FieldError lands in
// FieldErrors under its field name, with the inner message; everything
// else goes to NonFieldErrors verbatim.
func PartitionErrors(errs ...error) ErrorResponse {
	resp := ErrorResponse{
		FieldErrors:    make(map[string][]string),
		NonFieldErrors: []string{},
	}

	for _, err := range errs {
		if err == nil {
			continue
		}
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			resp.FieldErrors[fieldErr.Field] = append(resp.FieldErrors[fieldErr.Field], fieldErr.Err.Error())
			continue
		}
		resp.NonFieldErrors = append(resp.NonFieldErrors, err.Error())
	}

	return resp
}

// Renderer marshals request outcomes through a Codec: success payloads
// pass through untouched, failures take the two-bucket error shape.
type Renderer struct {
	codec Codec
}

// NewRenderer creates a renderer using c. A nil codec falls back to JSON.
func NewRenderer(c Codec) *Renderer {
	if c == nil {
		c = JSON()
	}
	return &Renderer{codec: c}
}

// ContentType returns the MIME type of rendered bodies.
func (r *Renderer) ContentType() string {
	return r.codec.ContentType()
}

// Render produces the response body for data. When errs contains any
// non-nil error the body is the partitioned error response and data is
// ignored, mirroring how a failed validation never reaches its payload.
func (r *Renderer) Render(ctx context.Context, data any, errs ...error) ([]byte, error) {
	var payload any = data
	for _, err := range errs {
		if err != nil {
			payload = PartitionErrors(errs...)
			break
		}
	}

	body, err := r.codec.Marshal(payload)
	emitRenderComplete(ctx, r.codec.ContentType(), len(body), err)
	return body, err
}
