package djkit

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for field events.
var (
	SignalFieldCreated    = capitan.NewSignal("djkit.field.created", "Table field instantiated")
	SignalProcessStart    = capitan.NewSignal("djkit.process.start", "Upload processing beginning")
	SignalProcessComplete = capitan.NewSignal("djkit.process.complete", "Upload processing finished")
	SignalRenderComplete  = capitan.NewSignal("djkit.render.complete", "Response rendering finished")
)

// Keys for typed event data.
var (
	KeyField       = capitan.NewStringKey("field")
	KeyFormat      = capitan.NewStringKey("format")
	KeyFilename    = capitan.NewStringKey("filename")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyRows        = capitan.NewIntKey("rows")
	KeyTransformed = capitan.NewIntKey("transformed")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitFieldCreated emits an event when a table field is created.
func emitFieldCreated(ctx context.Context, field string, formats int) {
	capitan.Emit(ctx, SignalFieldCreated,
		KeyField.Field(field),
		KeyRows.Field(formats),
	)
}

// emitProcessStart emits an event when upload processing begins.
func emitProcessStart(ctx context.Context, field, filename string) {
	capitan.Emit(ctx, SignalProcessStart,
		KeyField.Field(field),
		KeyFilename.Field(filename),
	)
}

// emitProcessComplete emits an event when upload processing finishes.
func emitProcessComplete(ctx context.Context, field, format string, rows, transformed int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyField.Field(field),
		KeyFormat.Field(format),
		KeyRows.Field(rows),
		KeyTransformed.Field(transformed),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalProcessComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalProcessComplete, fields...)
	}
}

// emitRenderComplete emits an event when a response body is rendered.
func emitRenderComplete(ctx context.Context, contentType string, size int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRenderComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRenderComplete, fields...)
	}
}
