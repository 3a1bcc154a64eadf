package djkit

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Emitters must be safe to call with no observers attached.

func TestEmitFieldCreated(t *testing.T) {
	emitFieldCreated(context.Background(), "upload", 3)
}

func TestEmitProcessStart(t *testing.T) {
	emitProcessStart(context.Background(), "upload", "data.csv")
}

func TestEmitProcessComplete(t *testing.T) {
	ctx := context.Background()
	emitProcessComplete(ctx, "upload", "csv", 10, 2, time.Millisecond, nil)
	emitProcessComplete(ctx, "upload", "csv", 0, 0, time.Millisecond, errors.New("boom"))
}

func TestEmitRenderComplete(t *testing.T) {
	ctx := context.Background()
	emitRenderComplete(ctx, "application/json", 128, nil)
	emitRenderComplete(ctx, "application/json", 0, errors.New("boom"))
}
