package djkit

import (
	"sync"
)

var (
	defaultHandlers   = make(Handlers)
	defaultHandlersMu sync.RWMutex
)

// Register adds a handler for format to the process-wide default
// registry. Intended for program setup (typically init); fields built
// with NewTableFieldFromRegistry snapshot the registry at construction,
// so registration after that point does not affect existing fields.
func Register(format string, h Handler) {
	defaultHandlersMu.Lock()
	defer defaultHandlersMu.Unlock()
	defaultHandlers[format] = h
}

// Lookup returns the default handler registered for format.
func Lookup(format string) (Handler, bool) {
	defaultHandlersMu.RLock()
	defer defaultHandlersMu.RUnlock()
	h, ok := defaultHandlers[format]
	return h, ok
}

// Formats returns a snapshot of the formats in the default registry.
func Formats() Handlers {
	defaultHandlersMu.RLock()
	defer defaultHandlersMu.RUnlock()

	snapshot := make(Handlers, len(defaultHandlers))
	for format, h := range defaultHandlers {
		snapshot[format] = h
	}
	return snapshot
}

// Reset clears the default registry.
// This is primarily useful for test isolation.
func Reset() {
	defaultHandlersMu.Lock()
	defer defaultHandlersMu.Unlock()
	defaultHandlers = make(Handlers)
}

// NewTableFieldFromRegistry builds a table field from a snapshot of the
// default registry.
func NewTableFieldFromRegistry(name string) (*TableField, error) {
	return NewTableField(name, Formats())
}
