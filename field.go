package djkit

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Upload is a file received from a client: raw content plus the
// filename the format is detected from. It is read once per Process.
type Upload struct {
	Name    string
	Content []byte
}

// RowValidator is the optional per-row hook invoked by Process with the
// row, its index, and the whole table. Returning a replacement row
// writes it back at that index; returning nil, nil leaves the row
// untouched (the discard sentinel). Errors abort processing and
// surface with the row index attached.
type RowValidator func(row []any, index int, t Table) ([]any, error)

// TableField validates an uploaded tabular file: it detects the format
// from the filename, dispatches to the registered handler, and
// optionally rewrites rows through a RowValidator.
//
// Configuration is fixed at construction: configure handlers, options,
// validator and updater before the first Process call. A configured
// field is safe for concurrent Process calls; nothing mutates after
// setup.
//
// The field is write-only. It never serializes a Table back out;
// Send always fails with ErrWriteOnly.
type TableField struct {
	name        string
	handlers    Handlers
	formatOpts  map[string]Options
	handlerOpts map[Handler]Options
	validator   RowValidator
	updater     RowUpdater
}

// NewTableField creates a table upload field named name (used to scope
// validation errors) with the given format handlers.
//
// Handler keys must be lowercase extensions without a leading dot, or
// the "*" wildcard. The map is copied; later mutation of the argument
// does not affect the field.
func NewTableField(name string, handlers Handlers) (*TableField, error) {
	if len(handlers) == 0 {
		return nil, ErrNoHandlers
	}

	registry := make(Handlers, len(handlers))
	for format, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("nil handler for format %q", format)
		}
		if format != Wildcard {
			if format == "" || strings.HasPrefix(format, ".") || format != strings.ToLower(format) {
				return nil, fmt.Errorf("invalid format key %q: use a lowercase extension without a leading dot", format)
			}
		}
		registry[format] = h
	}

	f := &TableField{
		name:        name,
		handlers:    registry,
		formatOpts:  make(map[string]Options),
		handlerOpts: make(map[Handler]Options),
		updater:     MemUpdater(),
	}

	emitFieldCreated(context.Background(), name, len(registry))
	return f, nil
}

// SetFormatOptions forwards opts to whichever handler serves format.
// Returns the field for chaining.
func (f *TableField) SetFormatOptions(format string, opts Options) *TableField {
	f.formatOpts[strings.ToLower(format)] = opts
	return f
}

// SetHandlerOptions forwards opts to h whenever it is invoked, for any
// format it serves. Keys here override format-scoped keys.
// Returns the field for chaining.
func (f *TableField) SetHandlerOptions(h Handler, opts Options) *TableField {
	f.handlerOpts[h] = opts
	return f
}

// SetRowValidator installs the per-row hook. Without one, Process
// returns the parsed table as-is and never iterates rows.
// Returns the field for chaining.
func (f *TableField) SetRowValidator(v RowValidator) *TableField {
	f.validator = v
	return f
}

// SetUpdater replaces the row-replacement capability. The default
// updater handles tables produced by the bundled handlers.
// Returns the field for chaining.
func (f *TableField) SetUpdater(u RowUpdater) *TableField {
	f.updater = u
	return f
}

// Name returns the field name errors are scoped under.
func (f *TableField) Name() string {
	return f.name
}

// AllowedFormats returns the sorted key set of the field's handler
// registry. Introspection only; calling it parses nothing.
func (f *TableField) AllowedFormats() []string {
	formats := make([]string, 0, len(f.handlers))
	for format := range f.handlers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// IsAllowedFormat reports whether name (case-insensitive) is a key of
// the handler registry.
func (f *TableField) IsAllowedFormat(name string) bool {
	_, ok := f.handlers[strings.ToLower(name)]
	return ok
}

// Process validates upload end-to-end: format detection, dispatch to
// the handler with the effective options, then the optional row pass.
//
// Format and parse failures come back wrapped in a FieldError carrying
// the field name, so callers can aggregate them with sibling fields'
// errors. Row validator failures propagate as RowError with the
// validator's own error preserved, deliberately not field-wrapped.
func (f *TableField) Process(ctx context.Context, upload Upload) (Table, error) {
	start := time.Now()
	emitProcessStart(ctx, f.name, upload.Name)

	var (
		retErr      error
		rows        int
		transformed int
	)
	format := formatOf(upload.Name)
	defer func() {
		emitProcessComplete(ctx, f.name, format, rows, transformed, time.Since(start), retErr)
	}()

	if format == "" {
		retErr = NewFieldError(f.name, newFormatError(format))
		return nil, retErr
	}

	h, ok := f.handlers[format]
	if !ok {
		h, ok = f.handlers[Wildcard]
	}
	if !ok {
		retErr = NewFieldError(f.name, newFormatError(format))
		return nil, retErr
	}

	opts := f.formatOpts[format].merge(f.handlerOpts[h])

	t, err := h.Parse(bytes.NewReader(upload.Content), opts)
	if err != nil {
		retErr = NewFieldError(f.name, newParseError(format, err))
		return nil, retErr
	}
	rows = t.Len()

	if f.validator == nil {
		return t, nil
	}

	columns := len(t.Columns())
	for i := 0; i < t.Len(); i++ {
		row, err := t.Row(i)
		if err != nil {
			retErr = newRowError(i, err)
			return nil, retErr
		}

		newRow, err := f.validator(row, i, t)
		if err != nil {
			retErr = newRowError(i, err)
			return nil, retErr
		}
		if newRow == nil {
			continue
		}

		if len(newRow) != columns {
			retErr = newRowError(i, fmt.Errorf("replacement row has %d cells, table has %d columns", len(newRow), columns))
			return nil, retErr
		}
		if err := f.updater.UpdateRow(t, i, newRow); err != nil {
			retErr = newRowError(i, err)
			return nil, retErr
		}
		transformed++
	}

	return t, nil
}

// Send always fails: the field accepts uploads but never serializes a
// table back into an outward representation.
func (f *TableField) Send(Table) ([]byte, error) {
	return nil, ErrWriteOnly
}

// formatOf extracts the lowercase extension after the last dot of name.
// Returns "" when there is none.
func formatOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
