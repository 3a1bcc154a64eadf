package djkit

import "io"

// Handler parses one upload format into a Table.
//
// Implementations must be comparable values (pointer receivers on a
// singleton work well) so they can key handler-scoped options, and must
// be safe for concurrent use: one handler instance serves every request.
type Handler interface {
	// Parse reads a complete document from r. Unknown option keys are ignored.
	Parse(r io.Reader, opts Options) (Table, error)
}

// Handlers maps a lowercase file extension (no leading dot) to the
// handler for that format. The "*" key is a wildcard fallback consulted
// when no extension matches.
type Handlers map[string]Handler

// Wildcard is the Handlers key matching any extension.
const Wildcard = "*"

// Options carries keyword arguments forwarded to a handler. Handlers
// document their own keys; lookups are loosely typed with per-type
// getters so a missing or mistyped key falls back to a default.
type Options map[string]any

// String returns the string at key, or fallback.
func (o Options) String(key, fallback string) string {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// Bool returns the bool at key, or fallback.
func (o Options) Bool(key string, fallback bool) bool {
	if v, ok := o[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// Int returns the int at key, or fallback. int64 values are accepted.
func (o Options) Int(key string, fallback int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return fallback
}

// Rune returns the first rune of the string at key, or fallback.
// Used for single-character options like CSV delimiters.
func (o Options) Rune(key string, fallback rune) rune {
	if s := o.String(key, ""); s != "" {
		return []rune(s)[0]
	}
	return fallback
}

// merge overlays overrides onto o, key by key, returning a new Options.
// Either side may be nil.
func (o Options) merge(overrides Options) Options {
	if len(o) == 0 && len(overrides) == 0 {
		return nil
	}
	merged := make(Options, len(o)+len(overrides))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
