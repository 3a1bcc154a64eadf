// Package msgpack provides the MessagePack format handler.
package msgpack

import (
	"errors"
	"fmt"
	"io"

	"github.com/LeOndaz/djkit"
	"github.com/vmihailenco/msgpack/v5"
)

// handler implements djkit.Handler for MessagePack documents.
type handler struct{}

var singleton = &handler{}

// Handler returns the MessagePack handler. The document must be an
// array of maps; columns follow the order keys first appear.
func Handler() djkit.Handler {
	return singleton
}

func (h *handler) Parse(r io.Reader, opts djkit.Options) (djkit.Table, error) {
	dec := msgpack.NewDecoder(r)

	n, err := dec.DecodeArrayLen()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document is empty")
		}
		return nil, err
	}
	if n < 0 {
		return nil, errors.New("document is not an array of maps")
	}

	var (
		columns  []string
		position = make(map[string]int)
		rows     = make([][]any, 0, n)
	)

	for i := 0; i < n; i++ {
		m, err := dec.DecodeMapLen()
		if err != nil {
			return nil, fmt.Errorf("record %d is not a map: %w", i, err)
		}

		row := make([]any, len(columns))
		for j := 0; j < m; j++ {
			key, err := dec.DecodeString()
			if err != nil {
				return nil, fmt.Errorf("record %d has a non-string key: %w", i, err)
			}

			value, err := dec.DecodeInterface()
			if err != nil {
				return nil, fmt.Errorf("record %d, key %q: %w", i, key, err)
			}

			idx, ok := position[key]
			if !ok {
				idx = len(columns)
				position[key] = idx
				columns = append(columns, key)
			}
			for len(row) <= idx {
				row = append(row, nil)
			}
			row[idx] = normalize(value)
		}
		rows = append(rows, row)
	}

	return djkit.NewTable(columns, rows), nil
}

// normalize widens msgpack's narrow integer cells to int64.
func normalize(v any) any {
	switch c := v.(type) {
	case int:
		return int64(c)
	case int8:
		return int64(c)
	case int16:
		return int64(c)
	case int32:
		return int64(c)
	case uint8:
		return int64(c)
	case uint16:
		return int64(c)
	case uint32:
		return int64(c)
	case uint64:
		return int64(c)
	case float32:
		return float64(c)
	}
	return v
}
