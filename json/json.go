// Package json provides the JSON format handler.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/LeOndaz/djkit"
)

// handler implements djkit.Handler for JSON documents.
type handler struct{}

var singleton = &handler{}

// Handler returns the JSON handler. Two document shapes are accepted:
// an array of objects (columns in first-seen key order), or a split
// document {"columns": [...], "data": [[...], ...]}.
func Handler() djkit.Handler {
	return singleton
}

// splitDocument is the {"columns": ..., "data": ...} shape.
type splitDocument struct {
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data"`
}

func (h *handler) Parse(r io.Reader, opts djkit.Options) (djkit.Table, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(buf, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errors.New("document is empty")
	}

	switch trimmed[0] {
	case '{':
		return parseSplit(trimmed)
	case '[':
		return parseRecords(trimmed)
	}
	return nil, errors.New("document is not a JSON array or object")
}

// parseSplit reads the split shape, where the header is explicit.
func parseSplit(buf []byte) (djkit.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()

	var doc splitDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Columns) == 0 {
		return nil, errors.New(`document has no "columns"`)
	}

	for i, row := range doc.Data {
		for j, cell := range row {
			doc.Data[i][j] = normalize(cell)
		}
	}
	return djkit.NewTable(doc.Columns, doc.Data), nil
}

// parseRecords reads an array of objects, token by token so the column
// order follows the order keys first appear in the document.
func parseRecords(buf []byte) (djkit.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil { // opening [
		return nil, err
	}

	var (
		columns  []string
		position = make(map[string]int)
		rows     [][]any
	)

	for dec.More() {
		tok, err := dec.Token() // opening {
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, fmt.Errorf("record %d is not an object", len(rows))
		}

		row := make([]any, len(columns))
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key := keyTok.(string)

			var value any
			if err := dec.Decode(&value); err != nil {
				return nil, err
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
		if _, err := dec.Token(); err != nil { // closing }
			return nil, err
		}
		rows = append(rows, row)
	}

	if _, err := dec.Token(); err != nil { // closing ]
		return nil, err
	}

	return djkit.NewTable(columns, rows), nil
}

// normalize converts json.Number cells into int64 or float64.
func normalize(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
