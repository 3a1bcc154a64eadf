// Package yaml provides the YAML format handler.
package yaml

import (
	"errors"
	"fmt"
	"io"

	"github.com/LeOndaz/djkit"
	"gopkg.in/yaml.v3"
)

// handler implements djkit.Handler for YAML documents.
type handler struct{}

var singleton = &handler{}

// Handler returns the YAML handler. The document must be a sequence of
// mappings; columns follow the order keys first appear.
func Handler() djkit.Handler {
	return singleton
}

func (h *handler) Parse(r io.Reader, opts djkit.Options) (djkit.Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document is empty")
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.New("document is empty")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, errors.New("document is not a sequence of mappings")
	}

	var (
		columns  []string
		position = make(map[string]int)
		rows     [][]any
	)

	for i, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("record %d is not a mapping", i)
		}

		row := make([]any, len(columns))
		// Mapping content alternates key and value nodes.
		for j := 0; j+1 < len(item.Content); j += 2 {
			key := item.Content[j].Value

			var value any
			if err := item.Content[j+1].Decode(&value); err != nil {
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

// normalize widens yaml's native int cells to int64.
func normalize(v any) any {
	if i, ok := v.(int); ok {
		return int64(i)
	}
	return v
}
