// Package xml provides the XML format handler.
package xml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/LeOndaz/djkit"
)

// handler implements djkit.Handler for XML documents.
type handler struct{}

var singleton = &handler{}

// Handler returns the XML handler. Each child element of the document
// root is a row; its child elements are cells, keyed by element name.
//
//	<rows>
//	  <row><a>1</a><b>2</b></row>
//	  <row><a>4</a><b>5</b></row>
//	</rows>
//
// Options:
//
//	infer_types - coerce cell text to bool/int64/float64 (default true)
func Handler() djkit.Handler {
	return singleton
}

func (h *handler) Parse(r io.Reader, opts djkit.Options) (djkit.Table, error) {
	dec := xml.NewDecoder(r)
	infer := opts.Bool("infer_types", true)

	// Scan to the document root.
	var root xml.StartElement
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("document has no root element")
			}
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			root = start
			break
		}
	}

	var (
		columns  []string
		position = make(map[string]int)
		rows     [][]any
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			row, err := parseRow(dec, t, &columns, position, infer)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", len(rows), err)
			}
			rows = append(rows, row)
		case xml.EndElement:
			if t.Name == root.Name {
				return djkit.NewTable(columns, rows), nil
			}
		}
	}
}

// parseRow consumes one row element, reading each child element as a cell.
func parseRow(dec *xml.Decoder, start xml.StartElement, columns *[]string, position map[string]int, infer bool) ([]any, error) {
	row := make([]any, len(*columns))

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			text, err := elementText(dec, t)
			if err != nil {
				return nil, err
			}

			key := t.Name.Local
			idx, ok := position[key]
			if !ok {
				idx = len(*columns)
				position[key] = idx
				*columns = append(*columns, key)
			}
			for len(row) <= idx {
				row = append(row, nil)
			}
			if infer {
				row[idx] = djkit.ParseScalar(text)
			} else if text != "" {
				row[idx] = text
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return row, nil
			}
		}
	}
}

// elementText consumes an element's character data up to its end tag.
func elementText(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name == start.Name {
				return strings.TrimSpace(sb.String()), nil
			}
		case xml.StartElement:
			return "", fmt.Errorf("cell %s contains nested elements", start.Name.Local)
		}
	}
}
