// Package csv provides the CSV format handler.
package csv

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/LeOndaz/djkit"
)

// handler implements djkit.Handler for CSV documents.
type handler struct{}

var singleton = &handler{}

// Handler returns the CSV handler. The first record is the header row.
//
// Options:
//
//	delimiter   - field separator (first rune, default ",")
//	comment     - comment character, such lines are skipped
//	trim_space  - trim leading space in fields (default false)
//	lazy_quotes - allow bare quotes inside fields (default false)
//	infer_types - coerce cells to bool/int64/float64 (default true)
func Handler() djkit.Handler {
	return singleton
}

func (h *handler) Parse(r io.Reader, opts djkit.Options) (djkit.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Rune("delimiter", ',')
	reader.TrimLeadingSpace = opts.Bool("trim_space", false)
	reader.LazyQuotes = opts.Bool("lazy_quotes", false)
	if c := opts.Rune("comment", 0); c != 0 {
		reader.Comment = c
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("document has no header row")
	}

	header := records[0]
	rows := djkit.InferRows(records[1:], opts.Bool("infer_types", true))
	return djkit.NewTable(header, rows), nil
}
