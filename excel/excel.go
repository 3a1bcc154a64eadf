// Package excel provides the Excel workbook handler (xlsx family).
package excel

import (
	"fmt"
	"io"

	"github.com/LeOndaz/djkit"
	"github.com/xuri/excelize/v2"
)

// Formats is the set of workbook extensions this handler serves.
// Register the handler under each of them:
//
//	handlers := djkit.Handlers{}
//	for _, f := range excel.Formats {
//		handlers[f] = excel.Handler()
//	}
var Formats = []string{"xlsx", "xlsm", "xltx", "xltm"}

// handler implements djkit.Handler for Excel workbooks.
type handler struct{}

var singleton = &handler{}

// Handler returns the Excel handler. The first row of the chosen sheet
// is the header row.
//
// Options:
//
//	sheet       - sheet name (default: first sheet in the workbook)
//	infer_types - coerce cells to bool/int64/float64 (default true)
func Handler() djkit.Handler {
	return singleton
}

func (h *handler) Parse(r io.Reader, opts djkit.Options) (djkit.Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	sheet := opts.String("sheet", "")
	if sheet == "" {
		sheet = sheets[0]
	} else {
		found := false
		for _, s := range sheets {
			if s == sheet {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("sheet not found: %s", sheet)
		}
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty: %s", sheet)
	}

	// excelize returns ragged rows, NewTable pads them to the header width.
	header := rows[0]
	data := djkit.InferRows(rows[1:], opts.Bool("infer_types", true))
	return djkit.NewTable(header, data), nil
}
