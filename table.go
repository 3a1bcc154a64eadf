package djkit

import "fmt"

// Table is the in-memory tabular object produced by a format handler.
// Beyond the header, a table only exposes its row count and indexed row
// access; row replacement is a separate capability (RowUpdater) so that
// backends with their own storage can supply their own write path.
type Table interface {
	// Columns returns the header row, in order.
	Columns() []string

	// Len returns the number of data rows.
	Len() int

	// Row returns the row at index, in column order.
	Row(index int) ([]any, error)
}

// RowUpdater teaches a table field how a specific backend performs
// in-place row replacement. One implementation per backend.
type RowUpdater interface {
	// UpdateRow replaces the row at index. The new row has one cell per column.
	UpdateRow(t Table, index int, row []any) error
}

// MemTable is the ordered in-memory Table implementation backing all
// bundled format handlers.
type MemTable struct {
	columns []string
	rows    [][]any
}

// NewTable builds a MemTable from a header and data rows.
// Short rows are padded with nil so every row has one cell per column.
func NewTable(columns []string, rows [][]any) *MemTable {
	for i, row := range rows {
		if len(row) < len(columns) {
			padded := make([]any, len(columns))
			copy(padded, row)
			rows[i] = padded
		}
	}
	return &MemTable{columns: columns, rows: rows}
}

// Columns returns the header row.
func (t *MemTable) Columns() []string {
	return t.columns
}

// Len returns the number of data rows.
func (t *MemTable) Len() int {
	return len(t.rows)
}

// Row returns the row at index.
func (t *MemTable) Row(index int) ([]any, error) {
	if index < 0 || index >= len(t.rows) {
		return nil, ErrRowBounds
	}
	return t.rows[index], nil
}

// setRow replaces the row at index. Used by the MemTable updater.
func (t *MemTable) setRow(index int, row []any) error {
	if index < 0 || index >= len(t.rows) {
		return ErrRowBounds
	}
	t.rows[index] = row
	return nil
}

// memUpdater is the RowUpdater for MemTable.
type memUpdater struct{}

// MemUpdater returns the RowUpdater for tables produced by the bundled
// handlers. It is the default updater of a TableField.
func MemUpdater() RowUpdater {
	return &memUpdater{}
}

func (u *memUpdater) UpdateRow(t Table, index int, row []any) error {
	mt, ok := t.(*MemTable)
	if !ok {
		return fmt.Errorf("memory updater cannot update %T", t)
	}
	return mt.setRow(index, row)
}
