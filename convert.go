package djkit

import (
	"fmt"
	"strconv"
)

// ParseScalar converts a raw cell into its most specific scalar type:
// bool, int64, float64, or the original string. Empty cells become nil.
// Text-based handlers (csv, excel) use it when type inference is on.
func ParseScalar(value string) any {
	if value == "" {
		return nil
	}

	if value == "true" {
		return true
	}
	if value == "false" {
		return false
	}

	if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
		return intVal
	}

	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}

	return value
}

// InferRows converts a matrix of raw cells into typed rows. When infer
// is false the cells stay strings (empty cells still become nil).
func InferRows(raw [][]string, infer bool) [][]any {
	rows := make([][]any, len(raw))
	for i, r := range raw {
		row := make([]any, len(r))
		for j, cell := range r {
			if infer {
				row[j] = ParseScalar(cell)
				continue
			}
			if cell == "" {
				row[j] = nil
			} else {
				row[j] = cell
			}
		}
		rows[i] = row
	}
	return rows
}

// coerceString renders any supported cell value as a string.
func coerceString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

// coerceInt converts a cell to int64.
func coerceInt(v any) (int64, error) {
	switch c := v.(type) {
	case int64:
		return c, nil
	case int:
		return int64(c), nil
	case float64:
		return int64(c), nil
	case string:
		return strconv.ParseInt(c, 10, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to int64", v)
}

// coerceFloat converts a cell to float64.
func coerceFloat(v any) (float64, error) {
	switch c := v.(type) {
	case float64:
		return c, nil
	case int64:
		return float64(c), nil
	case int:
		return float64(c), nil
	case string:
		return strconv.ParseFloat(c, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to float64", v)
}

// coerceBool converts a cell to bool.
func coerceBool(v any) (bool, error) {
	switch c := v.(type) {
	case bool:
		return c, nil
	case string:
		return strconv.ParseBool(c)
	}
	return false, fmt.Errorf("cannot convert %T to bool", v)
}
