package djkit

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the cell tag with sentinel
	sentinel.Tag("cell")
}

// cellPlan describes how one struct field maps onto a table column.
type cellPlan struct {
	index  []int        // reflect.Value.FieldByIndex access path
	name   string       // field name for error messages
	column int          // column position in the table header
	kind   reflect.Kind // string, int, int64, float64, bool or interface
}

// cellPlans maps T's cell-tagged fields onto the given header.
func cellPlans[T any](columns []string) ([]cellPlan, error) {
	meta := sentinel.Scan[T]()

	position := make(map[string]int, len(columns))
	for i, col := range columns {
		position[col] = i
	}

	var plans []cellPlan
	for _, field := range meta.Fields {
		tag, ok := field.Tags["cell"]
		if !ok || tag == "" || tag == "-" {
			continue
		}

		col, ok := position[tag]
		if !ok {
			return nil, fmt.Errorf("column %q for field %s.%s is not in the table header", tag, meta.TypeName, field.Name)
		}

		kind := field.ReflectType.Kind()
		switch kind {
		case reflect.String, reflect.Int, reflect.Int64, reflect.Float64, reflect.Bool, reflect.Interface:
		default:
			return nil, fmt.Errorf("field %s.%s has unsupported kind %s for cell binding", meta.TypeName, field.Name, kind)
		}

		plans = append(plans, cellPlan{
			index:  field.Index,
			name:   field.Name,
			column: col,
			kind:   kind,
		})
	}

	if len(plans) == 0 {
		return nil, fmt.Errorf("%s has no cell-tagged fields", meta.TypeName)
	}
	return plans, nil
}

// bindInto decodes row cells into obj following plans.
func bindInto(plans []cellPlan, row []any, rv reflect.Value) error {
	for _, plan := range plans {
		if plan.column >= len(row) {
			continue
		}
		cell := row[plan.column]
		field := rv.FieldByIndex(plan.index)

		switch plan.kind {
		case reflect.String:
			field.SetString(coerceString(cell))
		case reflect.Int, reflect.Int64:
			n, err := coerceInt(cell)
			if err != nil {
				return fmt.Errorf("field %s: %w", plan.name, err)
			}
			field.SetInt(n)
		case reflect.Float64:
			x, err := coerceFloat(cell)
			if err != nil {
				return fmt.Errorf("field %s: %w", plan.name, err)
			}
			field.SetFloat(x)
		case reflect.Bool:
			b, err := coerceBool(cell)
			if err != nil {
				return fmt.Errorf("field %s: %w", plan.name, err)
			}
			field.SetBool(b)
		case reflect.Interface:
			field.Set(reflect.ValueOf(&cell).Elem())
		}
	}
	return nil
}

// BindRow decodes the row at index into a fresh T using cell tags:
//
//	type Person struct {
//		Name string `cell:"name"`
//		Age  int64  `cell:"age"`
//	}
func BindRow[T any](t Table, index int) (T, error) {
	var obj T

	row, err := t.Row(index)
	if err != nil {
		return obj, err
	}

	plans, err := cellPlans[T](t.Columns())
	if err != nil {
		return obj, err
	}

	if err := bindInto(plans, row, reflect.ValueOf(&obj).Elem()); err != nil {
		return obj, err
	}
	return obj, nil
}

// Bind decodes every row of t into a []T.
func Bind[T any](t Table) ([]T, error) {
	plans, err := cellPlans[T](t.Columns())
	if err != nil {
		return nil, err
	}

	out := make([]T, t.Len())
	for i := 0; i < t.Len(); i++ {
		row, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		if err := bindInto(plans, row, reflect.ValueOf(&out[i]).Elem()); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return out, nil
}

// RowModel validates, and may normalize, one bound row.
type RowModel interface {
	Validate() error
}

// rowModelPtr constrains PT to *T implementing RowModel.
type rowModelPtr[T any] interface {
	*T
	RowModel
}

// ModelValidator builds a RowValidator from a model type: each row is
// bound into a fresh T, validated, and the model's (possibly
// normalized) values are written back into the row's bound columns.
// Columns without a cell tag keep their original values.
func ModelValidator[T any, PT rowModelPtr[T]]() RowValidator {
	return func(row []any, index int, t Table) ([]any, error) {
		plans, err := cellPlans[T](t.Columns())
		if err != nil {
			return nil, err
		}

		var model T
		rv := reflect.ValueOf(&model).Elem()
		if err := bindInto(plans, row, rv); err != nil {
			return nil, err
		}

		if err := PT(&model).Validate(); err != nil {
			return nil, err
		}

		newRow := make([]any, len(row))
		copy(newRow, row)
		for _, plan := range plans {
			if plan.column >= len(newRow) {
				continue
			}
			newRow[plan.column] = rv.FieldByIndex(plan.index).Interface()
		}
		return newRow, nil
	}
}
