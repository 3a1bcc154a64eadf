// Package djkit provides serialization conveniences for web APIs:
// tabular upload handling, enum fields, value obfuscation, and a
// two-bucket error renderer.
//
// # Tabular uploads
//
// TableField validates an uploaded tabular file end-to-end: it detects
// the format from the filename extension, dispatches to a registered
// Handler, and optionally rewrites rows through a RowValidator before
// handing the Table to the caller.
//
//	field, _ := djkit.NewTableField("report", djkit.Handlers{
//		"csv":  csv.Handler(),
//		"xlsx": excel.Handler(),
//	})
//
//	table, err := field.Process(ctx, djkit.Upload{
//		Name:    header.Filename,
//		Content: body,
//	})
//
// Handlers for csv, excel, json, yaml, msgpack and xml formats live in
// the subpackages of the same name. Options are forwarded per format or
// per handler, with handler-scoped keys winning:
//
//	field.SetFormatOptions("csv", djkit.Options{"delimiter": ";"}).
//		SetHandlerOptions(excel.Handler(), djkit.Options{"sheet": "Data"})
//
// A RowValidator inspects or rewrites each row; returning nil, nil
// keeps the row as parsed:
//
//	field.SetRowValidator(func(row []any, i int, t djkit.Table) ([]any, error) {
//		if row[0] == nil {
//			return nil, fmt.Errorf("missing id")
//		}
//		return nil, nil
//	})
//
// Rows can also be validated through a model type carrying cell tags,
// see ModelValidator and Bind.
//
// # Fields
//
// The remaining field types translate single values at the API
// boundary: Enum maps labels to stored values and back, ObfuscatedField
// masks values on output, Base64Field transcodes, HashedField hashes on
// input, and EncryptedField encrypts at rest. Boundary verbs follow the
// direction of travel: Receive for ingress, Send for egress, Store and
// Load for persistence.
//
// # Error rendering
//
// Field failures are FieldError values naming the field they belong to.
// Renderer produces the standard error body, partitioned into
// field-scoped and non-field-scoped buckets:
//
//	{"field_errors": {"report": ["parse failed for format \"csv\": ..."]}, "non_field_errors": []}
package djkit
