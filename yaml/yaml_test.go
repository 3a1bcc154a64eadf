package yaml_test

import (
	"strings"
	"testing"

	"github.com/LeOndaz/djkit/yaml"
)

func TestParse(t *testing.T) {
	doc := `
- a: 1
  b: hello
  c: true
- a: 2
  b: world
  c: false
`
	table, err := yaml.Handler().Parse(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cols := table.Columns()
	if len(cols) != 3 || cols[0] != "a" || cols[1] != "b" || cols[2] != "c" {
		t.Errorf("Columns = %v, want first-seen key order", cols)
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}

	row, _ := table.Row(0)
	if row[0] != int64(1) {
		t.Errorf("a = %v (%T), want int64", row[0], row[0])
	}
	if row[1] != "hello" {
		t.Errorf("b = %v", row[1])
	}
	if row[2] != true {
		t.Errorf("c = %v", row[2])
	}
}

func TestParse_NewKeysInLaterRecords(t *testing.T) {
	doc := `
- a: 1
- a: 2
  b: 3
`
	table, err := yaml.Handler().Parse(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	first, _ := table.Row(0)
	if first[1] != nil {
		t.Errorf("row 0 b = %v, want nil", first[1])
	}
	second, _ := table.Row(1)
	if second[1] != int64(3) {
		t.Errorf("row 1 b = %v, want 3", second[1])
	}
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"mapping", "a: 1\n"},
		{"scalar", "hello\n"},
		{"sequence of scalars", "- 1\n- 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := yaml.Handler().Parse(strings.NewReader(tt.doc), nil); err == nil {
				t.Errorf("Parse(%q) should fail", tt.doc)
			}
		})
	}
}
