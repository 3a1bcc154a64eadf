package xml_test

import (
	"strings"
	"testing"

	"github.com/LeOndaz/djkit"
	"github.com/LeOndaz/djkit/xml"
)

func TestParse(t *testing.T) {
	doc := `<rows>
		<row><a>1</a><b>hello</b><c>true</c></row>
		<row><a>2</a><b>world</b><c>false</c></row>
	</rows>`

	table, err := xml.Handler().Parse(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cols := table.Columns()
	if len(cols) != 3 || cols[0] != "a" || cols[1] != "b" || cols[2] != "c" {
		t.Errorf("Columns = %v, want first-seen element order", cols)
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

func TestParse_InferenceOff(t *testing.T) {
	doc := `<rows><row><a>1</a><b>true</b></row></rows>`

	table, err := xml.Handler().Parse(strings.NewReader(doc), djkit.Options{"infer_types": false})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	row, _ := table.Row(0)
	if row[0] != "1" || row[1] != "true" {
		t.Errorf("row = %v, want raw strings", row)
	}
}

func TestParse_MissingCellsAreNil(t *testing.T) {
	doc := `<rows>
		<row><a>1</a></row>
		<row><a>2</a><b>3</b></row>
	</rows>`

	table, err := xml.Handler().Parse(strings.NewReader(doc), nil)
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

func TestParse_NestedCells(t *testing.T) {
	doc := `<rows><row><a><nested>1</nested></a></row></rows>`

	if _, err := xml.Handler().Parse(strings.NewReader(doc), nil); err == nil {
		t.Error("nested elements inside a cell should fail")
	}
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"truncated", "<rows><row><a>1</a>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := xml.Handler().Parse(strings.NewReader(tt.doc), nil); err == nil {
				t.Errorf("Parse(%q) should fail", tt.doc)
			}
		})
	}
}

func TestParse_EmptyRoot(t *testing.T) {
	table, err := xml.Handler().Parse(strings.NewReader("<rows></rows>"), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len = %d, want 0", table.Len())
	}
}
