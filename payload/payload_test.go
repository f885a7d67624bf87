package payload

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		kind  Kind
	}{
		{"table", Table},
		{"  Column ", Column},
		{"DATASET", Dataset},
		{"system", System},
	} {
		k, err := ParseKind(test.input)
		if err != nil || k != test.kind {
			t.Errorf("test %d: expected %q to be %s, is %s (err=%v)", i, test.input, test.kind, k, err)
		}
	}
	for _, input := range []string{"", "none", "tables", "view"} {
		if _, err := ParseKind(input); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("expected %q to be rejected, err=%v", input, err)
		}
	}
	for _, k := range Kinds() {
		if MustParseKind(k.String()) != k {
			t.Errorf("kind %s does not survive parsing its name", k)
		}
	}
	if Kind(42).IsValid() || NoKind.IsValid() {
		t.Errorf("expected kinds outside the enumeration to be invalid")
	}
}

func TestKindText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	m := map[string]Kind{}
	if err := json.Unmarshal([]byte(`{"orders":"table","id":"Column"}`), &m); err != nil {
		t.Fatal(err)
	}
	if m["orders"] != Table || m["id"] != Column {
		t.Errorf("unexpected kinds from JSON: %v", m)
	}
	if err := json.Unmarshal([]byte(`{"x":"index"}`), &m); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected unknown kind in JSON to be rejected, err=%v", err)
	}
	if _, err := json.Marshal(NoKind); err == nil {
		t.Errorf("expected NoKind not to be marshalled")
	}
}

func TestParseSystemType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	for _, input := range []string{"Big Query", "big_query", "BigQuery"} {
		if st, err := ParseSystemType(input); err != nil || st != BigQuery {
			t.Errorf("expected %q to be BigQuery, is %s (err=%v)", input, st, err)
		}
	}
	if st, err := ParseSystemType(" SQL  Server "); err != nil || st != SqlServer {
		t.Errorf("expected SqlServer, is %s (err=%v)", st, err)
	}
	if _, err := ParseSystemType("Oracle"); !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("expected ErrUnknownSystem, have %v", err)
	}
}

func TestObjects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	obj, err := NewObject("Table", "orders")
	if err != nil {
		t.Fatal(err)
	}
	if obj.String() != "table orders" || obj.HasDisplayName() {
		t.Errorf("unexpected object %v", obj)
	}
	obj = obj.WithDisplayName("Orders")
	if obj.Display() != "Orders" || !obj.HasDisplayName() {
		t.Errorf("expected display name Orders, is %q", obj.Display())
	}
	if !ObjectNamed("orders", Table)(obj) || ObjectNamed("orders", Column)(obj) {
		t.Errorf("object predicate does not match name and kind")
	}
	if _, err := NewObject("tabel", "orders"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, have %v", err)
	}
	if _, err := NewObject("table", ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, have %v", err)
	}
	if _, err := NewDescription("", "x"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, have %v", err)
	}
	if d := Describe("n"); d.Display() != "n" || d.String() != "n" {
		t.Errorf("expected description to display its name, is %q", d.Display())
	}
}
