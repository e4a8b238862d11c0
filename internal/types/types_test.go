package types

import "testing"

func TestIdentToRecordPointerLevels(t *testing.T) {
	for level := 0; level <= 4; level++ {
		typ := IdentToRecord("struct task_struct", level)

		if got := typ.PointerLevel(); got != level {
			t.Errorf("level %d: expected %d pointer layers, got %d", level, level, got)
		}

		leaf := typ
		for leaf.IsPointer() {
			leaf = leaf.Pointee()
		}
		if !leaf.IsRecord() {
			t.Fatalf("level %d: expected record leaf, got %s", level, leaf.Kind)
		}
		if leaf.Name != "struct task_struct" {
			t.Errorf("level %d: expected leaf name 'struct task_struct', got %q", level, leaf.Name)
		}
		if _, ok := leaf.Record(); ok {
			t.Errorf("level %d: record layout should be unresolved", level)
		}
	}
}

func TestIdentToSizedTypeEnum(t *testing.T) {
	tests := []struct {
		ident string
		name  string
	}{
		{"enum color", "color"},
		{"enum ", ""},
		{"enum a_very_long_enum_name_with_many_values", "a_very_long_enum_name_with_many_values"},
		{"enum enum x", "enum x"},
	}

	for _, tt := range tests {
		typ := IdentToSizedType(tt.ident)
		if !typ.IsEnum() {
			t.Errorf("%q: expected enum, got %s", tt.ident, typ.Kind)
			continue
		}
		if typ.Bits != 64 {
			t.Errorf("%q: expected 64 bits, got %d", tt.ident, typ.Bits)
		}
		if typ.Name != tt.name {
			t.Errorf("%q: expected name %q, got %q", tt.ident, tt.name, typ.Name)
		}
	}
}

func TestIdentToSizedTypeRecord(t *testing.T) {
	for _, ident := range []string{"struct foo", "foo", "enumeration", "union bar"} {
		typ := IdentToSizedType(ident)
		if !typ.IsRecord() {
			t.Errorf("%q: expected record, got %s", ident, typ.Kind)
		}
		if typ.Name != ident {
			t.Errorf("%q: expected name %q, got %q", ident, ident, typ.Name)
		}
		if typ.PointerLevel() != 0 {
			t.Errorf("%q: expected value type", ident)
		}
	}
}

func TestBuilderEnumWidthPolicy(t *testing.T) {
	b := Builder{EnumBits: 32}
	if typ := b.IdentToSizedType("enum state"); typ.Bits != 32 {
		t.Errorf("expected 32 bits, got %d", typ.Bits)
	}

	var zero Builder
	if typ := zero.IdentToSizedType("enum state"); typ.Bits != DefaultEnumBits {
		t.Errorf("expected default %d bits, got %d", DefaultEnumBits, typ.Bits)
	}
}

func TestResolveRecord(t *testing.T) {
	typ := IdentToRecord("struct sock", 0)
	layout := &Record{Size: 16, Fields: []Field{{Name: "family", Type: CreateInteger(16, false)}}}

	resolved := typ.ResolveRecord(layout)
	got, ok := resolved.Record()
	if !ok || got != layout {
		t.Fatalf("expected resolved layout")
	}
	if _, ok := typ.Record(); ok {
		t.Errorf("original descriptor must stay unresolved")
	}
	if f, ok := got.GetField("family"); !ok || f.Type.Bits != 16 {
		t.Errorf("expected field 'family' of 16 bits")
	}
}

func TestSizedTypeString(t *testing.T) {
	tests := []struct {
		typ      SizedType
		expected string
	}{
		{CreateNone(), "none"},
		{CreateUInt64(), "uint64"},
		{CreateInt64(), "int64"},
		{CreateString(64), "string[64]"},
		{IdentToSizedType("enum color"), "enum color"},
		{IdentToRecord("struct file", 2), "struct file * *"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestSizedTypeEqual(t *testing.T) {
	if !IdentToRecord("struct a", 1).Equal(IdentToRecord("struct a", 1)) {
		t.Errorf("identical pointer types should be equal")
	}
	if IdentToRecord("struct a", 1).Equal(IdentToRecord("struct a", 2)) {
		t.Errorf("different pointer levels should differ")
	}
	if CreateInt64().Equal(CreateUInt64()) {
		t.Errorf("signedness should matter")
	}
}
