package ident

import "testing"

func TestParseKinds(t *testing.T) {
	tests := []struct {
		input string
		want  string // the Go type name we expect
	}{
		{"GO:0000001", "ident.Prefixed"},
		{"http://purl.obolibrary.org/obo/GO_0000001", "ident.Url"},
		{"part_of", "ident.Unprefixed"},
	}

	for _, tt := range tests {
		id, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tt.input, err)
		}
		switch tt.want {
		case "ident.Prefixed":
			if _, ok := id.(Prefixed); !ok {
				t.Errorf("Parse(%q) = %T, want Prefixed", tt.input, id)
			}
		case "ident.Url":
			if _, ok := id.(Url); !ok {
				t.Errorf("Parse(%q) = %T, want Url", tt.input, id)
			}
		case "ident.Unprefixed":
			if _, ok := id.(Unprefixed); !ok {
				t.Errorf("Parse(%q) = %T, want Unprefixed", tt.input, id)
			}
		}
	}
}

func TestPrefixedRoundTrip(t *testing.T) {
	id, err := Parse("GO:0000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "GO:0000001" {
		t.Errorf("round-trip mismatch: got %q", id.String())
	}
}

func TestEscapedColonStaysUnprefixed(t *testing.T) {
	id, err := Parse(`a\:b`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, ok := id.(Unprefixed)
	if !ok {
		t.Fatalf("expected Unprefixed, got %T", id)
	}
	if u.Value != "a:b" {
		t.Errorf("expected unescaped value %q, got %q", "a:b", u.Value)
	}
	if id.String() != `a\:b` {
		t.Errorf("expected re-escaped %q, got %q", `a\:b`, id.String())
	}
}

func TestKindRefinementWidenNarrow(t *testing.T) {
	plain, _ := Parse("is_a")
	rel := NewRelationId(plain)
	if !Equal(rel.Unwrap(), plain) {
		t.Errorf("narrow(widen(x)) != x: got %v, want %v", rel.Unwrap(), plain)
	}
}

func TestParseEmptyFails(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("expected error parsing empty identifier")
	}
}
