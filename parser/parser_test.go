package parser

import (
	"testing"

	"github.com/ha1tch/goobo/ast"
)

func TestParseDocumentHeaderAndTerm(t *testing.T) {
	input := "format-version: 1.4\n" +
		"default-namespace: GO\n" +
		"\n" +
		"[Term]\n" +
		"id: GO:0000001\n" +
		"name: mitochondrion inheritance\n" +
		"namespace: biological_process\n" +
		"is_a: GO:0048308 ! organelle inheritance\n"

	doc, err := ParseDocument(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Header.Clauses) != 2 {
		t.Fatalf("expected 2 header clauses, got %d", len(doc.Header.Clauses))
	}
	if len(doc.Entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(doc.Entities))
	}
	term, ok := doc.Entities[0].(*ast.TermFrame)
	if !ok {
		t.Fatalf("expected *ast.TermFrame, got %T", doc.Entities[0])
	}
	if term.Id.String() != "GO:0000001" {
		t.Errorf("unexpected id: %s", term.Id.String())
	}
	if len(term.Clauses) != 3 {
		t.Fatalf("expected 3 clauses, got %d", len(term.Clauses))
	}
	isA, ok := term.Clauses[2].(ast.TermIsA)
	if !ok {
		t.Fatalf("expected TermIsA, got %T", term.Clauses[2])
	}
	if comment, has := isA.Comment(); !has || comment != "organelle inheritance" {
		t.Errorf("expected trailing comment, got %q (has=%v)", comment, has)
	}
}

func TestParseEntityFrameMissingIdFails(t *testing.T) {
	_, err := ParseEntityFrame("[Term]\nname: widget\n")
	if err == nil {
		t.Fatal("expected error for missing id clause")
	}
}

func TestParsePropertyValueTyped(t *testing.T) {
	pv, err := parsePropertyValue(`shape "round" xsd:string`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	typed, ok := pv.(interface{ String() string })
	if !ok {
		t.Fatalf("expected a stringable property value")
	}
	if typed.String() != `shape "round" xsd:string` {
		t.Errorf("round-trip mismatch: %s", typed.String())
	}
}
