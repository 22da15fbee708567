package ast

import (
	"testing"

	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/value"
)

func classId(t *testing.T, text string) ident.ClassId {
	t.Helper()
	id, err := ident.Parse(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return ident.NewClassId(id)
}

func TestHeaderClauseOrdering(t *testing.T) {
	fv := FormatVersion{Value: value.UnquotedString{Value: "1.4"}}
	fv2 := FormatVersion{Value: value.UnquotedString{Value: "2"}}
	dv := DataVersion{Value: value.UnquotedString{Value: "1.4"}}

	if !HeaderClauseLess(fv, fv2) {
		t.Error("expected format-version(1.4) < format-version(2)")
	}
	if !HeaderClauseLess(fv2, dv) {
		t.Error("expected format-version(2) < data-version(1.4): tag position wins over payload")
	}
}

func TestTermClauseOrdering(t *testing.T) {
	name := TermName{Value: value.UnquotedString{Value: "widget"}}
	isA := TermIsA{Value: classId(t, "BFO:0000001")}
	if !TermClauseLess(name, isA) {
		t.Error("expected name before is_a")
	}
}

func TestTypedefNamespaceCardinalityExactlyOne(t *testing.T) {
	var c TypedefNamespace
	if c.Cardinality() != ExactlyOne {
		t.Errorf("typedef namespace must be ExactlyOne, got %v", c.Cardinality())
	}
	var tc TermNamespace
	if tc.Cardinality() != ZeroOrOne {
		t.Errorf("term namespace must be ZeroOrOne, got %v", tc.Cardinality())
	}
}

func TestEntityFrameOrdering(t *testing.T) {
	a := &TermFrame{Id: classId(t, "GO:0000001")}
	b := &TermFrame{Id: classId(t, "GO:0000002")}
	if !EntityFrameLess(a, b) {
		t.Error("expected GO:0000001 before GO:0000002")
	}
}

func TestDocumentSortOrdersEntitiesAndClauses(t *testing.T) {
	doc := &Document{
		Entities: []EntityFrame{
			&TermFrame{
				Id: classId(t, "GO:0000002"),
				Clauses: []TermClause{
					TermIsA{Value: classId(t, "GO:0000099")},
					TermName{Value: value.UnquotedString{Value: "b"}},
				},
			},
			&TermFrame{
				Id: classId(t, "GO:0000001"),
				Clauses: []TermClause{
					TermName{Value: value.UnquotedString{Value: "a"}},
				},
			},
		},
	}
	doc.Sort()

	first, ok := doc.Entities[0].(*TermFrame)
	if !ok || first.Id.String() != "GO:0000001" {
		t.Fatalf("expected GO:0000001 first, got %+v", doc.Entities[0])
	}

	second := doc.Entities[1].(*TermFrame)
	if second.Clauses[0].Tag() != "name" {
		t.Errorf("expected name clause sorted before is_a, got %s first", second.Clauses[0].Tag())
	}
}

func TestClauseEqual(t *testing.T) {
	a := TermName{Value: value.UnquotedString{Value: "x"}}
	b := TermName{Value: value.UnquotedString{Value: "x"}}
	c := TermName{Value: value.UnquotedString{Value: "y"}}
	if !ClauseEqual(a, b) {
		t.Error("expected equal clauses to compare equal")
	}
	if ClauseEqual(a, c) {
		t.Error("expected differing clauses to compare unequal")
	}
}
