package goobo

import (
	"strings"
	"testing"
)

const doc1 = `format-version: 1.4
default-namespace: GO

[Term]
id: GO:0000001
name: mitochondrion inheritance
namespace: biological_process
synonym: "mitochondrial inheritance" EXACT []
xref: Wikipedia:Mitochondrial_inheritance

[Typedef]
id: part_of
name: part of
namespace: external
`

func TestParseTextThenWriteTextRoundTrips(t *testing.T) {
	d, err := ParseText(doc1)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if len(d.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(d.Entities))
	}

	var buf strings.Builder
	if err := WriteText(&buf, d); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if !strings.Contains(buf.String(), "id: GO:0000001") {
		t.Errorf("expected serialized output to contain the term id, got:\n%s", buf.String())
	}
}

func TestInspectorFindsXrefsAndSynonyms(t *testing.T) {
	d, err := ParseText(doc1)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	insp := NewInspector(d)
	if len(insp.FindXrefs()) != 1 {
		t.Errorf("expected 1 xref, got %d", len(insp.FindXrefs()))
	}
	if len(insp.FindSynonyms()) != 1 {
		t.Errorf("expected 1 synonym, got %d", len(insp.FindSynonyms()))
	}
}

func TestValidateFlagsInvalidDocument(t *testing.T) {
	bad := `[Typedef]
id: part_of
`
	d, err := ParseText(bad)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	errs := Validate(d)
	if len(errs) == 0 {
		t.Error("expected a missing-namespace violation")
	}
}
