package value

import (
	"testing"

	"github.com/ha1tch/goobo/ident"
)

func relId(name string) ident.RelationId {
	id, err := ident.Parse(name)
	if err != nil {
		panic(err)
	}
	return ident.NewRelationId(id)
}

func TestQuotedStringRoundTrip(t *testing.T) {
	tests := []string{
		`hello`,
		`with "quotes"`,
		`with \backslash`,
		"",
	}
	for _, in := range tests {
		q := QuotedString{Value: in}
		parsed := ParseQuotedString(q.String())
		if parsed.Value != in {
			t.Errorf("round-trip %q: got %q", in, parsed.Value)
		}
	}
}

func TestUnquotedStringRoundTrip(t *testing.T) {
	tests := []string{
		"plain text",
		"line\nbreak",
		"a:b,c{d}e\\f",
	}
	for _, in := range tests {
		u := UnquotedString{Value: in}
		parsed := ParseUnquotedString(u.String())
		if parsed.Value != in {
			t.Errorf("round-trip %q: got %q (serialized %q)", in, parsed.Value, u.String())
		}
	}
}

func TestNaiveDateTimeParseAndFormat(t *testing.T) {
	dt, err := ParseNaiveDateTime("17:03:2019 20:16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewNaiveDateTime(17, 3, 2019, 20, 16)
	if dt != want {
		t.Errorf("got %+v, want %+v", dt, want)
	}
	if dt.String() != "17:03:2019 20:16" {
		t.Errorf("format mismatch: %q", dt.String())
	}
}

func TestNaiveDateTimeBoundary(t *testing.T) {
	dt, err := ParseNaiveDateTime("31:12:9999 23:59")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dt.String() != "31:12:9999 23:59" {
		t.Errorf("boundary round-trip mismatch: %q", dt.String())
	}
}

func TestNaiveDateTimeRejectsOutOfRange(t *testing.T) {
	if _, err := ParseNaiveDateTime("32:12:9999 23:59"); err == nil {
		t.Error("expected error for day 32")
	}
	if _, err := ParseNaiveDateTime("01:13:9999 23:59"); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestQualifierOrdering(t *testing.T) {
	a := Qualifier{Key: relId("comment"), Value: QuotedString{Value: "a"}}
	b := Qualifier{Key: relId("comment"), Value: QuotedString{Value: "b"}}
	c := Qualifier{Key: relId("other"), Value: QuotedString{Value: "a"}}
	if !a.Less(b) {
		t.Error("expected a < b by value")
	}
	if !a.Less(c) {
		t.Error("expected a < c by key")
	}
}
