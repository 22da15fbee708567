package lexer

import (
	"testing"

	"github.com/ha1tch/goobo/token"
)

func TestTokenizeSimpleClause(t *testing.T) {
	input := "format-version: 1.2\n"
	toks := Tokenize(input)

	expected := []struct {
		typ     token.Type
		literal string
	}{
		{token.TAG, "format-version"},
		{token.COLON, ""},
		{token.REST, "1.2"},
		{token.NEWLINE, ""},
		{token.EOF, ""},
	}

	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(expected), len(toks), toks)
	}
	for i, e := range expected {
		if toks[i].Type != e.typ {
			t.Errorf("token %d: expected type %v, got %v", i, e.typ, toks[i].Type)
		}
		if e.literal != "" && toks[i].Literal != e.literal {
			t.Errorf("token %d: expected literal %q, got %q", i, e.literal, toks[i].Literal)
		}
	}
}

func TestTokenizeStanza(t *testing.T) {
	input := "[Term]\nid: GO:0000001\n"
	toks := Tokenize(input)

	if toks[0].Type != token.STANZA || toks[0].Literal != "Term" {
		t.Errorf("expected STANZA(Term), got %v(%q)", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != token.NEWLINE {
		t.Errorf("expected NEWLINE after stanza, got %v", toks[1].Type)
	}
	if toks[2].Type != token.TAG || toks[2].Literal != "id" {
		t.Errorf("expected TAG(id), got %v(%q)", toks[2].Type, toks[2].Literal)
	}
}

func TestTokenizeComment(t *testing.T) {
	input := "is_a: GO:0000002 ! mitochondrion inheritance\n"
	toks := Tokenize(input)

	var rest, comment string
	for _, tok := range toks {
		switch tok.Type {
		case token.REST:
			rest = tok.Literal
		case token.COMMENT:
			comment = tok.Literal
		}
	}
	if rest != "GO:0000002" {
		t.Errorf("expected rest %q, got %q", "GO:0000002", rest)
	}
	if comment != "mitochondrion inheritance" {
		t.Errorf("expected comment %q, got %q", "mitochondrion inheritance", comment)
	}
}

func TestTokenizeEscapedColonNotATagBoundary(t *testing.T) {
	input := `xref: PMID\:12345` + "\n"
	toks := Tokenize(input)
	if toks[0].Type != token.TAG || toks[0].Literal != "xref" {
		t.Fatalf("expected TAG(xref), got %v(%q)", toks[0].Type, toks[0].Literal)
	}
	var rest string
	for _, tok := range toks {
		if tok.Type == token.REST {
			rest = tok.Literal
		}
	}
	if rest != `PMID\:12345` {
		t.Errorf("expected rest %q to keep the escaped colon intact, got %q", `PMID\:12345`, rest)
	}
}

func TestTokenizeLineContinuation(t *testing.T) {
	input := "def: \"first part \\\nsecond part\" []\n"
	toks := Tokenize(input)
	var rest string
	for _, tok := range toks {
		if tok.Type == token.REST {
			rest = tok.Literal
		}
	}
	expected := `"first part second part" []`
	if rest != expected {
		t.Errorf("expected joined rest %q, got %q", expected, rest)
	}
}

func TestTokenizeBlankLinesSkipped(t *testing.T) {
	input := "format-version: 1.2\n\n\ndata-version: releases/2024-01-01\n"
	toks := Tokenize(input)
	var tags []string
	for _, tok := range toks {
		if tok.Type == token.TAG {
			tags = append(tags, tok.Literal)
		}
	}
	if len(tags) != 2 || tags[0] != "format-version" || tags[1] != "data-version" {
		t.Errorf("expected tags [format-version data-version], got %v", tags)
	}
}
