// Package parser implements the C6 tree-to-AST builder: it walks a
// parsetree.Node produced by package parsetree and decodes each clause's
// Rest text into a typed ast.Clause, using the ident and value packages
// to parse identifiers, quoted strings, dates, and qualifier lists.
package parser

import (
	"strings"

	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/oboerr"
	"github.com/ha1tch/goobo/value"
)

// restScanner tokenizes the free-form Rest text of a clause line into
// its whitespace-separated fields, honoring quoted strings, bracketed
// xref lists, and braced qualifier lists as atomic fields.
type restScanner struct {
	text string
	pos  int
}

func newRestScanner(text string) *restScanner {
	return &restScanner{text: text}
}

func (s *restScanner) skipSpaces() {
	for s.pos < len(s.text) && (s.text[s.pos] == ' ' || s.text[s.pos] == '\t') {
		s.pos++
	}
}

func (s *restScanner) atEnd() bool {
	s.skipSpaces()
	return s.pos >= len(s.text)
}

func (s *restScanner) rest() string {
	return s.text[s.pos:]
}

// nextField returns the next top-level whitespace-delimited field: a
// quoted string (including its quotes), a bracketed list (including its
// brackets), a braced list (including its braces), or a bare run of
// non-space characters, with backslash-escaped spaces treated as part
// of the field.
func (s *restScanner) nextField() (string, bool) {
	s.skipSpaces()
	if s.pos >= len(s.text) {
		return "", false
	}
	start := s.pos
	switch s.text[s.pos] {
	case '"':
		s.pos++
		for s.pos < len(s.text) {
			if s.text[s.pos] == '\\' && s.pos+1 < len(s.text) {
				s.pos += 2
				continue
			}
			if s.text[s.pos] == '"' {
				s.pos++
				break
			}
			s.pos++
		}
		return s.text[start:s.pos], true
	case '[':
		return s.readDelimited('[', ']'), true
	case '{':
		return s.readDelimited('{', '}'), true
	default:
		for s.pos < len(s.text) {
			if s.text[s.pos] == '\\' && s.pos+1 < len(s.text) {
				s.pos += 2
				continue
			}
			if s.text[s.pos] == ' ' || s.text[s.pos] == '\t' {
				break
			}
			s.pos++
		}
		return s.text[start:s.pos], true
	}
}

func (s *restScanner) readDelimited(open, close byte) string {
	start := s.pos
	s.pos++ // opening delimiter
	depth := 1
	for s.pos < len(s.text) && depth > 0 {
		switch s.text[s.pos] {
		case '\\':
			if s.pos+1 < len(s.text) {
				s.pos++
			}
		case open:
			depth++
		case close:
			depth--
		}
		s.pos++
	}
	return s.text[start:s.pos]
}

// parseXrefList parses a trailing "[xref, xref \"desc\", ...]" field, or
// returns an empty list if text is empty (the field is optional in many
// grammar positions).
func parseXrefList(text string) (value.XrefList, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return value.XrefList{}, nil
	}
	if len(text) < 2 || text[0] != '[' || text[len(text)-1] != ']' {
		return value.XrefList{}, newSyntaxErrorf("xref list in brackets", text)
	}
	inner := text[1 : len(text)-1]
	var xrefs []value.Xref
	for _, part := range splitTopLevelComma(inner) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		x, err := parseXref(part)
		if err != nil {
			return value.XrefList{}, err
		}
		xrefs = append(xrefs, x)
	}
	return value.XrefList{Xrefs: xrefs}, nil
}

func parseXref(text string) (value.Xref, error) {
	sc := newRestScanner(text)
	idField, ok := sc.nextField()
	if !ok {
		return value.Xref{}, newSyntaxErrorf("xref identifier", "empty xref")
	}
	id, err := ident.Parse(idField)
	if err != nil {
		return value.Xref{}, err
	}
	x := value.Xref{Id: id}
	if !sc.atEnd() {
		descField, _ := sc.nextField()
		if strings.HasPrefix(descField, "\"") {
			q := value.ParseQuotedString(descField)
			x.Desc = &q
		}
	}
	return x, nil
}

// splitTopLevelComma splits text on commas that are not nested inside
// quotes or brackets.
func splitTopLevelComma(text string) []string {
	var parts []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\\' && i+1 < len(text):
			i++
		case c == '"':
			inQuote = !inQuote
		case inQuote:
			// skip
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	parts = append(parts, text[start:])
	return parts
}

// parseQualifierList parses a trailing "{key=\"value\", ...}" field.
func parseQualifierList(text string) (value.QualifierList, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return value.QualifierList{}, nil
	}
	if len(text) < 2 || text[0] != '{' || text[len(text)-1] != '}' {
		return value.QualifierList{}, newSyntaxErrorf("qualifier list", text)
	}
	inner := text[1 : len(text)-1]
	var quals []value.Qualifier
	for _, part := range splitTopLevelComma(inner) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		eq := strings.IndexByte(part, '=')
		if eq < 0 {
			return value.QualifierList{}, newSyntaxErrorf("key=value qualifier", part)
		}
		keyId, err := ident.Parse(part[:eq])
		if err != nil {
			return value.QualifierList{}, err
		}
		q := value.Qualifier{
			Key:   ident.NewRelationId(keyId),
			Value: value.ParseQuotedString(part[eq+1:]),
		}
		quals = append(quals, q)
	}
	if len(quals) == 0 {
		return value.QualifierList{}, newSyntaxErrorf("non-empty qualifier list", text)
	}
	return value.QualifierList{Qualifiers: quals}, nil
}

func newSyntaxErrorf(expected, found string) error {
	return &oboerr.SyntaxError{Expected: expected, Found: found}
}
