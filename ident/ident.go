// Package ident implements the OBO identifier lattice: plain identifiers
// (prefixed, unprefixed, or URL) and the kind-refined wrappers the AST
// layer uses to tag an identifier with its ontological role.
package ident

import (
	"net/url"
	"strings"
)

// Ident is any OBO identifier: a Prefixed pair, an Unprefixed bare
// string, or a Url.
type Ident interface {
	identNode()
	// String renders the identifier in its canonical textual form.
	String() string
}

// Prefixed is an identifier of the form "prefix:local".
type Prefixed struct {
	Prefix string
	Local  string
}

func (Prefixed) identNode() {}

func (p Prefixed) String() string {
	return escapeIdentPart(p.Prefix) + ":" + escapeIdentPart(p.Local)
}

// Unprefixed is a bare identifier with no unescaped colon.
type Unprefixed struct {
	Value string
}

func (Unprefixed) identNode() {}

func (u Unprefixed) String() string { return escapeIdentPart(u.Value) }

// Url is an absolute IRI identifier; it round-trips verbatim.
type Url struct {
	Value string
}

func (Url) identNode() {}

func (u Url) String() string { return u.Value }

// Parse classifies text into a Url, Prefixed, or Unprefixed identifier,
// trying each in turn, per the OBO 1.4 grammar: a URL first (it must
// parse as an absolute IRI with a hierarchical part, so "GO:0000001" is
// not taken for a URL), then a prefixed identifier (split on the
// first unescaped colon, both sides non-empty), else an unprefixed
// identifier.
func Parse(text string) (Ident, error) {
	if text == "" {
		return nil, errEmptyIdent
	}
	if u, ok := tryParseURL(text); ok {
		return u, nil
	}
	if idx, ok := firstUnescapedColon(text); ok {
		prefix := unescapeIdentPart(text[:idx])
		local := unescapeIdentPart(text[idx+1:])
		if prefix != "" && local != "" {
			return Prefixed{Prefix: prefix, Local: local}, nil
		}
	}
	return Unprefixed{Value: unescapeIdentPart(text)}, nil
}

type identError string

func (e identError) Error() string { return string(e) }

const errEmptyIdent = identError("identifier must not be empty")

func tryParseURL(text string) (Url, bool) {
	u, err := url.Parse(text)
	if err != nil || !u.IsAbs() || u.Opaque != "" {
		return Url{}, false
	}
	return Url{Value: text}, true
}

// firstUnescapedColon finds the first ':' in text that is not preceded
// by an odd number of backslashes.
func firstUnescapedColon(text string) (int, bool) {
	backslashes := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			backslashes++
		case ':':
			if backslashes%2 == 0 {
				return i, true
			}
			backslashes = 0
		default:
			backslashes = 0
		}
	}
	return 0, false
}

// escapeIdentPart escapes characters forbidden in a bare identifier
// part: ':' (outside its role as the prefix/local separator), '{', '}',
// ',', space, tab, newline, and backslash itself.
func escapeIdentPart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ':', '{', '}', ',', ' ', '\t', '\n':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// unescapeIdentPart reverses escapeIdentPart.
func unescapeIdentPart(s string) string {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Equal reports whether two identifiers denote the same value.
func Equal(a, b Ident) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
