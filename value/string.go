// Package value implements the OBO primitive value types: quoted and
// unquoted strings, dates, xrefs, qualifiers, property values, synonyms,
// and imports.
package value

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// QuotedString is free-form text serialized between double quotes, with
// '"' and '\' escaped.
type QuotedString struct {
	Value string
}

// ParseQuotedString unescapes the raw token text (including its
// surrounding quotes) of a quoted string.
func ParseQuotedString(raw string) QuotedString {
	inner := raw
	if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
		inner = inner[1 : len(inner)-1]
	}
	var b strings.Builder
	escaped := false
	for _, r := range inner {
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
	return QuotedString{Value: b.String()}
}

func (q QuotedString) String() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range q.Value {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// NFC returns the Unicode-NFC-normalized form of the string's value.
// Round-trip equality between two QuotedStrings sourced from curators
// using different composed/decomposed diacritics is defined modulo this
// normalization.
func (q QuotedString) NFC() string {
	return norm.NFC.String(q.Value)
}

// EqualModuloNFC reports whether two QuotedStrings denote the same text
// once both are normalized to Unicode NFC.
func (q QuotedString) EqualModuloNFC(other QuotedString) bool {
	return q.NFC() == other.NFC()
}

// UnquotedString is text drawn from OBO's restricted unquoted character
// class: newlines, tabs, commas, braces, colons, double quotes, and
// backslashes are escaped.
type UnquotedString struct {
	Value string
}

// ParseUnquotedString unescapes the raw token text of an unquoted
// string, honoring the full unquoted escape set: \n \t \\ \" \: \, \{ \}.
func ParseUnquotedString(raw string) UnquotedString {
	var b strings.Builder
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case 'n':
				b.WriteByte('\n')
				i += 2
				continue
			case 't':
				b.WriteByte('\t')
				i += 2
				continue
			case '\\', '"', ':', ',', '{', '}':
				b.WriteByte(raw[i+1])
				i += 2
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return UnquotedString{Value: b.String()}
}

func (u UnquotedString) String() string {
	var b strings.Builder
	for _, r := range u.Value {
		switch r {
		case '\n':
			b.WriteString(`\n`)
			continue
		case '\t':
			b.WriteString(`\t`)
			continue
		case '\\', '"', ':', ',', '{', '}':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
