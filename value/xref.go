package value

import (
	"strings"

	"github.com/ha1tch/goobo/ident"
)

// Xref is an external cross-reference, optionally annotated with a
// description.
type Xref struct {
	Id   ident.Ident
	Desc *QuotedString
}

func (x Xref) String() string {
	if x.Desc == nil {
		return x.Id.String()
	}
	return x.Id.String() + " " + x.Desc.String()
}

// XrefList is an ordered, possibly-empty list of Xref, serialized
// bracketed and comma-separated: "[A:1, B:2 \"desc\"]".
type XrefList struct {
	Xrefs []Xref
}

func (l XrefList) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range l.Xrefs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(x.String())
	}
	b.WriteByte(']')
	return b.String()
}
