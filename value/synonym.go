package value

import (
	"strings"

	"github.com/ha1tch/goobo/ident"
)

// SynonymScope restricts how broadly a Synonym applies relative to the
// name of its owning entity.
type SynonymScope int

const (
	ScopeExact SynonymScope = iota
	ScopeBroad
	ScopeNarrow
	ScopeRelated
)

func (s SynonymScope) String() string {
	switch s {
	case ScopeExact:
		return "EXACT"
	case ScopeBroad:
		return "BROAD"
	case ScopeNarrow:
		return "NARROW"
	case ScopeRelated:
		return "RELATED"
	default:
		return "EXACT"
	}
}

type scopeError string

func (e scopeError) Error() string { return string(e) }

// ParseSynonymScope parses one of EXACT, BROAD, NARROW, RELATED.
func ParseSynonymScope(text string) (SynonymScope, error) {
	switch text {
	case "EXACT":
		return ScopeExact, nil
	case "BROAD":
		return ScopeBroad, nil
	case "NARROW":
		return ScopeNarrow, nil
	case "RELATED":
		return ScopeRelated, nil
	default:
		return 0, scopeError("unknown synonym scope: " + text)
	}
}

// Synonym denotes an alternative name for the embedding entity.
type Synonym struct {
	Text    QuotedString
	Scope   SynonymScope
	Type    *ident.SynonymTypeId
	Xrefs   XrefList
}

func (s Synonym) String() string {
	var b strings.Builder
	b.WriteString(s.Text.String())
	b.WriteByte(' ')
	b.WriteString(s.Scope.String())
	if s.Type != nil {
		b.WriteByte(' ')
		b.WriteString(s.Type.String())
	}
	b.WriteByte(' ')
	b.WriteString(s.Xrefs.String())
	return b.String()
}
