package ast

import (
	"sort"

	"github.com/ha1tch/goobo/ident"
)

// HeaderFrame is the unstamped frame that opens every document, carrying
// format and ontology metadata clauses.
type HeaderFrame struct {
	Clauses []HeaderClause
}

// Sort orders Clauses in place per the canonical header ordering.
func (f *HeaderFrame) Sort() {
	sort.SliceStable(f.Clauses, func(i, j int) bool {
		return HeaderClauseLess(f.Clauses[i], f.Clauses[j])
	})
}

// TermFrame describes a "[Term]" stanza.
type TermFrame struct {
	Id      ident.ClassId
	Clauses []TermClause
}

func (f *TermFrame) Sort() {
	sort.SliceStable(f.Clauses, func(i, j int) bool {
		return TermClauseLess(f.Clauses[i], f.Clauses[j])
	})
}

func (*TermFrame) entityFrameNode() {}

// FrameId returns the frame's identifier as a plain Ident.
func (f *TermFrame) FrameId() ident.Ident { return f.Id.Unwrap() }

// TypedefFrame describes a "[Typedef]" stanza.
type TypedefFrame struct {
	Id      ident.RelationId
	Clauses []TypedefClause
}

func (f *TypedefFrame) Sort() {
	sort.SliceStable(f.Clauses, func(i, j int) bool {
		return TypedefClauseLess(f.Clauses[i], f.Clauses[j])
	})
}

func (*TypedefFrame) entityFrameNode() {}

func (f *TypedefFrame) FrameId() ident.Ident { return f.Id.Unwrap() }

// InstanceFrame describes an "[Instance]" stanza.
type InstanceFrame struct {
	Id      ident.InstanceId
	Clauses []InstanceClause
}

func (f *InstanceFrame) Sort() {
	sort.SliceStable(f.Clauses, func(i, j int) bool {
		return InstanceClauseLess(f.Clauses[i], f.Clauses[j])
	})
}

func (*InstanceFrame) entityFrameNode() {}

func (f *InstanceFrame) FrameId() ident.Ident { return f.Id.Unwrap() }

// EntityFrame is implemented by the three stanza kinds that can follow
// the header: TermFrame, TypedefFrame, InstanceFrame.
type EntityFrame interface {
	entityFrameNode()
	FrameId() ident.Ident
}

// EntityFrameLess orders entity frames by their identifier's canonical
// text, the ordering spec §4.5 calls for among frames of a document.
func EntityFrameLess(a, b EntityFrame) bool {
	return a.FrameId().String() < b.FrameId().String()
}
