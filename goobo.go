// Package goobo parses, validates, and serializes OBO 1.4 flat-file
// ontologies.
//
// Example usage:
//
//	doc, err := goobo.ParseText(source)
//	if err != nil {
//	    // handle error
//	}
//	// work with doc.Entities
package goobo

import (
	"io"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/oboerr"
	"github.com/ha1tch/goobo/parser"
	"github.com/ha1tch/goobo/serialize"
	"github.com/ha1tch/goobo/stream"
	"github.com/ha1tch/goobo/validate"
)

// ParseText parses a complete OBO document from in-memory text.
func ParseText(input string) (*ast.Document, error) {
	return parser.ParseDocument(input)
}

// ParseStream wraps r as a streaming frame reader, for documents too
// large to hold fully parsed in memory.
func ParseStream(r io.Reader, opts ...stream.Option) *stream.Reader {
	return stream.NewReader(r, opts...)
}

// WriteText serializes doc to w.
func WriteText(w io.Writer, doc *ast.Document, opts ...serialize.Option) error {
	return serialize.Document(w, doc, opts...)
}

// WriteFile serializes doc to path atomically.
func WriteFile(path string, doc *ast.Document, opts ...serialize.Option) error {
	return serialize.WriteFile(path, doc, opts...)
}

// Validate checks doc against the cardinality rules of its clauses.
func Validate(doc *ast.Document) []*oboerr.ValidationError {
	return validate.Validate(doc)
}

// Re-export types for convenience.
type (
	Document      = ast.Document
	HeaderFrame   = ast.HeaderFrame
	TermFrame     = ast.TermFrame
	TypedefFrame  = ast.TypedefFrame
	InstanceFrame = ast.InstanceFrame
	EntityFrame   = ast.EntityFrame
	Clause        = ast.Clause
	Cardinality   = ast.Cardinality
)

// Header clause types.
type (
	FormatVersion                        = ast.FormatVersion
	DataVersion                          = ast.DataVersion
	Date                                 = ast.Date
	SavedBy                              = ast.SavedBy
	AutoGeneratedBy                      = ast.AutoGeneratedBy
	Import                               = ast.Import
	Subsetdef                            = ast.Subsetdef
	SynonymTypedef                       = ast.SynonymTypedef
	DefaultNamespace                     = ast.DefaultNamespace
	NamespaceIdRule                      = ast.NamespaceIdRule
	Idspace                              = ast.Idspace
	TreatXrefsAsEquivalent               = ast.TreatXrefsAsEquivalent
	TreatXrefsAsGenusDifferentia         = ast.TreatXrefsAsGenusDifferentia
	TreatXrefsAsReverseGenusDifferentia  = ast.TreatXrefsAsReverseGenusDifferentia
	TreatXrefsAsRelationship             = ast.TreatXrefsAsRelationship
	TreatXrefsAsIsA                      = ast.TreatXrefsAsIsA
	TreatXrefsAsHasSubclass              = ast.TreatXrefsAsHasSubclass
	HeaderPropertyValue                  = ast.HeaderPropertyValue
	Remark                               = ast.Remark
	Ontology                             = ast.Ontology
	OwlAxioms                            = ast.OwlAxioms
	Unreserved                           = ast.Unreserved
)

// Term clause types.
type (
	TermIsAnonymous    = ast.TermIsAnonymous
	TermName           = ast.TermName
	TermNamespace      = ast.TermNamespace
	TermAltId          = ast.TermAltId
	TermDef            = ast.TermDef
	TermComment        = ast.TermComment
	TermSubset         = ast.TermSubset
	TermSynonym        = ast.TermSynonym
	TermXref           = ast.TermXref
	TermBuiltin        = ast.TermBuiltin
	TermPropertyValue  = ast.TermPropertyValue
	TermIsA            = ast.TermIsA
	TermIntersectionOf = ast.TermIntersectionOf
	TermUnionOf        = ast.TermUnionOf
	TermEquivalentTo   = ast.TermEquivalentTo
	TermDisjointFrom   = ast.TermDisjointFrom
	TermRelationship   = ast.TermRelationship
	TermIsObsolete     = ast.TermIsObsolete
	TermReplacedBy     = ast.TermReplacedBy
	TermConsider       = ast.TermConsider
)

// Typedef clause types.
type (
	TypedefName         = ast.TypedefName
	TypedefNamespace    = ast.TypedefNamespace
	TypedefDef          = ast.TypedefDef
	TypedefIsA          = ast.TypedefIsA
	TypedefDomain       = ast.TypedefDomain
	TypedefRange        = ast.TypedefRange
	TypedefRelationship = ast.TypedefRelationship
	TypedefInverseOf    = ast.TypedefInverseOf
)

// Instance clause types.
type (
	InstanceName         = ast.InstanceName
	InstanceOf           = ast.InstanceOf
	InstanceRelationship = ast.InstanceRelationship
	InstancePropertyValue = ast.InstancePropertyValue
)

// Visitor visits nodes of a parsed document during Walk.
type Visitor interface {
	Visit(node any) Visitor
}

// Walk traverses a document (or any of its frames/clauses) in
// depth-first order, calling v.Visit on every node reached.
func Walk(v Visitor, node any) {
	if v = v.Visit(node); v == nil {
		return
	}
	switch n := node.(type) {
	case *ast.Document:
		Walk(v, &n.Header)
		for _, e := range n.Entities {
			Walk(v, e)
		}
	case *ast.HeaderFrame:
		for _, c := range n.Clauses {
			Walk(v, c)
		}
	case *ast.TermFrame:
		for _, c := range n.Clauses {
			Walk(v, c)
		}
	case *ast.TypedefFrame:
		for _, c := range n.Clauses {
			Walk(v, c)
		}
	case *ast.InstanceFrame:
		for _, c := range n.Clauses {
			Walk(v, c)
		}
	}
}

// Inspector collects every node of a parsed document for repeated
// lookups, the way a one-shot Walk cannot without re-traversing.
type Inspector struct {
	nodes []any
}

// NewInspector walks doc once, caching every node it visits.
func NewInspector(doc *ast.Document) *Inspector {
	insp := &Inspector{}
	Walk(inspectorFunc(insp.collect), doc)
	return insp
}

type inspectorFunc func(node any) Visitor

func (f inspectorFunc) Visit(node any) Visitor {
	return f(node)
}

func (insp *Inspector) collect(node any) Visitor {
	insp.nodes = append(insp.nodes, node)
	return inspectorFunc(insp.collect)
}

// FindXrefs returns every xref clause reached from any Term, Typedef,
// or Instance frame in the document.
func (insp *Inspector) FindXrefs() []ast.Clause {
	var out []ast.Clause
	for _, node := range insp.nodes {
		switch node.(type) {
		case ast.TermXref, ast.TypedefXref, ast.InstanceXref:
			out = append(out, node.(ast.Clause))
		}
	}
	return out
}

// FindSynonyms returns every synonym clause reached from any Term,
// Typedef, or Instance frame in the document.
func (insp *Inspector) FindSynonyms() []ast.Clause {
	var out []ast.Clause
	for _, node := range insp.nodes {
		switch node.(type) {
		case ast.TermSynonym, ast.TypedefSynonym, ast.InstanceSynonym:
			out = append(out, node.(ast.Clause))
		}
	}
	return out
}

// FindPropertyValues returns every property_value clause reached from
// any frame in the document, including the header.
func (insp *Inspector) FindPropertyValues() []ast.Clause {
	var out []ast.Clause
	for _, node := range insp.nodes {
		switch node.(type) {
		case ast.HeaderPropertyValue, ast.TermPropertyValue, ast.TypedefPropertyValue, ast.InstancePropertyValue:
			out = append(out, node.(ast.Clause))
		}
	}
	return out
}
