// Package serialize renders an ast.Document back to OBO 1.4 flat-file
// text: the C8 layer. Serialization is deterministic given a document in
// canonical order (see ast.Document.Sort); it does not sort on its own,
// so callers that want canonical output call Sort first.
package serialize

import (
	"bufio"
	"io"

	"github.com/google/renameio/v2"

	"github.com/ha1tch/goobo/ast"
)

// Options configures serialization. The zero value is the canonical
// renderer.
type Options struct {
	// StanzaName overrides the default "[Term]"/"[Typedef]"/"[Instance]"
	// labels; nil uses the defaults.
	StanzaName func(ast.EntityFrame) string
}

// Option mutates an Options value.
type Option func(*Options)

func defaultStanzaName(f ast.EntityFrame) string {
	switch f.(type) {
	case *ast.TermFrame:
		return "Term"
	case *ast.TypedefFrame:
		return "Typedef"
	case *ast.InstanceFrame:
		return "Instance"
	default:
		return "Term"
	}
}

// Document writes doc to w in OBO 1.4 text form: the header clauses,
// a blank line, then each entity frame separated by a blank line.
func Document(w io.Writer, doc *ast.Document, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	stanzaName := o.StanzaName
	if stanzaName == nil {
		stanzaName = defaultStanzaName
	}

	bw := bufio.NewWriter(w)
	for _, c := range doc.Header.Clauses {
		if err := writeClauseLine(bw, c); err != nil {
			return err
		}
	}
	for _, entity := range doc.Entities {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if err := writeEntityFrame(bw, entity, stanzaName(entity)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeEntityFrame(bw *bufio.Writer, entity ast.EntityFrame, name string) error {
	if _, err := bw.WriteString("[" + name + "]\n"); err != nil {
		return err
	}
	if _, err := bw.WriteString("id: " + entity.FrameId().String() + "\n"); err != nil {
		return err
	}
	var clauses []ast.Clause
	switch f := entity.(type) {
	case *ast.TermFrame:
		for _, c := range f.Clauses {
			clauses = append(clauses, c)
		}
	case *ast.TypedefFrame:
		for _, c := range f.Clauses {
			clauses = append(clauses, c)
		}
	case *ast.InstanceFrame:
		for _, c := range f.Clauses {
			clauses = append(clauses, c)
		}
	}
	for _, c := range clauses {
		if err := writeClauseLine(bw, c); err != nil {
			return err
		}
	}
	return nil
}

func writeClauseLine(bw *bufio.Writer, c ast.Clause) error {
	if _, err := bw.WriteString(c.String()); err != nil {
		return err
	}
	if comment, ok := c.Comment(); ok && comment != "" {
		if _, err := bw.WriteString(" ! " + comment); err != nil {
			return err
		}
	}
	return bw.WriteByte('\n')
}

// WriteFile serializes doc to path, replacing its contents atomically
// via a write-to-temp-then-rename, so a reader never observes a
// partially-written file.
func WriteFile(path string, doc *ast.Document, opts ...Option) error {
	t, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer t.Cleanup()

	if err := Document(t, doc, opts...); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}
