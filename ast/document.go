package ast

import "sort"

// Document is a complete OBO document: one header frame followed by any
// number of entity frames.
type Document struct {
	Header   HeaderFrame
	Entities []EntityFrame
}

// Sort canonicalizes the document in place: clauses within the header
// and within every entity frame are sorted, and entity frames are
// sorted by identifier.
func (d *Document) Sort() {
	d.Header.Sort()
	for _, e := range d.Entities {
		switch f := e.(type) {
		case *TermFrame:
			f.Sort()
		case *TypedefFrame:
			f.Sort()
		case *InstanceFrame:
			f.Sort()
		}
	}
	sort.SliceStable(d.Entities, func(i, j int) bool {
		return EntityFrameLess(d.Entities[i], d.Entities[j])
	})
}
