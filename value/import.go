package value

import "github.com/ha1tch/goobo/ident"

// Import is a header "import" clause payload: either an abbreviated
// identifier (another ontology's ID prefix) or a full URL. Which variant
// a piece of text becomes is determined at parse time by the same
// URL-first rule as ident.Parse: if the text parses as an absolute URL
// it is ImportUrl, otherwise ImportAbbreviated.
type Import interface {
	importNode()
	String() string
}

// ImportAbbreviated imports another ontology by its identifier/prefix.
type ImportAbbreviated struct {
	Id ident.Ident
}

func (ImportAbbreviated) importNode() {}
func (i ImportAbbreviated) String() string { return i.Id.String() }

// ImportUrl imports an ontology located at a URL.
type ImportUrl struct {
	Url ident.Url
}

func (ImportUrl) importNode() {}
func (i ImportUrl) String() string { return i.Url.String() }

// ParseImport classifies raw import text, preferring a URL parse.
func ParseImport(text string) (Import, error) {
	id, err := ident.Parse(text)
	if err != nil {
		return nil, err
	}
	if u, ok := id.(ident.Url); ok {
		return ImportUrl{Url: u}, nil
	}
	return ImportAbbreviated{Id: id}, nil
}
