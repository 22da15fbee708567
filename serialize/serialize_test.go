package serialize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ha1tch/goobo/ast"
	"github.com/ha1tch/goobo/ident"
	"github.com/ha1tch/goobo/value"
)

func mustClassId(t *testing.T, text string) ident.ClassId {
	t.Helper()
	id, err := ident.Parse(text)
	require.NoError(t, err)
	return ident.NewClassId(id)
}

func TestDocumentRoundTripShape(t *testing.T) {
	doc := &ast.Document{
		Header: ast.HeaderFrame{
			Clauses: []ast.HeaderClause{
				ast.FormatVersion{Value: value.UnquotedString{Value: "1.4"}},
			},
		},
		Entities: []ast.EntityFrame{
			&ast.TermFrame{
				Id: mustClassId(t, "GO:0000001"),
				Clauses: []ast.TermClause{
					ast.TermName{Value: value.UnquotedString{Value: "widget"}},
					ast.TermIsA{
						Trivia: ast.Trivia{}.WithComment("see also"),
						Value:  mustClassId(t, "GO:0000099"),
					},
				},
			},
		},
	}

	var buf strings.Builder
	require.NoError(t, Document(&buf, doc))

	want := "format-version: 1.4\n" +
		"\n" +
		"[Term]\n" +
		"id: GO:0000001\n" +
		"name: widget\n" +
		"is_a: GO:0000099 ! see also\n"
	require.Equal(t, want, buf.String())
}
