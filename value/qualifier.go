package value

import (
	"sort"
	"strings"

	"github.com/ha1tch/goobo/ident"
)

// Qualifier is a single "key=value" entry of a trailing qualifier list.
type Qualifier struct {
	Key   ident.RelationId
	Value QuotedString
}

func (q Qualifier) String() string {
	return q.Key.String() + "=" + q.Value.String()
}

// Less orders qualifiers lexicographically by (key, value), per spec
// §3.2.
func (q Qualifier) Less(other Qualifier) bool {
	if q.Key.String() != other.Key.String() {
		return q.Key.String() < other.Key.String()
	}
	return q.Value.Value < other.Value.Value
}

// QualifierList is a non-empty, braced, comma-separated list of
// Qualifier; the grammar disallows an empty qualifier list.
type QualifierList struct {
	Qualifiers []Qualifier
}

func (l QualifierList) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, q := range l.Qualifiers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(q.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Sort orders the list by Qualifier.Less, stably.
func (l *QualifierList) Sort() {
	sort.SliceStable(l.Qualifiers, func(i, j int) bool {
		return l.Qualifiers[i].Less(l.Qualifiers[j])
	})
}
