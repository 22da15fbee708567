package ident

// ClassId, RelationId, InstanceId, SubsetId, NamespaceId, and
// SynonymTypeId are kind-refined identifier wrappers. Each carries only
// a type-level marker over a plain Ident; there is no structural
// invariant beyond the inner identifier's. They widen freely (Unwrap)
// and narrow only by explicit construction (NewClassId, etc.), so that
// mixing up, say, a RelationId and a ClassId is a compile error rather
// than a runtime surprise.

// ClassId refines Ident to the role of a term (class) identifier.
type ClassId struct{ inner Ident }

// NewClassId narrows a plain Ident into a ClassId.
func NewClassId(id Ident) ClassId { return ClassId{inner: id} }

// Unwrap widens a ClassId back to a plain Ident.
func (c ClassId) Unwrap() Ident { return c.inner }

func (c ClassId) String() string { return c.inner.String() }

// RelationId refines Ident to the role of a relation (typedef)
// identifier.
type RelationId struct{ inner Ident }

func NewRelationId(id Ident) RelationId { return RelationId{inner: id} }
func (r RelationId) Unwrap() Ident      { return r.inner }
func (r RelationId) String() string    { return r.inner.String() }

// InstanceId refines Ident to the role of an instance identifier.
type InstanceId struct{ inner Ident }

func NewInstanceId(id Ident) InstanceId { return InstanceId{inner: id} }
func (i InstanceId) Unwrap() Ident      { return i.inner }
func (i InstanceId) String() string    { return i.inner.String() }

// SubsetId refines Ident to the role of a subset identifier.
type SubsetId struct{ inner Ident }

func NewSubsetId(id Ident) SubsetId { return SubsetId{inner: id} }
func (s SubsetId) Unwrap() Ident    { return s.inner }
func (s SubsetId) String() string  { return s.inner.String() }

// NamespaceId refines Ident to the role of a namespace identifier.
type NamespaceId struct{ inner Ident }

func NewNamespaceId(id Ident) NamespaceId { return NamespaceId{inner: id} }
func (n NamespaceId) Unwrap() Ident       { return n.inner }
func (n NamespaceId) String() string     { return n.inner.String() }

// SynonymTypeId refines Ident to the role of a synonym type identifier.
type SynonymTypeId struct{ inner Ident }

func NewSynonymTypeId(id Ident) SynonymTypeId { return SynonymTypeId{inner: id} }
func (s SynonymTypeId) Unwrap() Ident         { return s.inner }
func (s SynonymTypeId) String() string       { return s.inner.String() }
