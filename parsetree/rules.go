// Package parsetree groups the OBO token stream produced by package lexer
// into a typed tree of grammar rules; clause-line nodes carry their source
// span and entity frame nodes their start offset. It is
// the C1 layer: it knows the shape of a document (header, then stanzas,
// each a sequence of tag/value lines) and which tag strings name which
// rule, but it does not itself parse identifiers, quoted strings, dates,
// or qualifier lists — package parser (the tree-to-AST builder) does that
// by re-parsing a Node's Rest/Comment text with the ident and value
// packages.
package parsetree

// Rule identifies the grammar production a Node instantiates.
type Rule int

const (
	RuleOboDoc Rule = iota
	RuleHeaderFrame
	RuleHeaderClause
	RuleEntitySingle
	RuleTermFrame
	RuleTypedefFrame
	RuleInstanceFrame
	RuleTermClause
	RuleTypedefClause
	RuleInstanceClause

	// Header typed-tag rules.
	RuleFormatVersionTag
	RuleDataVersionTag
	RuleDateTag
	RuleSavedByTag
	RuleAutoGeneratedByTag
	RuleImportTag
	RuleSubsetdefTag
	RuleSynonymTypedefTag
	RuleDefaultNamespaceTag
	RuleNamespaceIdRuleTag
	RuleIdspaceTag
	RuleTreatXrefsAsEquivalentTag
	RuleTreatXrefsAsGenusDifferentiaTag
	RuleTreatXrefsAsReverseGenusDifferentiaTag
	RuleTreatXrefsAsRelationshipTag
	RuleTreatXrefsAsIsATag
	RuleTreatXrefsAsHasSubclassTag
	RulePropertyValueTag
	RuleRemarkTag
	RuleOntologyTag
	RuleOwlAxiomsTag
	RuleUnreservedTag

	// Entity typed-tag rules (shared across Term/Typedef/Instance where
	// the tag text is shared; the builder decides which are legal for
	// which frame kind).
	RuleIsAnonymousTag
	RuleNameTag
	RuleNamespaceTag
	RuleAltIdTag
	RuleDefTag
	RuleCommentTag
	RuleSubsetTag
	RuleSynonymTag
	RuleXrefTag
	RuleDomainTag
	RuleRangeTag
	RuleBuiltinTag
	RuleHoldsOverChainTag
	RuleIsAntiSymmetricTag
	RuleIsCyclicTag
	RuleIsReflexiveTag
	RuleIsSymmetricTag
	RuleIsAsymmetricTag
	RuleIsTransitiveTag
	RuleIsFunctionalTag
	RuleIsInverseFunctionalTag
	RuleIsATag
	RuleIntersectionOfTag
	RuleUnionOfTag
	RuleEquivalentToTag
	RuleDisjointFromTag
	RuleInverseOfTag
	RuleTransitiveOverTag
	RuleEquivalentToChainTag
	RuleDisjointOverTag
	RuleRelationshipTag
	RuleIsObsoleteTag
	RuleReplacedByTag
	RuleConsiderTag
	RuleCreatedByTag
	RuleCreationDateTag
	RuleExpandAssertionToTag
	RuleExpandExpressionToTag
	RuleIsMetadataTagTag
	RuleIsClassLevelTag
	RuleInstanceOfTag
)

var ruleNames = map[Rule]string{
	RuleOboDoc:         "OboDoc",
	RuleHeaderFrame:    "HeaderFrame",
	RuleHeaderClause:   "HeaderClause",
	RuleEntitySingle:   "EntitySingle",
	RuleTermFrame:      "TermFrame",
	RuleTypedefFrame:   "TypedefFrame",
	RuleInstanceFrame:  "InstanceFrame",
	RuleTermClause:     "TermClause",
	RuleTypedefClause:  "TypedefClause",
	RuleInstanceClause: "InstanceClause",
}

func (r Rule) String() string {
	if n, ok := ruleNames[r]; ok {
		return n
	}
	return "Rule"
}

// headerTagRules maps a header clause's textual tag to its typed-tag
// rule. A tag absent from this table is RuleUnreservedTag.
var headerTagRules = map[string]Rule{
	"format-version":                            RuleFormatVersionTag,
	"data-version":                              RuleDataVersionTag,
	"date":                                      RuleDateTag,
	"saved-by":                                  RuleSavedByTag,
	"auto-generated-by":                         RuleAutoGeneratedByTag,
	"import":                                    RuleImportTag,
	"subsetdef":                                 RuleSubsetdefTag,
	"synonymtypedef":                            RuleSynonymTypedefTag,
	"default-namespace":                         RuleDefaultNamespaceTag,
	"namespace-id-rule":                         RuleNamespaceIdRuleTag,
	"idspace":                                   RuleIdspaceTag,
	"treat-xrefs-as-equivalent":                 RuleTreatXrefsAsEquivalentTag,
	"treat-xrefs-as-genus-differentia":          RuleTreatXrefsAsGenusDifferentiaTag,
	"treat-xrefs-as-reverse-genus-differentia":  RuleTreatXrefsAsReverseGenusDifferentiaTag,
	"treat-xrefs-as-relationship":               RuleTreatXrefsAsRelationshipTag,
	"treat-xrefs-as-is_a":                       RuleTreatXrefsAsIsATag,
	"treat-xrefs-as-has-subclass":               RuleTreatXrefsAsHasSubclassTag,
	"property_value":                            RulePropertyValueTag,
	"remark":                                    RuleRemarkTag,
	"ontology":                                  RuleOntologyTag,
	"owl-axioms":                                RuleOwlAxiomsTag,
}

// HeaderTagRule returns the typed-tag rule for a header clause's tag
// text, or RuleUnreservedTag if the tag is not one of the reserved
// header tags.
func HeaderTagRule(tag string) Rule {
	if r, ok := headerTagRules[tag]; ok {
		return r
	}
	return RuleUnreservedTag
}

// entityTagRules maps an entity clause's textual tag to its typed-tag
// rule, shared by Term, Typedef, and Instance frames; legality per frame
// kind is enforced by the builder, not here.
var entityTagRules = map[string]Rule{
	"is_anonymous":       RuleIsAnonymousTag,
	"name":                RuleNameTag,
	"namespace":           RuleNamespaceTag,
	"alt_id":              RuleAltIdTag,
	"def":                 RuleDefTag,
	"comment":             RuleCommentTag,
	"subset":              RuleSubsetTag,
	"synonym":             RuleSynonymTag,
	"xref":                RuleXrefTag,
	"property_value":      RulePropertyValueTag,
	"domain":              RuleDomainTag,
	"range":               RuleRangeTag,
	"builtin":             RuleBuiltinTag,
	"holds_over_chain":    RuleHoldsOverChainTag,
	"is_anti_symmetric":   RuleIsAntiSymmetricTag,
	"is_cyclic":           RuleIsCyclicTag,
	"is_reflexive":        RuleIsReflexiveTag,
	"is_symmetric":        RuleIsSymmetricTag,
	"is_asymmetric":       RuleIsAsymmetricTag,
	"is_transitive":       RuleIsTransitiveTag,
	"is_functional":       RuleIsFunctionalTag,
	"is_inverse_functional": RuleIsInverseFunctionalTag,
	"is_a":                RuleIsATag,
	"intersection_of":     RuleIntersectionOfTag,
	"union_of":            RuleUnionOfTag,
	"equivalent_to":       RuleEquivalentToTag,
	"disjoint_from":       RuleDisjointFromTag,
	"inverse_of":          RuleInverseOfTag,
	"transitive_over":     RuleTransitiveOverTag,
	"equivalent_to_chain": RuleEquivalentToChainTag,
	"disjoint_over":       RuleDisjointOverTag,
	"relationship":        RuleRelationshipTag,
	"is_obsolete":         RuleIsObsoleteTag,
	"replaced_by":         RuleReplacedByTag,
	"consider":            RuleConsiderTag,
	"created_by":          RuleCreatedByTag,
	"creation_date":       RuleCreationDateTag,
	"expand_assertion_to": RuleExpandAssertionToTag,
	"expand_expression_to": RuleExpandExpressionToTag,
	"is_metadata_tag":     RuleIsMetadataTagTag,
	"is_class_level":      RuleIsClassLevelTag,
	"instance_of":         RuleInstanceOfTag,
}

// EntityTagRule returns the typed-tag rule for an entity clause's tag
// text and true, or false if the tag is not a known entity tag.
func EntityTagRule(tag string) (Rule, bool) {
	r, ok := entityTagRules[tag]
	return r, ok
}
