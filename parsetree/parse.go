package parsetree

import (
	"fmt"

	"github.com/ha1tch/goobo/lexer"
	"github.com/ha1tch/goobo/oboerr"
	"github.com/ha1tch/goobo/token"
)

// Parser consumes a token stream and builds a parse tree.
type Parser struct {
	toks []token.Token
	pos  int
}

// New creates a Parser over the tokens of input.
func New(input string) *Parser {
	return &Parser{toks: lexer.Tokenize(input)}
}

func (p *Parser) cur() token.Token  { return p.toks[p.pos] }
func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) errAt(tok token.Token, expected string) error {
	return &oboerr.SyntaxError{
		Pos:      oboerr.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset},
		Expected: expected,
		Found:    fmt.Sprintf("%s %q", tok.Type, tok.Literal),
	}
}

// ParseOboDoc parses a full document: an optional header frame followed
// by zero or more entity stanzas.
func ParseOboDoc(input string) (*Node, error) {
	p := New(input)
	root := &Node{Rule: RuleOboDoc}

	header := &Node{Rule: RuleHeaderFrame}
	for p.cur().Type == token.TAG {
		clause, err := p.parseClauseLine(RuleHeaderClause)
		if err != nil {
			return nil, err
		}
		header.Children = append(header.Children, clause)
	}
	root.Children = append(root.Children, header)

	for p.cur().Type == token.STANZA {
		frame, err := p.parseEntityFrame()
		if err != nil {
			return nil, err
		}
		entity := &Node{Rule: RuleEntitySingle, Children: []*Node{frame}}
		root.Children = append(root.Children, entity)
	}

	if p.cur().Type != token.EOF {
		return nil, p.errAt(p.cur(), "end of document")
	}
	return root, nil
}

// ParseHeaderFrame parses text consisting only of header clause lines,
// with no leading stanza.
func ParseHeaderFrame(input string) (*Node, error) {
	p := New(input)
	header := &Node{Rule: RuleHeaderFrame}
	for p.cur().Type == token.TAG {
		clause, err := p.parseClauseLine(RuleHeaderClause)
		if err != nil {
			return nil, err
		}
		header.Children = append(header.Children, clause)
	}
	if p.cur().Type != token.EOF {
		return nil, p.errAt(p.cur(), "header clause or end of input")
	}
	return header, nil
}

// ParseEntitySingle parses text for exactly one stanza: its opening
// "[Term]"/"[Typedef]"/"[Instance]" line followed by its clause lines.
func ParseEntitySingle(input string) (*Node, error) {
	p := New(input)
	if p.cur().Type != token.STANZA {
		return nil, p.errAt(p.cur(), "stanza header")
	}
	frame, err := p.parseEntityFrame()
	if err != nil {
		return nil, err
	}
	if p.cur().Type != token.EOF {
		return nil, p.errAt(p.cur(), "end of stanza")
	}
	return &Node{Rule: RuleEntitySingle, Children: []*Node{frame}}, nil
}

func (p *Parser) parseEntityFrame() (*Node, error) {
	stanzaTok := p.advance() // STANZA
	var rule Rule
	var clauseRule Rule
	switch stanzaTok.Literal {
	case "Term":
		rule, clauseRule = RuleTermFrame, RuleTermClause
	case "Typedef":
		rule, clauseRule = RuleTypedefFrame, RuleTypedefClause
	case "Instance":
		rule, clauseRule = RuleInstanceFrame, RuleInstanceClause
	default:
		return nil, &oboerr.SyntaxError{
			Pos:      oboerr.Position{Line: stanzaTok.Line, Column: stanzaTok.Column, Offset: stanzaTok.Offset},
			Expected: "Term, Typedef, or Instance",
			Found:    stanzaTok.Literal,
		}
	}
	// The NEWLINE emitted right after a STANZA token.
	if p.cur().Type == token.NEWLINE {
		p.advance()
	}

	frame := &Node{Rule: rule, Line: stanzaTok.Line, Span: Span{Start: stanzaTok.Offset}}
	for p.cur().Type == token.TAG {
		clause, err := p.parseClauseLine(clauseRule)
		if err != nil {
			return nil, err
		}
		frame.Children = append(frame.Children, clause)
	}
	return frame, nil
}

// parseClauseLine consumes TAG COLON REST [COMMENT] NEWLINE and produces
// a Node of the given rule kind.
func (p *Parser) parseClauseLine(rule Rule) (*Node, error) {
	tagTok := p.advance()
	if tagTok.Type != token.TAG {
		return nil, p.errAt(tagTok, "clause tag")
	}
	colonTok := p.advance()
	if colonTok.Type != token.COLON {
		return nil, p.errAt(colonTok, "':'")
	}
	restTok := p.advance()
	if restTok.Type != token.REST {
		return nil, p.errAt(restTok, "clause value")
	}
	node := &Node{
		Rule:   rule,
		Line:   tagTok.Line,
		Column: tagTok.Column,
		Tag:    tagTok.Literal,
		Rest:   restTok.Literal,
		Span:   Span{Start: tagTok.Offset, End: restTok.Offset + len(restTok.Literal)},
	}
	if p.cur().Type == token.COMMENT {
		commentTok := p.advance()
		node.Comment = commentTok.Literal
		node.HasComment = true
	}
	if p.cur().Type != token.NEWLINE {
		return nil, p.errAt(p.cur(), "end of clause line")
	}
	p.advance()
	return node, nil
}
