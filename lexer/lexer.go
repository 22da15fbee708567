// Package lexer implements a lexical scanner for OBO 1.4 flat-file text.
//
// The scanner works a logical line at a time: it joins backslash line
// continuations before tokenizing, splits a clause line into its TAG and
// REST parts around the first unescaped colon, and peels off a trailing
// "! comment" when present. It does not interpret escapes inside REST or
// COMMENT literals — that is the job of the ident and value packages,
// which parse those raw substrings further.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ha1tch/goobo/token"
)

// Lexer scans OBO source text into a token stream.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int

	lastHadComment bool
}

// New creates a Lexer over the given input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) pos() (line, col, off int) { return l.line, l.column, l.position }

// skipBlankLines advances past empty lines and leading whitespace on a
// line, without consuming the first non-blank character.
func (l *Lexer) skipBlankLines() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '\n' {
			l.readChar()
			continue
		}
		return
	}
}

// nextLineStart returns the STANZA/TAG/EOF token beginning the next
// logical line.
func (l *Lexer) nextLineStart() token.Token {
	l.skipBlankLines()

	line, col, off := l.pos()
	if l.ch == 0 {
		return token.Token{Type: token.EOF, Line: line, Column: col, Offset: off}
	}
	if l.ch == '[' {
		return l.readStanza()
	}
	return l.readTag()
}

func (l *Lexer) readStanza() token.Token {
	line, col, off := l.pos()
	l.readChar() // consume '['
	start := l.position
	for l.ch != ']' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	name := l.input[start:l.position]
	if l.ch == ']' {
		l.readChar()
	}
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '\n' {
		l.readChar()
	}
	return token.Token{Type: token.STANZA, Literal: name, Line: line, Column: col, Offset: off}
}

// readTag reads the bare tag preceding the first unescaped colon on a
// clause line.
func (l *Lexer) readTag() token.Token {
	line, col, off := l.pos()
	var b strings.Builder
	for {
		if l.ch == ':' && l.prevUnescaped() {
			break
		}
		if l.ch == 0 || l.ch == '\n' {
			break
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Type: token.TAG, Literal: strings.TrimSpace(b.String()), Line: line, Column: col, Offset: off}
}

// prevUnescaped reports whether the character immediately before the
// current position is not a backslash, i.e. the current ':' or '!' is
// not escaped. A backslash is itself escaped by a preceding backslash, so
// a run of backslashes toggles the escaped state.
func (l *Lexer) prevUnescaped() bool {
	n := 0
	for i := l.position - 1; i >= 0; i-- {
		if l.input[i] == '\\' {
			n++
		} else {
			break
		}
	}
	return n%2 == 0
}

// readRestAndComment consumes the value portion of a clause line,
// joining backslash-newline continuations, and the trailing "! comment"
// if present.
func (l *Lexer) readRestAndComment() (rest, comment string, line, col, off int) {
	if l.ch == ' ' {
		l.readChar() // the single conventional space after the colon
	}
	line, col, off = l.pos()
	var b strings.Builder
	sawBang := false
	for {
		if l.ch == 0 {
			break
		}
		if l.ch == '\\' && l.peekChar() == '\n' {
			l.readChar() // consume backslash
			l.readChar() // consume newline
			continue
		}
		if l.ch == '\n' {
			l.readChar()
			break
		}
		if l.ch == '!' && l.prevUnescaped() {
			sawBang = true
			l.readChar()
			break
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
	rest = strings.TrimRight(b.String(), " \t")
	l.lastHadComment = sawBang
	if sawBang {
		var cb strings.Builder
		if l.ch == ' ' {
			l.readChar()
		}
		for l.ch != '\n' && l.ch != 0 {
			cb.WriteRune(l.ch)
			l.readChar()
		}
		if l.ch == '\n' {
			l.readChar()
		}
		comment = strings.TrimRight(cb.String(), " \t")
	}
	return rest, comment, line, col, off
}

type lineState int

const (
	stateLineStart lineState = iota
	stateAfterTag
	stateAfterColon
)

// Tokenize scans every token in input, driving the
// TAG -> COLON -> REST -> COMMENT -> NEWLINE sequence of a clause line
// explicitly. This is the entry point parsetree uses to build its parse
// tree.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	state := stateLineStart
	for {
		switch state {
		case stateLineStart:
			tok := l.nextLineStart()
			toks = append(toks, tok)
			switch tok.Type {
			case token.EOF:
				return toks
			case token.STANZA:
				toks = append(toks, token.Token{Type: token.NEWLINE, Line: tok.Line, Column: tok.Column, Offset: tok.Offset})
			case token.TAG:
				state = stateAfterTag
			}
		case stateAfterTag:
			line, col, off := l.pos()
			if l.ch != ':' {
				toks = append(toks, token.Token{Type: token.ILLEGAL, Literal: string(l.ch), Line: line, Column: col, Offset: off})
				state = stateLineStart
				continue
			}
			l.readChar()
			toks = append(toks, token.Token{Type: token.COLON, Line: line, Column: col, Offset: off})
			state = stateAfterColon
		case stateAfterColon:
			rest, comment, restLine, restCol, restOff := l.readRestAndComment()
			toks = append(toks, token.Token{Type: token.REST, Literal: rest, Line: restLine, Column: restCol, Offset: restOff})
			if l.lastHadComment {
				toks = append(toks, token.Token{Type: token.COMMENT, Literal: comment, Line: restLine, Column: restCol, Offset: restOff})
			}
			toks = append(toks, token.Token{Type: token.NEWLINE, Line: restLine, Column: restCol, Offset: restOff})
			state = stateLineStart
		}
	}
}
