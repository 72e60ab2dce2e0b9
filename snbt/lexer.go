// Package snbt implements the stringified NBT text format: a lexer
// and recursive-descent parser producing nbt tag trees, and a writer
// rendering trees back to canonical SNBT.
package snbt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokenType int

const (
	tokUnknown tokenType = iota
	tokLbrace
	tokRbrace
	tokLbracket
	tokRbracket
	tokColon
	tokByteArray // "[B;"
	tokIntArray  // "[I;"
	tokLongArray // "[L;"
	tokString    // quoted string, value unescaped
	tokLiteral   // bare word
	tokEOF
)

func (t tokenType) String() string {
	switch t {
	case tokLbrace:
		return "'{'"
	case tokRbrace:
		return "'}'"
	case tokLbracket:
		return "'['"
	case tokRbracket:
		return "']'"
	case tokColon:
		return "':'"
	case tokByteArray:
		return "'[B;'"
	case tokIntArray:
		return "'[I;'"
	case tokLongArray:
		return "'[L;'"
	case tokString:
		return "quoted string"
	case tokLiteral:
		return "literal"
	case tokEOF:
		return "end of input"
	default:
		return "unknown token"
	}
}

type token struct {
	typ      tokenType
	value    string
	position int
}

// SyntaxError describes an SNBT grammar violation: what was expected,
// what was found, and where.
type SyntaxError struct {
	Msg    string
	Input  string
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return "snbt: " + e.Msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// HighlightLocation renders the input with a caret under the offset
// where the error occurred.
func (e *SyntaxError) HighlightLocation() string {
	off := e.Offset
	if off < 0 {
		off = 0
	}
	if off > len(e.Input) {
		off = len(e.Input)
	}
	return e.Input + "\n" + strings.Repeat(" ", off) + "^"
}

const eof = -1

// lexer produces tokens from an SNBT buffer on demand. The token
// stream is single-pass: commas and whitespace separate tokens but
// are never yielded.
type lexer struct {
	input      string
	currentPos int
	lastWidth  int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (lx *lexer) next() rune {
	if lx.currentPos >= len(lx.input) {
		lx.lastWidth = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.input[lx.currentPos:])
	lx.lastWidth = w
	lx.currentPos += w
	return r
}

func (lx *lexer) back() {
	lx.currentPos -= lx.lastWidth
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDelimiter(r rune) bool {
	return isSpace(r) || r == ',' || r == ':' ||
		r == '{' || r == '}' || r == '[' || r == ']' || r == eof
}

// nextToken scans the next token.
func (lx *lexer) nextToken() (token, error) {
	for {
		r := lx.next()
		switch {
		case r == eof:
			return token{typ: tokEOF, position: len(lx.input)}, nil
		case isSpace(r) || r == ',':
			// commas separate like whitespace and are elided
		case r == '{':
			return lx.single(tokLbrace, "{"), nil
		case r == '}':
			return lx.single(tokRbrace, "}"), nil
		case r == ']':
			return lx.single(tokRbracket, "]"), nil
		case r == ':':
			return lx.single(tokColon, ":"), nil
		case r == '[':
			return lx.consumeLBracket(), nil
		case r == '"' || r == '\'':
			return lx.consumeQuoted(r)
		default:
			lx.back()
			return lx.consumeLiteral(), nil
		}
	}
}

func (lx *lexer) single(typ tokenType, value string) token {
	return token{typ: typ, value: value, position: lx.currentPos - lx.lastWidth}
}

// consumeLBracket distinguishes a plain list opener from the typed
// array openers "[B;", "[I;", and "[L;".
func (lx *lexer) consumeLBracket() token {
	start := lx.currentPos - lx.lastWidth
	if lx.currentPos+2 <= len(lx.input) && lx.input[lx.currentPos+1] == ';' {
		var typ tokenType
		switch lx.input[lx.currentPos] {
		case 'B':
			typ = tokByteArray
		case 'I':
			typ = tokIntArray
		case 'L':
			typ = tokLongArray
		}
		if typ != tokUnknown {
			value := lx.input[start : lx.currentPos+2]
			lx.currentPos += 2
			lx.lastWidth = 1
			return token{typ: typ, value: value, position: start}
		}
	}
	return token{typ: tokLbracket, value: "[", position: start}
}

// consumeQuoted scans a quoted string, resolving backslash escapes by
// passing the escaped character through. An unterminated quote is a
// syntax error.
func (lx *lexer) consumeQuoted(quote rune) (token, error) {
	start := lx.currentPos - lx.lastWidth
	var sb strings.Builder
	for {
		r := lx.next()
		switch r {
		case eof:
			return token{}, &SyntaxError{
				Msg:    fmt.Sprintf("unterminated string literal starting at offset %d", start),
				Input:  lx.input,
				Offset: len(lx.input),
			}
		case '\\':
			escaped := lx.next()
			if escaped == eof {
				return token{}, &SyntaxError{
					Msg:    fmt.Sprintf("unterminated string literal starting at offset %d", start),
					Input:  lx.input,
					Offset: len(lx.input),
				}
			}
			sb.WriteRune(escaped)
		case quote:
			return token{typ: tokString, value: sb.String(), position: start}, nil
		default:
			sb.WriteRune(r)
		}
	}
}

// consumeLiteral scans a bare word up to the next delimiter.
func (lx *lexer) consumeLiteral() token {
	start := lx.currentPos
	for {
		r := lx.next()
		if isDelimiter(r) {
			if r != eof {
				lx.back()
			}
			break
		}
	}
	return token{typ: tokLiteral, value: lx.input[start:lx.currentPos], position: start}
}
