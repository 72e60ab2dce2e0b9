package snbt

import (
	"fmt"
	"strconv"
	"strings"

	nbt "github.com/blockforge/nbt-go"
)

// Parse reads an SNBT document and returns its tag tree. The document
// root must be a compound; the returned root tag is unnamed.
func Parse(input string) (*nbt.Tag, error) {
	p := &parser{lx: newLexer(input)}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.typ != tokLbrace {
		return nil, p.errorf(tok, "document root must be a compound, found %s", tok.typ)
	}
	root, err := p.parseCompound()
	if err != nil {
		return nil, err
	}
	tok, err = p.next()
	if err != nil {
		return nil, err
	}
	if tok.typ != tokEOF {
		return nil, p.errorf(tok, "unexpected %s after document root", tok.typ)
	}
	return root, nil
}

type parser struct {
	lx *lexer
}

func (p *parser) next() (token, error) {
	return p.lx.nextToken()
}

func (p *parser) errorf(tok token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Msg:    fmt.Sprintf(format, args...),
		Input:  p.lx.input,
		Offset: tok.position,
	}
}

// parseCompound parses members until the closing brace. The opening
// brace has already been consumed.
func (p *parser) parseCompound() (*nbt.Tag, error) {
	t := nbt.NewCompound("")
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.typ {
		case tokRbrace:
			return t, nil
		case tokEOF:
			return nil, p.errorf(tok, "unexpected end of input, expected '}'")
		case tokString, tokLiteral:
			name := tok.value
			colon, err := p.next()
			if err != nil {
				return nil, err
			}
			if colon.typ != tokColon {
				return nil, p.errorf(colon, "expected ':' after name %q, found %s", name, colon.typ)
			}
			valTok, err := p.next()
			if err != nil {
				return nil, err
			}
			val, err := p.parseValue(valTok)
			if err != nil {
				return nil, err
			}
			t.Compound.Put(name, val)
		default:
			return nil, p.errorf(tok, "expected member name, found %s", tok.typ)
		}
	}
}

// parseValue parses the value beginning at tok.
func (p *parser) parseValue(tok token) (*nbt.Tag, error) {
	switch tok.typ {
	case tokLbrace:
		return p.parseCompound()
	case tokLbracket:
		return p.parseList()
	case tokByteArray:
		return p.parseTypedArray(nbt.KindByteArray)
	case tokIntArray:
		return p.parseTypedArray(nbt.KindIntArray)
	case tokLongArray:
		return p.parseTypedArray(nbt.KindLongArray)
	case tokString:
		return nbt.NewString("", tok.value), nil
	case tokLiteral:
		return literalTag(tok.value), nil
	case tokEOF:
		return nil, p.errorf(tok, "unexpected end of input, expected a value")
	default:
		return nil, p.errorf(tok, "expected a value, found %s", tok.typ)
	}
}

// parseList parses elements until the closing bracket. Element kinds
// must be homogeneous; the first element fixes the list kind.
func (p *parser) parseList() (*nbt.Tag, error) {
	t := nbt.NewList("", nbt.KindEnd)
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.typ {
		case tokRbracket:
			return t, nil
		case tokEOF:
			return nil, p.errorf(tok, "unexpected end of input, expected ']'")
		default:
			val, err := p.parseValue(tok)
			if err != nil {
				return nil, err
			}
			if err := t.List.Append(val); err != nil {
				syn := p.errorf(tok, "list of %s cannot hold %s element", t.List.Elem, val.Kind)
				syn.Err = err
				return nil, syn
			}
		}
	}
}

// parseTypedArray parses "[B;", "[I;", or "[L;" element sequences.
// Every element must carry the declared kind's lexical convention: a
// b/B suffix for byte arrays, no suffix for int arrays, an l/L suffix
// for long arrays.
func (p *parser) parseTypedArray(kind nbt.Kind) (*nbt.Tag, error) {
	var (
		bytes []byte
		ints  []int32
		longs []int64
	)
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.typ {
		case tokRbracket:
			switch kind {
			case nbt.KindByteArray:
				return nbt.NewByteArray("", bytes), nil
			case nbt.KindIntArray:
				return nbt.NewIntArray("", ints), nil
			default:
				return nbt.NewLongArray("", longs), nil
			}
		case tokEOF:
			return nil, p.errorf(tok, "unexpected end of input, expected ']'")
		case tokLiteral:
			elem := literalTag(tok.value)
			switch kind {
			case nbt.KindByteArray:
				if elem.Kind != nbt.KindByte {
					return nil, p.errorf(tok, "expected %s element, found %s %q", nbt.KindByte, elem.Kind, tok.value)
				}
				bytes = append(bytes, byte(elem.Byte))
			case nbt.KindIntArray:
				if elem.Kind != nbt.KindInt {
					return nil, p.errorf(tok, "expected %s element, found %s %q", nbt.KindInt, elem.Kind, tok.value)
				}
				ints = append(ints, elem.Int)
			default:
				if elem.Kind != nbt.KindLong {
					return nil, p.errorf(tok, "expected %s element, found %s %q", nbt.KindLong, elem.Kind, tok.value)
				}
				longs = append(longs, elem.Long)
			}
		default:
			return nil, p.errorf(tok, "expected array element, found %s", tok.typ)
		}
	}
}

// literalTag classifies a bare word: boolean keywords, a suffixed or
// unsuffixed number, or, failing all of those, an unquoted string.
// The string fallback is deliberate leniency, not an error path.
func literalTag(s string) *nbt.Tag {
	switch s {
	case "true":
		return nbt.NewBool("", true)
	case "false":
		return nbt.NewBool("", false)
	}
	if len(s) > 1 {
		core := s[:len(s)-1]
		switch s[len(s)-1] {
		case 'b', 'B':
			if v, err := strconv.ParseInt(core, 10, 8); err == nil {
				return nbt.NewByte("", int8(v))
			}
		case 's', 'S':
			if v, err := strconv.ParseInt(core, 10, 16); err == nil {
				return nbt.NewShort("", int16(v))
			}
		case 'l', 'L':
			if v, err := strconv.ParseInt(core, 10, 64); err == nil {
				return nbt.NewLong("", v)
			}
		case 'f', 'F':
			if v, err := strconv.ParseFloat(core, 32); err == nil {
				return nbt.NewFloat("", float32(v))
			}
		case 'd', 'D':
			if v, err := strconv.ParseFloat(core, 64); err == nil {
				return nbt.NewDouble("", v)
			}
		}
	}
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return nbt.NewInt("", int32(v))
	}
	if strings.Contains(s, ".") {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return nbt.NewDouble("", v)
		}
	}
	return nbt.NewString("", s)
}
