package messageformat

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SyntaxError reports where a message source stopped making sense.
type SyntaxError struct {
	Msg string
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("messageformat: %s at offset %d", e.Msg, e.Pos)
}

// Message is a parsed message, safe for concurrent use.
type Message struct {
	src   string
	parts []part
}

// String returns the source the message was parsed from.
func (m *Message) String() string { return m.src }

// Parse compiles src. Backslash escapes '{', '}', '#' and itself.
func Parse(src string) (*Message, error) {
	p := &parser{src: []rune(src)}
	m, err := p.message(false, false)
	if err != nil {
		return nil, err
	}
	m.src = src
	return m, nil
}

// MustParse is like Parse but panics on error. Use it for literals only.
func MustParse(src string) *Message {
	m, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return m
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: p.pos}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) expect(r rune) error {
	p.skipSpace()
	if p.peek() != r {
		if p.eof() {
			return p.errorf("expected %q, got end of input", r)
		}
		return p.errorf("expected %q, got %q", r, p.peek())
	}
	p.pos++
	return nil
}

// message reads parts until the end of input, or until an unmatched '}'
// when nested. The closing brace is left for the caller.
func (p *parser) message(nested, inPlural bool) (*Message, error) {
	var (
		parts []part
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			parts = append(parts, text(buf.String()))
			buf.Reset()
		}
	}

	for !p.eof() {
		r := p.src[p.pos]
		switch {
		case r == '\\' && p.pos+1 < len(p.src):
			buf.WriteRune(p.src[p.pos+1])
			p.pos += 2
		case r == '{':
			flush()
			p.pos++
			arg, err := p.argument(inPlural)
			if err != nil {
				return nil, err
			}
			parts = append(parts, arg)
		case r == '}':
			if !nested {
				return nil, p.errorf("unmatched '}'")
			}
			flush()
			return &Message{parts: parts}, nil
		case r == '#' && inPlural:
			flush()
			parts = append(parts, hash{})
			p.pos++
		default:
			buf.WriteRune(r)
			p.pos++
		}
	}

	if nested {
		return nil, p.errorf("unterminated branch")
	}
	flush()
	return &Message{parts: parts}, nil
}

func (p *parser) ident() string {
	p.skipSpace()
	start := p.pos
	for !p.eof() {
		r := p.src[p.pos]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' && r != '=' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) argument(inPlural bool) (part, error) {
	name := p.ident()
	if name == "" {
		return nil, p.errorf("missing argument name")
	}
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return argument{name: name}, nil
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}

	kind := p.ident()
	switch kind {
	case "select":
		if err := p.expect(','); err != nil {
			return nil, err
		}
		cases, err := p.cases(inPlural)
		if err != nil {
			return nil, err
		}
		return selectExpr{name: name, cases: cases}, nil
	case "plural", "selectordinal":
		if err := p.expect(','); err != nil {
			return nil, err
		}
		offset, err := p.offset()
		if err != nil {
			return nil, err
		}
		cases, err := p.cases(true)
		if err != nil {
			return nil, err
		}
		return pluralExpr{name: name, offset: offset, cases: cases}, nil
	case "":
		return nil, p.errorf("missing argument type")
	default:
		// number, date and friends render the raw value; skip any style.
		for !p.eof() && p.peek() != '}' {
			p.pos++
		}
		if err := p.expect('}'); err != nil {
			return nil, err
		}
		return argument{name: name}, nil
	}
}

func (p *parser) offset() (float64, error) {
	p.skipSpace()
	const prefix = "offset:"
	if !strings.HasPrefix(string(p.src[p.pos:min(len(p.src), p.pos+len(prefix))]), prefix) {
		return 0, nil
	}
	p.pos += len(prefix)
	raw := p.ident()
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, p.errorf("invalid offset %q", raw)
	}
	return n, nil
}

func (p *parser) cases(inPlural bool) (map[string]*Message, error) {
	cases := make(map[string]*Message)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated argument")
		}
		if p.peek() == '}' {
			p.pos++
			break
		}
		key := p.ident()
		if key == "" {
			return nil, p.errorf("missing case key")
		}
		if err := p.expect('{'); err != nil {
			return nil, err
		}
		msg, err := p.message(true, inPlural)
		if err != nil {
			return nil, err
		}
		p.pos++ // closing brace
		cases[key] = msg
	}
	if len(cases) == 0 {
		return nil, p.errorf("argument has no cases")
	}
	return cases, nil
}
