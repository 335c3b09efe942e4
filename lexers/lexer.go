package lexers

import (
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/typy/diags"
	"github.com/reusee/typy/tokens"
)

const DefaultTabWidth = 8

type Lexer struct {
	src      string
	diags    *diags.Collector
	tabWidth int

	offset int
	line   int
	column int

	// indentation widths, tabs expanded to tabWidth
	indents []int
	// the same levels measured with tabs counted as one column
	altIndents []int

	pending       []tokens.Token
	atLineStart   bool
	lineHasTokens bool
	depth         int
	done          bool
}

type Option func(*Lexer)

func WithTabWidth(n int) Option {
	return func(l *Lexer) {
		if n > 0 {
			l.tabWidth = n
		}
	}
}

func New(src string, collector *diags.Collector, options ...Option) *Lexer {
	if collector == nil {
		collector = new(diags.Collector)
	}
	l := &Lexer{
		src:         src,
		diags:       collector,
		tabWidth:    DefaultTabWidth,
		line:        1,
		column:      1,
		indents:     []int{0},
		altIndents:  []int{0},
		atLineStart: true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Next returns the next token. After EOF it keeps returning EOF.
func (l *Lexer) Next() tokens.Token {
	for len(l.pending) == 0 {
		l.scan()
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok
}

// All yields tokens up to and including EOF.
func All(l *Lexer) iter.Seq[tokens.Token] {
	return func(yield func(tokens.Token) bool) {
		for {
			tok := l.Next()
			if !yield(tok) || tok.Kind == tokens.EOF {
				return
			}
		}
	}
}

func Tokenize(src string, collector *diags.Collector, options ...Option) (ret []tokens.Token) {
	for tok := range All(New(src, collector, options...)) {
		ret = append(ret, tok)
	}
	return
}

func (l *Lexer) pos() tokens.Pos {
	return tokens.Pos{
		Line:   l.line,
		Column: l.column,
		Offset: l.offset,
	}
}

func (l *Lexer) eof() bool {
	return l.offset >= len(l.src)
}

func (l *Lexer) peek() rune {
	if l.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.offset:])
	return r
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.offset:])
	l.offset += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) emit(kind tokens.Kind, lexeme string, literal any, pos tokens.Pos) {
	l.pending = append(l.pending, tokens.Token{
		Kind:    kind,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
	})
	switch kind {
	case tokens.Newline, tokens.Indent, tokens.Dedent, tokens.EOF:
	default:
		l.lineHasTokens = true
	}
}

func (l *Lexer) scan() {
	if l.done {
		l.emit(tokens.EOF, "", nil, l.pos())
		return
	}

	if l.atLineStart && l.depth == 0 {
		l.atLineStart = false
		l.indentation()
		return
	}

	l.skipSpaces()
	if l.eof() {
		l.finish()
		return
	}

	start := l.pos()
	r := l.peek()
	switch {

	case r == '\n':
		l.advance()
		if l.depth > 0 {
			// implicit line joining
			return
		}
		if l.lineHasTokens {
			l.emit(tokens.Newline, "\n", nil, start)
			l.lineHasTokens = false
		}
		l.atLineStart = true

	case r == '"' || r == '\'':
		l.scanString(start)

	case r >= '0' && r <= '9':
		l.scanInteger(start)

	case r == '_' || unicode.IsLetter(r):
		l.scanIdentifier(start)

	default:
		rule, ok := tokens.MatchOperator(l.src[l.offset:])
		if !ok {
			l.advance()
			l.diags.Add(diags.Lexical, start, "illegal character %q", r)
			return
		}
		for range len(rule.Lexeme) {
			l.advance()
		}
		switch rule.Kind {
		case tokens.LParen, tokens.LBracket:
			l.depth++
		case tokens.RParen, tokens.RBracket:
			if l.depth > 0 {
				l.depth--
			}
		}
		l.emit(rule.Kind, rule.Lexeme, nil, start)

	}
}

func (l *Lexer) skipSpaces() {
	for !l.eof() {
		switch l.peek() {
		case ' ', '\t', '\r', '\f':
			l.advance()
		case '#':
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// indentation measures the leading whitespace of a physical line and
// synthesizes INDENT and DEDENT tokens. Blank and comment-only lines leave the
// stack untouched.
func (l *Lexer) indentation() {
	width, alt := 0, 0
loop:
	for !l.eof() {
		switch l.peek() {
		case ' ':
			width++
			alt++
		case '\t':
			width = (width/l.tabWidth + 1) * l.tabWidth
			alt++
		case '\f':
			width, alt = 0, 0
		default:
			break loop
		}
		l.advance()
	}
	switch l.peek() {
	case '\n', '\r', '#', 0:
		return
	}

	pos := l.pos()
	top := len(l.indents) - 1
	inconsistent := false

	switch {

	case width > l.indents[top]:
		inconsistent = alt <= l.altIndents[top]
		l.indents = append(l.indents, width)
		l.altIndents = append(l.altIndents, alt)
		l.emit(tokens.Indent, "", nil, pos)

	case width == l.indents[top]:
		inconsistent = alt != l.altIndents[top]

	default:
		for width < l.indents[len(l.indents)-1] {
			n := len(l.indents)
			l.indents = l.indents[:n-1]
			l.altIndents = l.altIndents[:n-1]
			l.emit(tokens.Dedent, "", nil, pos)
		}
		top = len(l.indents) - 1
		if width != l.indents[top] {
			// between two levels; the enclosing level moves to this width,
			// except the base level which stays at zero
			l.diags.Add(diags.Indentation, pos, "unindent does not match any outer indentation level")
			if top > 0 {
				l.indents[top] = width
				l.altIndents[top] = alt
			}
		} else if l.altIndents[top] != alt {
			inconsistent = true
		}

	}

	if inconsistent {
		l.diags.Add(diags.Indentation, pos, "inconsistent use of tabs and spaces in indentation")
	}
}

func (l *Lexer) finish() {
	pos := l.pos()
	if l.lineHasTokens {
		l.emit(tokens.Newline, "", nil, pos)
		l.lineHasTokens = false
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.altIndents = l.altIndents[:len(l.altIndents)-1]
		l.emit(tokens.Dedent, "", nil, pos)
	}
	l.emit(tokens.EOF, "", nil, pos)
	l.done = true
}

func (l *Lexer) scanIdentifier(start tokens.Pos) {
	for !l.eof() {
		r := l.peek()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	text := l.src[start.Offset:l.offset]
	l.emit(tokens.Lookup(text), text, nil, start)
}

func (l *Lexer) scanInteger(start tokens.Pos) {
	for !l.eof() {
		r := l.peek()
		if r < '0' || r > '9' {
			break
		}
		l.advance()
	}
	text := l.src[start.Offset:l.offset]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.diags.Add(diags.Lexical, start, "integer literal %s out of range", text)
		value = 0
	}
	l.emit(tokens.Integer, text, value, start)
}

func (l *Lexer) scanString(start tokens.Pos) {
	quote := l.advance()
	var buf strings.Builder
	for {
		if l.eof() || l.peek() == '\n' {
			l.diags.Add(diags.Lexical, start, "unterminated string literal")
			break
		}
		r := l.advance()
		if r == quote {
			break
		}
		if r != '\\' {
			buf.WriteRune(r)
			continue
		}
		if l.eof() || l.peek() == '\n' {
			l.diags.Add(diags.Lexical, start, "unterminated string literal")
			break
		}
		switch next := l.advance(); next {
		case 'n':
			buf.WriteRune('\n')
		case 't':
			buf.WriteRune('\t')
		case 'r':
			buf.WriteRune('\r')
		case '0':
			buf.WriteRune(0)
		case '\\', '"', '\'':
			buf.WriteRune(next)
		default:
			buf.WriteRune('\\')
			buf.WriteRune(next)
		}
	}
	l.emit(tokens.String, l.src[start.Offset:l.offset], buf.String(), start)
}
