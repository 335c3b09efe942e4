package parsers

import (
	"log/slog"

	"github.com/reusee/typy/diags"
	"github.com/reusee/typy/grammars"
	"github.com/reusee/typy/lexers"
	"github.com/reusee/typy/nodes"
	"github.com/reusee/typy/tokens"
)

// Parser is a predictive parser driven by the LL(1) table of a grammar.
// A Parser is not safe for concurrent use; Parse may be called repeatedly.
type Parser struct {
	name     string
	src      string
	grammar  *grammars.Grammar
	tabWidth int
	maxBytes int
	logger   *slog.Logger

	lexer    *lexers.Lexer
	diags    *diags.Collector
	tok      tokens.Token
	consumed int
	// kind of the last consumed token
	last tokens.Kind
	// set by a syntax error, cleared by the next matched token or line
	recovering bool
}

type Option func(*Parser)

func WithGrammar(g *grammars.Grammar) Option {
	return func(p *Parser) {
		p.grammar = g
	}
}

func WithTabWidth(n int) Option {
	return func(p *Parser) {
		p.tabWidth = n
	}
}

// WithMaxSourceBytes rejects sources longer than n bytes. Zero means no limit.
func WithMaxSourceBytes(n int) Option {
	return func(p *Parser) {
		p.maxBytes = n
	}
}

// WithLogger traces every prediction at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

func New(name string, src string, options ...Option) *Parser {
	p := &Parser{
		name:     name,
		src:      src,
		tabWidth: lexers.DefaultTabWidth,
	}
	for _, option := range options {
		option(p)
	}
	if p.grammar == nil {
		p.grammar = grammars.Default()
	}
	return p
}

// Parse lexes and parses the whole source. The tree is returned only when
// there are no diagnostics.
func Parse(name string, src string, options ...Option) Result {
	return New(name, src, options...).Parse()
}

func (p *Parser) Parse() Result {
	p.diags = new(diags.Collector)
	p.consumed = 0
	p.last = tokens.Illegal
	p.recovering = false

	if p.maxBytes > 0 && len(p.src) > p.maxBytes {
		p.diags.Add(diags.Lexical, tokens.Pos{Line: 1, Column: 1},
			"source is %d bytes, exceeding the limit of %d", len(p.src), p.maxBytes)
		return p.result(nil)
	}

	p.lexer = lexers.New(p.src, p.diags, lexers.WithTabWidth(p.tabWidth))
	p.tok = p.lexer.Next()
	tree := p.program()

	if p.logger != nil {
		p.logger.Debug("parsed",
			"name", p.name,
			"tokens", p.consumed,
			"nodes", nodes.Count(tree),
			"diagnostics", p.diags.Len(),
		)
	}
	return p.result(tree)
}

func (p *Parser) result(tree *nodes.Program) Result {
	list := p.diags.All()
	if len(list) > 0 {
		tree = nil
	}
	return Result{
		Name:        p.name,
		Tree:        tree,
		Diagnostics: list,
	}
}

// next consumes a matched token.
func (p *Parser) next() {
	p.advance()
	p.recovering = false
}

// advance consumes a token without matching it.
func (p *Parser) advance() {
	p.last = p.tok.Kind
	p.tok = p.lexer.Next()
	p.consumed++
}

// resync ends error suppression once recovery has reached the start of a line.
func (p *Parser) resync() {
	switch p.last {
	case tokens.Newline, tokens.Indent, tokens.Dedent:
		p.recovering = false
	}
}

func (p *Parser) errorf(format string, args ...any) {
	// errors before the next matched token are cascades of this one
	if p.recovering {
		return
	}
	p.recovering = true
	p.diags.Add(diags.Syntax, p.tok.Pos, format, args...)
}

// choose predicts the production of nt for the current lookahead. On
// failure it reports and recovers; the caller should build a placeholder.
func (p *Parser) choose(nt grammars.NonTerminal) (grammars.Production, bool) {
	prod, ok := p.grammar.Choose(nt, p.tok.Kind)
	if p.logger != nil {
		p.logger.Debug("predict",
			"nonterminal", nt.String(),
			"lookahead", p.tok.Kind.String(),
			"pos", p.tok.Pos.String(),
			"production", prod.String(),
			"ok", ok,
		)
	}
	if ok {
		return prod, true
	}
	expected := p.grammar.Expected(nt)
	if expected.Len() <= maxListedExpected {
		p.errorf("unexpected %s in %s, expected %s",
			p.tok.Describe(), nt.Description(), expected.Describe())
	} else {
		p.errorf("unexpected %s in %s", p.tok.Describe(), nt.Description())
	}
	p.sync(nt, tokens.Illegal)
	return prod, false
}

const maxListedExpected = 6

// expect consumes a token of kind. On mismatch it reports and recovers,
// and succeeds if recovery stopped on kind.
func (p *Parser) expect(kind tokens.Kind, nt grammars.NonTerminal) (tokens.Token, bool) {
	tok := p.tok
	if tok.Kind == kind {
		p.next()
		return tok, true
	}
	p.errorf("expected %s, found %s", kind.Quoted(), tok.Describe())
	if boundaryKinds.Has(tok.Kind) {
		// the missing token ends here; let the enclosing statement recover
		return tok, false
	}
	p.skip(nt, kind)
	if p.tok.Kind == kind {
		tok = p.tok
		p.advance()
		return tok, true
	}
	return tok, false
}

// tokens that start a statement or end a line or block
var boundaryKinds = tokens.SetOf(
	tokens.Newline, tokens.Dedent, tokens.EOF,
	tokens.Def, tokens.If, tokens.While, tokens.For, tokens.Pass, tokens.Return,
)

// sync recovers from a failed prediction of nt. Nothing is discarded when
// the lookahead can follow nt.
func (p *Parser) sync(nt grammars.NonTerminal, want tokens.Kind) {
	switch kind := p.tok.Kind; {
	case kind == tokens.EOF, kind == tokens.Dedent, kind == want, p.grammar.Follow(nt).Has(kind):
		return
	}
	p.skip(nt, want)
}

// skip discards at least one token, then tokens until one that can follow
// nt, a statement boundary, or want. Indented blocks opened by discarded
// lines are discarded as a whole.
func (p *Parser) skip(nt grammars.NonTerminal, want tokens.Kind) {
	if kind := p.tok.Kind; kind == tokens.EOF || kind == tokens.Dedent {
		return
	}
	follow := p.grammar.Follow(nt)
	stop := follow.Union(boundaryKinds)
	if want != tokens.Illegal {
		stop = stop.Add(want)
	}
	depth := 0
	skip := func() {
		switch p.tok.Kind {
		case tokens.Indent:
			depth++
		case tokens.Dedent:
			depth--
		}
		p.advance()
	}

	skip()
	for p.tok.Kind != tokens.EOF {
		if depth == 0 && stop.Has(p.tok.Kind) {
			break
		}
		closing := depth == 1 && p.tok.Kind == tokens.Dedent
		skip()
		if closing {
			// a discarded block ends at a line boundary
			break
		}
	}

	// the broken line ends here, along with any block it opened
	if p.tok.Kind == tokens.Newline && want != tokens.Newline && !follow.Has(tokens.Newline) {
		p.advance()
		if p.tok.Kind == tokens.Indent {
			skip()
			for depth > 0 && p.tok.Kind != tokens.EOF {
				skip()
			}
		}
	}
}

// progress guarantees that a loop iteration that failed to predict has
// consumed something.
func (p *Parser) progress(before int) {
	if p.consumed == before && p.tok.Kind != tokens.EOF {
		p.advance()
	}
}
