package form

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/fregelab/entail/fol"
)

// A Sequent is a parsed entailment problem: the conjunction of the premises
// is claimed to entail the conjunction of the conclusions.
type Sequent struct {
	Premises    []Formula
	Conclusions []Formula
}

// A ParseError is a surface grammar violation, reported with the source
// position where it was detected.
type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Pos, e.Msg)
}

// An ArityError reports a symbol used with inconsistent arity across the
// input.
type ArityError struct {
	Pos  scanner.Position
	Sym  fol.Symbol
	Role string // "predicate" or "function"
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%v: %s symbol %q used with %d arguments, previously %d",
		e.Pos, e.Role, e.Sym, e.Got, e.Want)
}

const tokEOF = ""

type parser struct {
	s      scanner.Scanner
	token  string // last token read; tokEOF once exhausted
	pos    scanner.Position
	preds  map[fol.Symbol]int // arity of each predicate symbol
	funs   map[fol.Symbol]int // arity of each function symbol
	scnErr error
}

// Parse parses a sequent from the given input Reader.
//
// The surface syntax is "premises |- conclusions", both sides being
// comma-separated formula lists; the premise list, the conclusion list or
// both may be empty. Formulas are written using the following operators,
// from lowest to highest priority:
//
//   - for an equivalence, the "<->" operator,
//   - for implications, the "->" and "<-" operators,
//   - for an exclusive disjunction, the "^" operator,
//   - for a disjunction ("or"), the "|" operator,
//   - for a conjunction ("and"), the "&" operator,
//   - for a negation, the "!" unary operator.
//
// The constants "*" and "~" denote true and false. An equality is written
// "a == b", a disequality "a != b", a predicate application "P(a, b)". An
// identifier in argument position denotes a constant unless it is prefixed
// with ":", which makes it a variable. A "#" begins a comment running to
// the end of the line. Parentheses can be used to group subformulas.
func Parse(r io.Reader) (*Sequent, error) {
	p := &parser{
		preds: map[fol.Symbol]int{},
		funs:  map[fol.Symbol]int{},
	}
	p.s.Init(r)
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.Error = func(_ *scanner.Scanner, msg string) {
		if p.scnErr == nil {
			p.scnErr = &ParseError{Pos: p.s.Pos(), Msg: msg}
		}
	}
	p.scan()

	seq := &Sequent{}
	var err error
	if p.token != "|-" {
		if seq.Premises, err = p.parseExprList(); err != nil {
			return nil, err
		}
	}
	if p.token != "|-" {
		return nil, p.errf("expected %q, found %q", "|-", p.token)
	}
	p.scan()
	if p.token != tokEOF {
		if seq.Conclusions, err = p.parseExprList(); err != nil {
			return nil, err
		}
	}
	if p.token != tokEOF {
		return nil, p.errf("unexpected token %q after sequent", p.token)
	}
	if p.scnErr != nil {
		return nil, p.scnErr
	}
	return seq, nil
}

func (p *parser) errf(format string, args ...interface{}) error {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// scan reads the next token, merging the multi-rune operators "==", "!=",
// "->", "<-", "<->" and "|-" and skipping "#" comments.
func (p *parser) scan() {
	for {
		tok := p.s.Scan()
		p.pos = p.s.Position
		switch tok {
		case scanner.EOF:
			p.token = tokEOF
			return
		case scanner.Ident, scanner.Int:
			p.token = p.s.TokenText()
			return
		case '#':
			for ch := p.s.Next(); ch != '\n' && ch != scanner.EOF; ch = p.s.Next() {
			}
			continue
		case '=':
			if p.s.Peek() == '=' {
				p.s.Next()
				p.token = "=="
			} else {
				p.token = "="
			}
			return
		case '!':
			if p.s.Peek() == '=' {
				p.s.Next()
				p.token = "!="
			} else {
				p.token = "!"
			}
			return
		case '-':
			if p.s.Peek() == '>' {
				p.s.Next()
				p.token = "->"
			} else {
				p.token = "-"
			}
			return
		case '<':
			if p.s.Peek() == '-' {
				p.s.Next()
				if p.s.Peek() == '>' {
					p.s.Next()
					p.token = "<->"
				} else {
					p.token = "<-"
				}
			} else {
				p.token = "<"
			}
			return
		case '|':
			if p.s.Peek() == '-' {
				p.s.Next()
				p.token = "|-"
			} else {
				p.token = "|"
			}
			return
		default:
			p.token = string(tok)
			return
		}
	}
}

func (p *parser) parseExprList() ([]Formula, error) {
	var exprs []Formula
	for {
		f, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, f)
		if p.token != "," {
			return exprs, nil
		}
		p.scan()
	}
}

func (p *parser) parseEquiv() (Formula, error) {
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.token == "<->" {
		p.scan()
		f2, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		return Equiv(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseImplies() (Formula, error) {
	f, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	switch p.token {
	case "->":
		p.scan()
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	case "<-":
		p.scan()
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return RevImplies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseXor() (Formula, error) {
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.token == "^" {
		p.scan()
		f2, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		return Xor(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (Formula, error) {
	f, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.token == "|" {
		p.scan()
		f2, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return Or(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseAnd() (Formula, error) {
	f, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.token == "&" {
		p.scan()
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return And(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseUnary() (Formula, error) {
	switch p.token {
	case tokEOF:
		return nil, p.errf("expected expression, found EOF")
	case "!":
		p.scan()
		f, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	case "(":
		p.scan()
		f, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		if p.token != ")" {
			return nil, p.errf("expected %q, found %q", ")", p.token)
		}
		p.scan()
		return f, nil
	case "*":
		p.scan()
		return True, nil
	case "~":
		p.scan()
		return False, nil
	}
	return p.parseAtom()
}

// parseAtom parses a predicate application, an equality or a disequality.
// A bare term becomes a predicate atom; a term followed by "==" or "!="
// becomes the corresponding equality literal.
func (p *parser) parseAtom() (Formula, error) {
	pos := p.pos
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch p.token {
	case "==", "!=":
		neg := p.token == "!="
		p.scan()
		t2, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.recordTerm(pos, t); err != nil {
			return nil, err
		}
		if err := p.recordTerm(pos, t2); err != nil {
			return nil, err
		}
		a := Atom(fol.Eq(t, t2))
		if neg {
			return Not(a), nil
		}
		return a, nil
	}
	// A bare term in formula position is a predicate application.
	fn, ok := t.(fol.Fn)
	if !ok {
		return nil, &ParseError{Pos: pos, Msg: fmt.Sprintf("variable %v cannot stand as a formula", t)}
	}
	if err := p.record(pos, p.preds, "predicate", fn.Sym, len(fn.Args)); err != nil {
		return nil, err
	}
	for _, arg := range fn.Args {
		if err := p.recordTerm(pos, arg); err != nil {
			return nil, err
		}
	}
	return Atom(fol.Atom{Pred: fn.Sym, Args: fn.Args}), nil
}

func (p *parser) parseTerm() (fol.Term, error) {
	if p.token == ":" {
		p.scan()
		if !isIdent(p.token) {
			return nil, p.errf("expected variable name after %q, found %q", ":", p.token)
		}
		v := fol.Var(p.token)
		p.scan()
		return v, nil
	}
	if !isIdent(p.token) {
		return nil, p.errf("expected term, found %q", p.token)
	}
	sym := fol.Symbol(p.token)
	p.scan()
	if p.token != "(" {
		return fol.Const(sym), nil
	}
	p.scan()
	var args []fol.Term
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.token == "," {
			p.scan()
			continue
		}
		break
	}
	if p.token != ")" {
		return nil, p.errf("expected %q, found %q", ")", p.token)
	}
	p.scan()
	return fol.Fn{Sym: sym, Args: args}, nil
}

// recordTerm registers the function symbols of a term with their arities.
func (p *parser) recordTerm(pos scanner.Position, t fol.Term) error {
	fn, ok := t.(fol.Fn)
	if !ok {
		return nil
	}
	if err := p.record(pos, p.funs, "function", fn.Sym, len(fn.Args)); err != nil {
		return err
	}
	for _, arg := range fn.Args {
		if err := p.recordTerm(pos, arg); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) record(pos scanner.Position, arities map[fol.Symbol]int, role string, sym fol.Symbol, arity int) error {
	if want, ok := arities[sym]; ok && want != arity {
		return &ArityError{Pos: pos, Sym: sym, Role: role, Want: want, Got: arity}
	}
	arities[sym] = arity
	return nil
}

func isIdent(token string) bool {
	if token == tokEOF {
		return false
	}
	for _, r := range token {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
