// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"slices"
	"strconv"
	"strings"
)

// Keyword tables, in match order.
var (
	opWords       = wordsOf(opList)
	segmentWords  = wordsOf(segmentList)
	stackWords    = []string{"pop", "push"}
	labelWords    = []string{"label", "goto", "if-goto"}
	functionWords = []string{"function", "call"}
	returnWords   = []string{"return"}
)

func wordsOf[T interface{ String() string }](list []T) (words []string) {
	for _, item := range list {
		words = append(words, item.String())
	}
	return
}

// production parses one instruction family from the start of a line.
type production func(p *parser) (Inst, *ErrParse)

// productions are tried in order; the first to match wins.
var productions = []production{
	(*parser).arith,
	(*parser).stackOp,
	(*parser).labelOp,
	(*parser).funOp,
	(*parser).ret,
}

// ParseInst parses a single line of preprocessed VM text.
//
// The line must hold exactly one instruction in canonical spacing: tokens
// separated by a single space, with no leading or trailing whitespace and
// no comment. On failure the returned error is an *ErrParse that unwraps to
// ErrUnrecognizedKeyword, ErrMalformedIndex, ErrMalformedIdentifier or
// ErrTrailingInput.
func ParseInst(line string) (in Inst, err error) {
	var best *ErrParse

	for _, prod := range productions {
		p := &parser{line: line}
		var perr *ErrParse
		in, perr = prod(p)
		if perr == nil {
			if !p.done() {
				err = p.fail(ErrTrailingInput, f("end of line"))
				in = nil
			}
			return
		}
		best = farthest(best, perr)
	}

	err = best
	return
}

// farthest picks the failure that got furthest into the line. Keyword
// failures at the same column are merged so the error lists every keyword
// that was tried.
func farthest(a, b *ErrParse) *ErrParse {
	switch {
	case a == nil:
		return b
	case b.Column > a.Column:
		return b
	case b.Column == a.Column && a.Kind == ErrUnrecognizedKeyword && b.Kind == ErrUnrecognizedKeyword:
		merged := *a
		merged.Expected = append(slices.Clone(a.Expected), b.Expected...)
		return &merged
	}
	return a
}

// isAlpha is the first character class of an identifier.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isIdentRune is the continuation character class of an identifier.
func isIdentRune(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '_' || ch == '.' || ch == '$'
}

// parser is a cursor over one line.
type parser struct {
	line string
	pos  int
}

func (p *parser) rest() string {
	return p.line[p.pos:]
}

func (p *parser) done() bool {
	return p.pos == len(p.line)
}

func (p *parser) fail(kind error, expected ...string) *ErrParse {
	return &ErrParse{
		Kind:     kind,
		Column:   p.pos + 1,
		Expected: expected,
		Found:    p.rest(),
	}
}

// keyword consumes the first of words that is a prefix of the input and is
// not itself the prefix of a longer identifier.
func (p *parser) keyword(words []string) (n int, err *ErrParse) {
	rest := p.rest()
	for n, word := range words {
		if !strings.HasPrefix(rest, word) {
			continue
		}
		if len(rest) > len(word) && isIdentRune(rest[len(word)]) {
			continue
		}
		p.pos += len(word)
		return n, nil
	}

	return -1, p.fail(ErrUnrecognizedKeyword, words...)
}

// space consumes the single separator before the next token. When it is
// missing, the failure is reported against the expected token.
func (p *parser) space(kind error, expected ...string) *ErrParse {
	if strings.HasPrefix(p.rest(), " ") {
		p.pos++
		return nil
	}
	return p.fail(kind, expected...)
}

// index consumes a decimal integer in [0, 65535].
func (p *parser) index() (value Index, err *ErrParse) {
	rest := p.rest()

	end := 0
	for end < len(rest) && isDigit(rest[end]) {
		end++
	}

	if end == 0 || (end < len(rest) && isIdentRune(rest[end])) {
		err = p.fail(ErrMalformedIndex, f("index"))
		return
	}

	v64, perr := strconv.ParseUint(rest[:end], 10, 16)
	if perr != nil {
		err = p.fail(ErrMalformedIndex, f("index"))
		return
	}

	p.pos += end
	value = Index(v64)
	return
}

// ident consumes an identifier.
func (p *parser) ident() (name string, err *ErrParse) {
	rest := p.rest()

	if len(rest) == 0 || !isAlpha(rest[0]) {
		err = p.fail(ErrMalformedIdentifier, f("identifier"))
		return
	}

	end := 1
	for end < len(rest) && isIdentRune(rest[end]) {
		end++
	}

	p.pos += end
	name = rest[:end]
	return
}

func (p *parser) arith() (in Inst, err *ErrParse) {
	n, err := p.keyword(opWords)
	if err != nil {
		return
	}

	in = Arith{Op: opList[n]}
	return
}

func (p *parser) stackOp() (in Inst, err *ErrParse) {
	kw, err := p.keyword(stackWords)
	if err != nil {
		return
	}

	if err = p.space(ErrUnrecognizedKeyword, segmentWords...); err != nil {
		return
	}
	n, err := p.keyword(segmentWords)
	if err != nil {
		return
	}
	segment := segmentList[n]

	if err = p.space(ErrMalformedIndex, f("index")); err != nil {
		return
	}
	index, err := p.index()
	if err != nil {
		return
	}

	switch stackWords[kw] {
	case "pop":
		in = Pop{Segment: segment, Index: index}
	default:
		in = Push{Segment: segment, Index: index}
	}
	return
}

func (p *parser) labelOp() (in Inst, err *ErrParse) {
	kw, err := p.keyword(labelWords)
	if err != nil {
		return
	}

	if err = p.space(ErrMalformedIdentifier, f("identifier")); err != nil {
		return
	}
	label, err := p.ident()
	if err != nil {
		return
	}

	switch labelWords[kw] {
	case "label":
		in = DefLabel{Label: label}
	case "goto":
		in = Goto{Label: label}
	default:
		in = IfGoto{Label: label}
	}
	return
}

func (p *parser) funOp() (in Inst, err *ErrParse) {
	kw, err := p.keyword(functionWords)
	if err != nil {
		return
	}

	if err = p.space(ErrMalformedIdentifier, f("identifier")); err != nil {
		return
	}
	name, err := p.ident()
	if err != nil {
		return
	}

	if err = p.space(ErrMalformedIndex, f("index")); err != nil {
		return
	}
	n, err := p.index()
	if err != nil {
		return
	}

	switch functionWords[kw] {
	case "function":
		in = DefFun{Name: name, NVars: n}
	default:
		in = Call{Name: name, NArgs: n}
	}
	return
}

func (p *parser) ret() (in Inst, err *ErrParse) {
	if _, err = p.keyword(returnWords); err != nil {
		return
	}

	in = Return{}
	return
}
