package vm

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/hackvm/internal"
)

// Line is a parsed instruction with its source location.
type Line struct {
	LineNo int    // 1-based line number in the source.
	Text   string // Preprocessed text that was parsed.
	Inst   Inst
}

// Program is the ordered instruction sequence of one source file.
type Program struct {
	Lines []Line
}

// Debug returns the instruction parsed from source line lineno. Lines must
// be in ascending line order, as Reader.Parse produces them.
func (prog *Program) Debug(lineno int) (line Line, ok bool) {
	n, ok := slices.BinarySearchFunc(prog.Lines, lineno, func(l Line, lineno int) int {
		return l.LineNo - lineno
	})
	if ok {
		line = prog.Lines[n]
	}
	return
}

// Insts iterates over the source line numbers and instructions.
func (prog *Program) Insts() iter.Seq2[int, Inst] {
	return func(yield func(lineno int, in Inst) bool) {
		for _, line := range prog.Lines {
			if !yield(line.LineNo, line.Inst) {
				return
			}
		}
	}
}

// String renders the program in canonical form, one instruction per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, line := range prog.Lines {
		sb.WriteString(line.Inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Concat chains the instructions of several programs, in argument order.
func Concat(progs ...*Program) iter.Seq[Inst] {
	seqs := make([]iter.Seq[Inst], len(progs))
	for n, prog := range progs {
		seqs[n] = internal.SeqValues(prog.Insts())
	}
	return internal.SeqConcat(seqs...)
}
