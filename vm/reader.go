// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/sync/errgroup"
)

// Reader preprocesses and parses VM source files.
type Reader struct {
	Verbose bool // If set, logs each source line as it is read.
	Jobs    int  // Maximum parallel line parsers. Zero means GOMAXPROCS.

	predefine map[string]string
}

// Predefine defines, or redefines, a value visible to $(...) expressions.
// Values that are not integers are ignored by the evaluator.
func (rd *Reader) Predefine(name string, value string) {
	if rd.predefine == nil {
		rd.predefine = map[string]string{name: value}
	} else {
		rd.predefine[name] = value
	}
}

// reExpr matches a $(...) compile-time expression, which may itself contain
// parentheses.
var reExpr = regexp.MustCompile(`\$\([^\$]*\)`)

// evalDict returns the predeclared integer values for $(...) expressions.
func (rd *Reader) evalDict() starlark.StringDict {
	pred := starlark.StringDict{}
	for key, str := range rd.predefine {
		v64, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	return pred
}

// eval evaluates a $(...) expression to an index.
func eval(expr string, pred starlark.StringDict) (value Index, err error) {
	thread := starlark.Thread{Name: "hackvm"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff {
		err = ErrExpression(expr)
		return
	}
	value = Index(st_int64)
	return
}

// clean strips the comment and normalizes whitespace of a source line.
// Runs of spaces and tabs collapse to a single space.
func clean(text string) string {
	text, _, _ = strings.Cut(text, "//")
	return strings.Join(strings.Fields(text), " ")
}

// expand replaces every $(...) expression in line with its decimal value.
func expand(line string, pred starlark.StringDict) (out string, err error) {
	out = reExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := eval(str[2:len(str)-1], pred)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.Itoa(int(value))
	})
	return
}

// Parse reads a whole source file into a Program.
//
// Lines are parsed in parallel; the returned error is an ErrSyntax for the
// first failing line in source order.
func (rd *Reader) Parse(ctx context.Context, input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	pred := rd.evalDict()

	var lines []Line
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if rd.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line := clean(text)
		if len(line) == 0 {
			continue
		}

		pred["LINENO"] = starlark.MakeInt(lineno)
		var expanded string
		expanded, err = expand(line, pred)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		lines = append(lines, Line{LineNo: lineno, Text: expanded})
	}

	err = scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		err = ErrLineTooLong
	}
	if err != nil {
		err = ErrSyntax{LineNo: lineno + 1, Err: err}
		return
	}

	jobs := rd.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	errs := make([]error, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for n := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			line := &lines[n]
			in, err := ParseInst(line.Text)
			if err != nil {
				errs[n] = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
				return nil
			}
			line.Inst = in
			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return
	}

	if err = ctx.Err(); err != nil {
		return
	}

	for _, lerr := range errs {
		if lerr != nil {
			err = lerr
			return
		}
	}

	prog = &Program{Lines: lines}

	return
}
