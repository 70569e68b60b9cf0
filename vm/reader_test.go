package vm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReader(t *testing.T) {
	assert := assert.New(t)

	rd := &Reader{}

	prog, err := rd.Parse(context.Background(), strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Lines))

	program := []string{
		"// SimpleAdd.vm",
		"",
		"function  SimpleAdd.main\t0   ",
		"\tpush constant 7 // first",
		"    push constant 8",
		"add",
		"",
		"return",
	}

	prog, err = rd.Parse(context.Background(), strings.NewReader(strings.Join(program, "\n")))
	if !assert.NoError(err) {
		return
	}

	expected := []Line{
		{3, "function SimpleAdd.main 0", DefFun{Name: "SimpleAdd.main", NVars: 0}},
		{4, "push constant 7", Push{Segment: SEGMENT_CONSTANT, Index: 7}},
		{5, "push constant 8", Push{Segment: SEGMENT_CONSTANT, Index: 8}},
		{6, "add", Arith{Op: OP_ADD}},
		{8, "return", Return{}},
	}
	assert.Equal(expected, prog.Lines)
}

func TestReaderExpression(t *testing.T) {
	assert := assert.New(t)

	rd := &Reader{}
	rd.Predefine("BASE", "0x10")
	rd.Predefine("REG", "r0")
	rd.Predefine("BASE", "0x20")

	program := []string{
		"push constant $(BASE + 1)",
		"pop temp $(LINENO * 2)",
		"call Math.max $(len([1, 2]))",
		"push constant $((1 + 2) * 3)",
		"pop local $(max(BASE, (LINENO)))",
	}

	prog, err := rd.Parse(context.Background(), strings.NewReader(strings.Join(program, "\n")))
	if !assert.NoError(err) {
		return
	}

	assert.Equal("push constant 33\npop temp 4\ncall Math.max 2\npush constant 9\npop local 32\n", prog.String())

	table := []string{
		"push constant $(BASE - 0x21)",
		"push constant $(0x10000)",
		"push constant $(\"x\")",
		"push constant $(REG)",
		"push constant $(1 +)",
	}

	for _, line := range table {
		_, err := rd.Parse(context.Background(), strings.NewReader(line))
		var serr ErrSyntax
		if assert.True(errors.As(err, &serr), line) {
			assert.Equal(1, serr.LineNo, line)
		}
	}

	_, err = rd.Parse(context.Background(), strings.NewReader("push constant $(0x10000)"))
	assert.ErrorIs(err, ErrExpression("0x10000"))
}

func TestReaderSyntaxError(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"push constant 1",
		"// comment",
		"push local 99999",
		"label 1abc",
		"return",
	}

	for _, jobs := range []int{0, 1, 4} {
		rd := &Reader{Jobs: jobs}
		prog, err := rd.Parse(context.Background(), strings.NewReader(strings.Join(program, "\n")))
		assert.Nil(prog)

		var serr ErrSyntax
		if assert.True(errors.As(err, &serr)) {
			assert.Equal(3, serr.LineNo)
			assert.Equal("push local 99999", serr.Line)
			assert.ErrorIs(err, ErrMalformedIndex)
			assert.Contains(serr.Error(), "line 3 'push local 99999'")
		}
	}
}

func TestReaderOrder(t *testing.T) {
	assert := assert.New(t)

	var sb strings.Builder
	for n := range 1000 {
		fmt.Fprintf(&sb, "push constant %d\n", n)
	}

	rd := &Reader{Jobs: 8}
	prog, err := rd.Parse(context.Background(), strings.NewReader(sb.String()))
	if !assert.NoError(err) {
		return
	}

	assert.Equal(1000, len(prog.Lines))
	for n, line := range prog.Lines {
		assert.Equal(n+1, line.LineNo)
		assert.Equal(Push{Segment: SEGMENT_CONSTANT, Index: Index(n)}, line.Inst)
	}
	assert.Equal(sb.String(), prog.String())
}

func TestReaderCancel(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rd := &Reader{}
	prog, err := rd.Parse(ctx, strings.NewReader("add\nsub\n"))
	assert.Nil(prog)
	assert.ErrorIs(err, context.Canceled)
}

func TestReaderLineTooLong(t *testing.T) {
	assert := assert.New(t)

	rd := &Reader{}
	long := "label " + strings.Repeat("a", 70*1024)
	_, err := rd.Parse(context.Background(), strings.NewReader("add\n"+long))

	var serr ErrSyntax
	if assert.True(errors.As(err, &serr)) {
		assert.Equal(2, serr.LineNo)
	}
	assert.ErrorIs(err, ErrLineTooLong)
}
