package vm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/hackvm/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrUnrecognizedKeyword = errors.New(f("unrecognized keyword"))
	ErrMalformedIndex      = errors.New(f("malformed index"))
	ErrMalformedIdentifier = errors.New(f("malformed identifier"))
	ErrTrailingInput       = errors.New(f("trailing input"))

	// Reader errors
	ErrLineTooLong = errors.New(f("line too long"))
)

// ErrParse locates a parse failure within a single line.
type ErrParse struct {
	Kind     error    // One of the parser sentinel errors.
	Column   int      // 1-based column of the failure.
	Expected []string // What the parser would have accepted.
	Found    string   // Unconsumed remainder of the line.
}

func (err *ErrParse) Error() string {
	found := f("end of line")
	if len(err.Found) > 0 {
		found = strconv.Quote(err.Found)
	}
	return f("%v at column %d: expected %v, found %v",
		err.Kind, err.Column, strings.Join(err.Expected, f(" or ")), found)
}

func (err *ErrParse) Unwrap() error {
	return err.Kind
}

// ErrSyntax attributes an error to a line of a source file.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrExpression is a $(...) expression that did not evaluate to an index.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid index expression", string(err))
}
