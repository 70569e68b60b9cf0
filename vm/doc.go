// Package vm implements the instruction model and parser for the stack
// machine VM language.
//
// Each line of VM text holds exactly one instruction: an arithmetic or
// logical operator, a push or pop against a memory segment, a label
// operation, a function definition or call, or a return. ParseInst turns one
// preprocessed line into an Inst, and every Inst renders back to its
// canonical text with String().
//
// The Reader handles whole source files: it strips comments, normalizes
// whitespace, evaluates $(...) compile-time expressions, and parses the lines
// into a Program.
package vm
