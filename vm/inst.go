package vm

import (
	"fmt"
)

// Index is a segment offset, local variable count, or argument count.
type Index = uint16

// Inst is a single VM instruction. The set of implementations is closed.
type Inst interface {
	fmt.Stringer
	inst()
}

// Arith applies a stack arithmetic or logical operation.
type Arith struct {
	Op Op
}

// Pop pops the top of the stack into Segment[Index].
type Pop struct {
	Segment Segment
	Index   Index
}

// Push pushes Segment[Index] onto the stack.
type Push struct {
	Segment Segment
	Index   Index
}

// DefLabel declares a branch target.
type DefLabel struct {
	Label string
}

// Goto jumps unconditionally to Label.
type Goto struct {
	Label string
}

// IfGoto pops the stack and jumps to Label if the value is non-zero.
type IfGoto struct {
	Label string
}

// DefFun starts function Name with NVars local variables.
type DefFun struct {
	Name  string
	NVars Index
}

// Call calls function Name with NArgs arguments already pushed.
type Call struct {
	Name  string
	NArgs Index
}

// Return returns from the current function.
type Return struct{}

func (Arith) inst()    {}
func (Pop) inst()      {}
func (Push) inst()     {}
func (DefLabel) inst() {}
func (Goto) inst()     {}
func (IfGoto) inst()   {}
func (DefFun) inst()   {}
func (Call) inst()     {}
func (Return) inst()   {}

func (in Arith) String() string {
	return in.Op.String()
}

func (in Pop) String() string {
	return fmt.Sprintf("pop %v %d", in.Segment, in.Index)
}

func (in Push) String() string {
	return fmt.Sprintf("push %v %d", in.Segment, in.Index)
}

func (in DefLabel) String() string {
	return "label " + in.Label
}

func (in Goto) String() string {
	return "goto " + in.Label
}

func (in IfGoto) String() string {
	return "if-goto " + in.Label
}

func (in DefFun) String() string {
	return fmt.Sprintf("function %v %d", in.Name, in.NVars)
}

func (in Call) String() string {
	return fmt.Sprintf("call %v %d", in.Name, in.NArgs)
}

func (Return) String() string {
	return "return"
}
