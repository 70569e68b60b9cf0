package vm

// Op is a zero-operand stack operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD = Op(0) // add
	OP_SUB = Op(1) // sub
	OP_NEG = Op(2) // neg
	OP_EQ  = Op(3) // eq
	OP_GT  = Op(4) // gt
	OP_LT  = Op(5) // lt
	OP_AND = Op(6) // and
	OP_OR  = Op(7) // or
	OP_NOT = Op(8) // not
)

// opList is the keyword match order for arithmetic instructions.
var opList = []Op{
	OP_ADD,
	OP_SUB,
	OP_NEG,
	OP_EQ,
	OP_GT,
	OP_LT,
	OP_AND,
	OP_OR,
	OP_NOT,
}

// Arity returns the number of stack values consumed by the operation.
func (op Op) Arity() int {
	switch op {
	case OP_NEG, OP_NOT:
		return 1
	default:
		return 2
	}
}
