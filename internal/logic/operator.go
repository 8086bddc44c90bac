package logic

// Operator tags a node in an expression tree. The set is closed: a new
// connective is a new case here, never a new node type.
type Operator int

const (
	OpAtom Operator = iota
	OpNot
	OpAnd
	OpOr
	OpConditional
	OpBiconditional
)

func (op Operator) String() string {
	switch op {
	case OpAtom:
		return "atom"
	case OpNot:
		return "¬"
	case OpAnd:
		return "∧"
	case OpOr:
		return "∨"
	case OpConditional:
		return "→"
	case OpBiconditional:
		return "↔"
	default:
		return "?"
	}
}

// Variadic reports whether the operator accepts more than its minimum
// number of operands. AND and OR may appear as flattened n-ary nodes.
func (op Operator) Variadic() bool {
	return op == OpAnd || op == OpOr
}

// MinArity returns the smallest operand count a node with this operator
// may carry. Fixed-arity operators require exactly this many.
func (op Operator) MinArity() int {
	switch op {
	case OpAtom:
		return 0
	case OpNot:
		return 1
	default:
		return 2
	}
}

// Precedence orders operators for rendering; higher binds tighter.
func (op Operator) Precedence() int {
	switch op {
	case OpAtom:
		return 5
	case OpNot:
		return 4
	case OpAnd:
		return 3
	case OpOr:
		return 2
	case OpConditional:
		return 1
	case OpBiconditional:
		return 0
	default:
		return -1
	}
}
