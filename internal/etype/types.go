// Package etype implements the expression-type normalizer:
// the abstract domain symbolic evaluation computes over, and the rewrite
// rules that reduce a raw expression-type to canonical form.
package etype

import "github.com/contractshard/shardc/internal/contrib"

// Kind discriminates the variants of ExpressionType. Go has no sum types,
// so ExpressionType carries a Kind tag plus only the fields that variant
// uses; see each field's comment for which Kind(s) populate it.
type Kind int

const (
	// KindUnknown is the top element: analysis gave up on this subterm.
	KindUnknown Kind = iota
	// KindVal is a primitive/data value: known contributions.
	KindVal
	// KindCompositeVal pairs a full-payload analysis with a restricted
	// special-slot analysis (message values only).
	KindCompositeVal
	// KindOp is an unapplied operator waiting to be lifted into a Val.
	KindOp
	// KindComposeSequence is an unreduced sequential composition.
	KindComposeSequence
	// KindComposeParallel is an unreduced conditional/parallel composition.
	KindComposeParallel
	// KindFun is a function descriptor.
	KindFun
	// KindApp is an unreduced application.
	KindApp
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindVal:
		return "val"
	case KindCompositeVal:
		return "composite-val"
	case KindOp:
		return "op"
	case KindComposeSequence:
		return "compose-sequence"
	case KindComposeParallel:
		return "compose-parallel"
	case KindFun:
		return "fun"
	case KindApp:
		return "app"
	default:
		return "invalid"
	}
}

// ExpressionType is the abstract value the normalizer and evaluator
// operate over.
type ExpressionType struct {
	Kind Kind

	// KindVal: the known contributions this value carries.
	Val contrib.Known

	// KindCompositeVal: full payload and the restricted special-slot view.
	// Both non-nil.
	Full    *ExpressionType
	Special *ExpressionType

	// KindOp: the operator to lift, and the operand it applies to.
	Op        contrib.Operator
	OpOperand *ExpressionType

	// KindComposeSequence: the ordered elements to fold.
	Elements []ExpressionType

	// KindComposeParallel: the guarding condition and the clause bodies.
	Cond    *ExpressionType
	Clauses []ExpressionType

	// KindFun: the de Bruijn levels this descriptor binds (always a
	// singleton in this system; curried functions nest descriptors) and
	// its definition.
	Levels []int
	Def    FunDef

	// KindApp: the applied function and its arguments, in order.
	Callee *ExpressionType
	Args   []ExpressionType
}

// FunDef is a function's definition: either an inlined body expression-type
// or an opaque marker (FormalParameter(k) / ProcParameter(i)) meaning the
// function value is itself a parameter of some outer lambda/procedure.
type FunDef struct {
	// Inline is non-nil when the body is known.
	Inline *ExpressionType
	// Opaque is set when the function is an outer parameter; its Kind is
	// always SrcFormalParameter or SrcProcParameter.
	Opaque  contrib.Source
	IsOpaque bool
}

// InlineDef builds a FunDef wrapping a known body.
func InlineDef(body ExpressionType) FunDef {
	return FunDef{Inline: &body}
}

// OpaqueDef builds a FunDef for a function that is itself a parameter.
func OpaqueDef(src contrib.Source) FunDef {
	return FunDef{Opaque: src, IsOpaque: true}
}

// Unknown constructs the Unknown expression-type.
func Unknown() ExpressionType {
	return ExpressionType{Kind: KindUnknown}
}

// Val constructs a Val expression-type from a Known contribution.
func Val(k contrib.Known) ExpressionType {
	return ExpressionType{Kind: KindVal, Val: k}
}

// Nothing is the designated nothing value: Val(Exactly, {}).
func Nothing() ExpressionType {
	return Val(contrib.Nothing())
}

// CompositeVal constructs a CompositeVal expression-type.
func CompositeVal(full, special ExpressionType) ExpressionType {
	return ExpressionType{Kind: KindCompositeVal, Full: &full, Special: &special}
}

// Op constructs an unreduced Op node.
func Op(op contrib.Operator, operand ExpressionType) ExpressionType {
	return ExpressionType{Kind: KindOp, Op: op, OpOperand: &operand}
}

// ComposeSequence constructs an unreduced sequential composition.
func ComposeSequence(elems []ExpressionType) ExpressionType {
	return ExpressionType{Kind: KindComposeSequence, Elements: elems}
}

// ComposeParallel constructs an unreduced conditional/parallel composition.
func ComposeParallel(cond ExpressionType, clauses []ExpressionType) ExpressionType {
	return ExpressionType{Kind: KindComposeParallel, Cond: &cond, Clauses: clauses}
}

// Fun constructs a function descriptor.
func Fun(levels []int, def FunDef) ExpressionType {
	return ExpressionType{Kind: KindFun, Levels: levels, Def: def}
}

// App constructs an unreduced application.
func App(callee ExpressionType, args []ExpressionType) ExpressionType {
	return ExpressionType{Kind: KindApp, Callee: &callee, Args: args}
}
