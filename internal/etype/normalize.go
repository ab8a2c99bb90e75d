package etype

import "github.com/contractshard/shardc/internal/contrib"

// funParamSource returns the Source identifying a Fun descriptor's own
// formal parameter — always the first (and only) de Bruijn level this
// system's lambdas bind.
func funParamSource(levels []int) contrib.Source {
	return contrib.FormalParameter(levels[0])
}

// Normalize rewrites et to canonical form by distributing operators into
// contributions, collapsing compositions of values, and beta-reducing
// fully-known applications, applied bottom-up to a fixpoint.
func Normalize(et ExpressionType) ExpressionType {
	switch et.Kind {
	case KindUnknown, KindVal:
		return et

	case KindCompositeVal:
		return CompositeVal(Normalize(*et.Full), Normalize(*et.Special))

	case KindOp:
		operand := Normalize(*et.OpOperand)
		if operand.Kind == KindVal {
			return Val(liftOp(et.Op, operand.Val))
		}
		if IsUnknown(operand) {
			return Unknown()
		}
		return Op(et.Op, operand)

	case KindComposeSequence:
		return normalizeSequence(et.Elements)

	case KindComposeParallel:
		return normalizeParallel(*et.Cond, et.Clauses)

	case KindFun:
		if et.Def.IsOpaque {
			return et
		}
		return Fun(et.Levels, InlineDef(Normalize(*et.Def.Inline)))

	case KindApp:
		return normalizeApp(*et.Callee, et.Args)

	default:
		return et
	}
}

func normalizeSequence(elements []ExpressionType) ExpressionType {
	elems := make([]ExpressionType, len(elements))
	allVal := true
	for i, e := range elements {
		elems[i] = Normalize(e)
		if elems[i].Kind != KindVal {
			allVal = false
		}
	}
	if len(elems) == 0 {
		return Nothing()
	}
	if allVal {
		vals := make([]contrib.Known, len(elems))
		for i, e := range elems {
			vals[i] = e.Val
		}
		return Val(foldSequence(vals))
	}
	for _, e := range elems {
		if IsUnknown(e) {
			return Unknown()
		}
	}
	return ComposeSequence(elems)
}

func normalizeParallel(cond ExpressionType, clauses []ExpressionType) ExpressionType {
	cond = Normalize(cond)
	clauseVals := make([]ExpressionType, len(clauses))
	allVal := cond.Kind == KindVal
	for i, c := range clauses {
		clauseVals[i] = Normalize(c)
		if clauseVals[i].Kind != KindVal {
			allVal = false
		}
	}
	if allVal && len(clauseVals) > 0 {
		vals := make([]contrib.Known, len(clauseVals))
		for i, c := range clauseVals {
			vals[i] = c.Val
		}
		return Val(foldParallel(cond.Val, vals))
	}
	if IsUnknown(cond) {
		return Unknown()
	}
	for _, c := range clauseVals {
		if IsUnknown(c) {
			return Unknown()
		}
	}
	return ComposeParallel(cond, clauseVals)
}

// normalizeApp beta-reduces App(Fun(levels, Expr(body)), args) by applying
// arguments one at a time, left to right, re-normalizing after each
// substitution; curried functions nest so each application may yield a
// further Fun layer consuming the next argument.
func normalizeApp(callee ExpressionType, rawArgs []ExpressionType) ExpressionType {
	callee = Normalize(callee)
	args := make([]ExpressionType, len(rawArgs))
	for i, a := range rawArgs {
		args[i] = Normalize(a)
	}
	if IsUnknown(callee) {
		return Unknown()
	}
	for _, a := range args {
		if IsUnknown(a) {
			return Unknown()
		}
	}

	cur := callee
	for i, arg := range args {
		if cur.Kind != KindFun || cur.Def.IsOpaque {
			return App(cur, args[i:])
		}
		param := funParamSource(cur.Levels)
		substituted := SubstituteArgument(*cur.Def.Inline, param, arg)
		cur = Normalize(substituted)
	}
	return cur
}
