package etype

import "github.com/contractshard/shardc/internal/contrib"

// SubstituteArgument replaces the parameter marker target (a
// FormalParameter(k) or ProcParameter(i) source) inside et with arg,
// capture-avoiding.
func SubstituteArgument(et ExpressionType, target contrib.Source, arg ExpressionType) ExpressionType {
	switch et.Kind {
	case KindUnknown:
		return et

	case KindVal:
		return substituteVal(et.Val, target, arg)

	case KindCompositeVal:
		if arg.Kind == KindCompositeVal {
			return CompositeVal(
				SubstituteArgument(*et.Full, target, *arg.Full),
				SubstituteArgument(*et.Special, target, *arg.Special),
			)
		}
		return CompositeVal(
			SubstituteArgument(*et.Full, target, arg),
			SubstituteArgument(*et.Special, target, arg),
		)

	case KindOp:
		return Op(et.Op, SubstituteArgument(*et.OpOperand, target, arg))

	case KindComposeSequence:
		elems := make([]ExpressionType, len(et.Elements))
		for i, e := range et.Elements {
			elems[i] = SubstituteArgument(e, target, arg)
		}
		return ComposeSequence(elems)

	case KindComposeParallel:
		cond := SubstituteArgument(*et.Cond, target, arg)
		clauses := make([]ExpressionType, len(et.Clauses))
		for i, c := range et.Clauses {
			clauses[i] = SubstituteArgument(c, target, arg)
		}
		return ComposeParallel(cond, clauses)

	case KindFun:
		if et.Def.IsOpaque {
			if et.Def.Opaque.Key() == target.Key() && arg.Kind == KindFun {
				return arg
			}
			return et
		}
		if funParamSource(et.Levels).Key() == target.Key() {
			// The lambda's own parameter is the one being substituted: this
			// Fun node is the one being applied, so its body is the result.
			return *et.Def.Inline
		}
		return Fun(et.Levels, InlineDef(SubstituteArgument(*et.Def.Inline, target, arg)))

	case KindApp:
		callee := *et.Callee
		if callee.Kind == KindFun && callee.Def.IsOpaque &&
			callee.Def.Opaque.Key() == target.Key() && arg.Kind == KindFun {
			callee = arg
		} else {
			callee = SubstituteArgument(callee, target, arg)
		}
		args := make([]ExpressionType, len(et.Args))
		for i, a := range et.Args {
			args[i] = SubstituteArgument(a, target, arg)
		}
		return App(callee, args)

	default:
		return et
	}
}

// substituteVal implements the Val case: if target is among et's sources,
// every other source's summary is product-combined with target's summary
// (modelling the symbolic substitution into a multiplicatively-combined
// position), and the argument's own contributions are sequentially unioned
// in afterward.
func substituteVal(k contrib.Known, target contrib.Source, arg ExpressionType) ExpressionType {
	targetSummary, present := k.Contributions.Get(target)
	if !present {
		return Val(k)
	}

	rest := k.Contributions.Filter(func(s contrib.Source) bool {
		return s.Key() != target.Key()
	})
	combined := rest.Map(func(s contrib.Summary) contrib.Summary {
		return contrib.Summary{
			Cardinality: contrib.Product(s.Cardinality, targetSummary.Cardinality),
			Ops:         s.Ops.Union(targetSummary.Ops),
		}
	})
	result := contrib.Known{Precision: k.Precision, Contributions: combined}

	if arg.Kind == KindVal {
		return Val(contrib.ComposeSeq(result, arg.Val))
	}
	if IsUnknown(arg) {
		return Unknown()
	}
	return Val(result)
}
