package etype

import "github.com/contractshard/shardc/internal/contrib"

// liftOp implements `Op(op, Val(ps, c))` → `Val(ps, c′)`: op is added to
// every source's op-set.
func liftOp(op contrib.Operator, k contrib.Known) contrib.Known {
	return contrib.Known{
		Precision: k.Precision,
		Contributions: k.Contributions.Map(func(s contrib.Summary) contrib.Summary {
			return contrib.Summary{Cardinality: s.Cardinality, Ops: s.Ops.Add(op)}
		}),
	}
}

// foldSequence folds a non-empty list of Known values with sequential
// composition, left to right.
func foldSequence(vals []contrib.Known) contrib.Known {
	acc := vals[0]
	for _, v := range vals[1:] {
		acc = contrib.ComposeSeq(acc, v)
	}
	return acc
}

// foldParallel folds a non-empty list of Known clause values with parallel
// composition, starting from the first clause rather than the nothing
// identity, to avoid precision loss, then wraps the result
// with add_conditional(cond, …).
func foldParallel(cond contrib.Known, vals []contrib.Known) contrib.Known {
	acc := vals[0]
	for _, v := range vals[1:] {
		acc = contrib.ComposePar(acc, v)
	}
	return contrib.AddConditional(cond, acc)
}
