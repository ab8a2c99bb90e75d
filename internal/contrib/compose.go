package contrib

// ComposeSeq implements et_compose's sequential form: pointwise union of
// two Known Contributions using combine_seq for sources present in both,
// with resulting precision min_precision(a,b).
func ComposeSeq(a, b Known) Known {
	return compose(a, b, SeqCombine)
}

// ComposePar implements et_compose's parallel form, using combine_par.
func ComposePar(a, b Known) Known {
	return compose(a, b, ParCombine)
}

func compose(a, b Known, combine func(Summary, Summary) Summary) Known {
	return Known{
		Precision:     MinPrecision(a.Precision, b.Precision),
		Contributions: a.Contributions.Union(b.Contributions, combine),
	}
}

// AddConditional implements add_conditional(cond, body): marks body's
// contributions with the Conditional operator, conditioned on cond's
// sources.
//
//   - a source appearing only in cond is added to body with (None, {Conditional});
//   - a source appearing in both gets Conditional unioned into its op-set;
//   - the precision floor is SubsetOf, unless cond is the nothing value, in
//     which case the conditional is spurious and body's own precision is
//     preserved unchanged.
func AddConditional(cond, body Known) Known {
	out := body.Contributions
	for _, src := range cond.Contributions.Sources() {
		if out.Contains(src) {
			existing, _ := out.Get(src)
			out = out.With(src, Summary{
				Cardinality: existing.Cardinality,
				Ops:         existing.Ops.Add(ConditionalOp()),
			})
			continue
		}
		out = out.With(src, Summary{Cardinality: None, Ops: NewOperatorSet(ConditionalOp())})
	}

	if cond.IsNothing() {
		return Known{Precision: body.Precision, Contributions: out}
	}
	return Known{Precision: SubsetOf, Contributions: out}
}
