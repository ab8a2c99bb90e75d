package contrib

import "sort"

// Operator is a member of a Contribution Summary's operator set: either a
// named builtin applied along the flow path, or the Conditional marker left
// by add_conditional lifting.
type Operator struct {
	IsConditional bool
	Builtin       string // set iff !IsConditional
}

func BuiltinOp(name string) Operator { return Operator{Builtin: name} }
func ConditionalOp() Operator        { return Operator{IsConditional: true} }

// String renders the operator for diagnostics and canonical output.
func (o Operator) String() string {
	if o.IsConditional {
		return "conditional"
	}
	return o.Builtin
}

func (o Operator) key() string {
	if o.IsConditional {
		return "\x00conditional"
	}
	return "b:" + o.Builtin
}

// OperatorSet is a set of Operators, represented canonically for
// deterministic iteration/output (DESIGN NOTES "Ordered determinism").
type OperatorSet struct {
	m map[string]Operator
}

// NewOperatorSet builds a set from the given operators.
func NewOperatorSet(ops ...Operator) OperatorSet {
	s := OperatorSet{m: make(map[string]Operator, len(ops))}
	for _, o := range ops {
		s.m[o.key()] = o
	}
	return s
}

// Add returns a new set with o added.
func (s OperatorSet) Add(o Operator) OperatorSet {
	out := NewOperatorSet(s.Sorted()...)
	out.m[o.key()] = o
	return out
}

// Union returns the union of two operator sets.
func (s OperatorSet) Union(o OperatorSet) OperatorSet {
	out := NewOperatorSet(s.Sorted()...)
	for k, v := range o.m {
		out.m[k] = v
	}
	return out
}

// Has reports whether o is a member.
func (s OperatorSet) Has(o Operator) bool {
	_, ok := s.m[o.key()]
	return ok
}

// HasConditional reports whether the Conditional marker is present.
func (s OperatorSet) HasConditional() bool {
	return s.Has(ConditionalOp())
}

// Len returns the number of operators.
func (s OperatorSet) Len() int { return len(s.m) }

// Sorted returns the operators in a deterministic order: Conditional
// sorts first due to the NUL-prefixed key chosen in key(); builtins are
// alphabetical. Callers needing a specific order should not depend on this
// beyond "deterministic".
func (s OperatorSet) Sorted() []Operator {
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Operator, len(keys))
	for i, k := range keys {
		out[i] = s.m[k]
	}
	return out
}

// Summary is a Contribution Summary: a cardinality paired with an operator
// set.
type Summary struct {
	Cardinality Cardinality
	Ops         OperatorSet
}

// SeqCombine implements combine_seq over two summaries.
func SeqCombine(a, b Summary) Summary {
	return Summary{Cardinality: SumSeq(a.Cardinality, b.Cardinality), Ops: a.Ops.Union(b.Ops)}
}

// ParCombine implements combine_par over two summaries.
func ParCombine(a, b Summary) Summary {
	return Summary{Cardinality: Max(a.Cardinality, b.Cardinality), Ops: a.Ops.Union(b.Ops)}
}

// ProductCombine implements combine_product: if the resulting cardinality
// is None, the operator set is restricted to at most {Conditional} — an
// operator on a non-contribution carries no information.
func ProductCombine(a, b Summary) Summary {
	card := Product(a.Cardinality, b.Cardinality)
	ops := a.Ops.Union(b.Ops)
	if card == None {
		if ops.HasConditional() {
			ops = NewOperatorSet(ConditionalOp())
		} else {
			ops = NewOperatorSet()
		}
	}
	return Summary{Cardinality: card, Ops: ops}
}
