package contrib

import "testing"

func lit(l string) Source { return ConstantLiteral(l) }

func single(src Source, card Cardinality, ops ...Operator) Known {
	return Known{Precision: Exactly, Contributions: Single(src, Summary{Cardinality: card, Ops: NewOperatorSet(ops...)})}
}

func TestComposeSeqUnrelatedSourcesKeptSeparate(t *testing.T) {
	a := single(lit("1"), Linear)
	b := single(lit("2"), Linear)
	out := ComposeSeq(a, b)
	if out.Contributions.Len() != 2 {
		t.Fatalf("expected 2 sources, got %d", out.Contributions.Len())
	}
}

func TestComposeSeqSameSourceBecomesNonLinear(t *testing.T) {
	x := ContractParameter("x")
	a := single(x, Linear)
	b := single(x, Linear)
	out := ComposeSeq(a, b)
	sum, ok := out.Contributions.Get(x)
	if !ok {
		t.Fatal("expected source x present")
	}
	if sum.Cardinality != NonLinear {
		t.Errorf("sequential self-composition should be NonLinear, got %v", sum.Cardinality)
	}
}

func TestAddConditionalSpuriousPreservesPrecision(t *testing.T) {
	body := single(lit("1"), Linear)
	out := AddConditional(Nothing(), body)
	if out.Precision != Exactly {
		t.Errorf("spurious conditional (nothing condition) must preserve precision, got %v", out.Precision)
	}
}

func TestAddConditionalNonSpuriousFloorsSubsetOf(t *testing.T) {
	cond := single(ContractParameter("threshold"), Linear)
	body := single(lit("1"), Linear)
	out := AddConditional(cond, body)
	if out.Precision != SubsetOf {
		t.Errorf("non-spurious conditional must floor to SubsetOf, got %v", out.Precision)
	}
	// condition-only source must appear in body with (None, {Conditional}).
	sum, ok := out.Contributions.Get(ContractParameter("threshold"))
	if !ok {
		t.Fatal("expected condition source added to body")
	}
	if sum.Cardinality != None || !sum.Ops.HasConditional() {
		t.Errorf("condition-only source should be (None, {Conditional}), got (%v, %v)", sum.Cardinality, sum.Ops.Sorted())
	}
}

func TestAddConditionalSharedSourceUnionsConditional(t *testing.T) {
	shared := ContractParameter("x")
	cond := single(shared, Linear)
	body := single(shared, Linear, BuiltinOp("add"))
	out := AddConditional(cond, body)
	sum, _ := out.Contributions.Get(shared)
	if !sum.Ops.HasConditional() || !sum.Ops.Has(BuiltinOp("add")) {
		t.Errorf("shared source must union in Conditional while keeping existing ops, got %v", sum.Ops.Sorted())
	}
}

func TestProductCombineNoneRestrictsOps(t *testing.T) {
	s := ProductCombine(
		Summary{Cardinality: None, Ops: NewOperatorSet(BuiltinOp("add"))},
		Summary{Cardinality: Linear, Ops: NewOperatorSet(ConditionalOp())},
	)
	if s.Cardinality != None {
		t.Fatalf("expected None cardinality, got %v", s.Cardinality)
	}
	if s.Ops.Has(BuiltinOp("add")) {
		t.Errorf("None-cardinality product must drop non-Conditional ops, got %v", s.Ops.Sorted())
	}
	if !s.Ops.HasConditional() {
		t.Errorf("None-cardinality product should retain Conditional if present")
	}
}
