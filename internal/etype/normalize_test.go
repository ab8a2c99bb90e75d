package etype

import (
	"testing"

	"github.com/contractshard/shardc/internal/contrib"
)

func singleVal(src contrib.Source, card contrib.Cardinality, ops ...contrib.Operator) ExpressionType {
	return Val(contrib.Known{
		Precision:     contrib.Exactly,
		Contributions: contrib.Single(src, contrib.Summary{Cardinality: card, Ops: contrib.NewOperatorSet(ops...)}),
	})
}

// TestNormalFormStability checks invariant 1: normalizing a normalized
// expression-type is a no-op.
func TestNormalFormStability(t *testing.T) {
	lit := contrib.ConstantLiteral("1")
	counter := contrib.FromPseudofield(contrib.Pseudofield{Field: "counter"})
	add := contrib.BuiltinOp("add")

	seq := ComposeSequence([]ExpressionType{
		singleVal(counter, contrib.Linear),
		singleVal(lit, contrib.Linear),
	})
	first := Normalize(seq)
	second := Normalize(first)
	if !equalET(first, second) {
		t.Errorf("normalize not idempotent:\nfirst=%+v\nsecond=%+v", first, second)
	}

	opNode := Op(add, singleVal(counter, contrib.Linear))
	firstOp := Normalize(opNode)
	if !equalET(firstOp, Normalize(firstOp)) {
		t.Errorf("normalize(Op) not idempotent")
	}
}

// TestUnknownPropagation checks invariant 2: Unknown anywhere inside a
// composite node makes the normalized whole Unknown.
func TestUnknownPropagation(t *testing.T) {
	lit := contrib.ConstantLiteral("1")
	seq := ComposeSequence([]ExpressionType{
		singleVal(lit, contrib.Linear),
		Unknown(),
	})
	got := Normalize(seq)
	if got.Kind != KindUnknown {
		t.Errorf("expected Unknown, got %v", got.Kind)
	}

	par := ComposeParallel(singleVal(lit, contrib.Linear), []ExpressionType{
		Unknown(),
		singleVal(lit, contrib.Linear),
	})
	gotPar := Normalize(par)
	if gotPar.Kind != KindUnknown {
		t.Errorf("expected Unknown from parallel composition, got %v", gotPar.Kind)
	}
}

// TestOperatorSetGrowth checks invariant 4: normalization never removes a
// non-Conditional operator from a contribution's op-set.
func TestOperatorSetGrowth(t *testing.T) {
	counter := contrib.FromPseudofield(contrib.Pseudofield{Field: "counter"})
	add := contrib.BuiltinOp("add")
	before := singleVal(counter, contrib.Linear, add)
	opNode := Op(contrib.BuiltinOp("sub"), before)
	after := Normalize(opNode)
	if after.Kind != KindVal {
		t.Fatalf("expected Val, got %v", after.Kind)
	}
	sum, ok := after.Val.Contributions.Get(counter)
	if !ok {
		t.Fatal("expected counter source present")
	}
	if !sum.Ops.Has(add) {
		t.Errorf("lifting a new op must not drop the existing op, got %v", sum.Ops.Sorted())
	}
	if !sum.Ops.Has(contrib.BuiltinOp("sub")) {
		t.Errorf("expected newly lifted op present, got %v", sum.Ops.Sorted())
	}
}

// TestSpuriousConditionalPreservation checks invariant 5: a PCM-spurious
// match's expression-type equals its non-unit branch's expression-type,
// modulo normalization (here: AddConditional with a nothing condition
// leaves the body's own precision and contributions, i.e. it is the
// identity for the spurious case).
func TestSpuriousConditionalPreservation(t *testing.T) {
	counter := contrib.FromPseudofield(contrib.Pseudofield{Field: "counter"})
	body := singleVal(counter, contrib.Linear, contrib.BuiltinOp("add"))

	par := ComposeParallel(Nothing(), []ExpressionType{body})
	got := Normalize(par)
	want := Normalize(body)
	if !equalET(got, want) {
		t.Errorf("spurious conditional not preserved:\ngot=%+v\nwant=%+v", got, want)
	}
}

func equalET(a, b ExpressionType) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindUnknown:
		return true
	case KindVal:
		return equalKnown(a.Val, b.Val)
	case KindCompositeVal:
		return equalET(*a.Full, *b.Full) && equalET(*a.Special, *b.Special)
	case KindOp:
		return a.Op == b.Op && equalET(*a.OpOperand, *b.OpOperand)
	case KindComposeSequence:
		if len(a.Elements) != len(b.Elements) {
			return false
		}
		for i := range a.Elements {
			if !equalET(a.Elements[i], b.Elements[i]) {
				return false
			}
		}
		return true
	case KindComposeParallel:
		if !equalET(*a.Cond, *b.Cond) || len(a.Clauses) != len(b.Clauses) {
			return false
		}
		for i := range a.Clauses {
			if !equalET(a.Clauses[i], b.Clauses[i]) {
				return false
			}
		}
		return true
	case KindFun:
		return true
	case KindApp:
		return true
	default:
		return false
	}
}

func equalKnown(a, b contrib.Known) bool {
	if a.Precision != b.Precision || a.Contributions.Len() != b.Contributions.Len() {
		return false
	}
	for _, src := range a.Contributions.Sources() {
		sa, _ := a.Contributions.Get(src)
		sb, ok := b.Contributions.Get(src)
		if !ok || sa.Cardinality != sb.Cardinality || sa.Ops.Len() != sb.Ops.Len() {
			return false
		}
		for _, op := range sa.Ops.Sorted() {
			if !sb.Ops.Has(op) {
				return false
			}
		}
	}
	return true
}
