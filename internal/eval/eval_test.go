package eval

import (
	"testing"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/etype"
	"github.com/contractshard/shardc/internal/pcm"
)

func TestEvalLiteral(t *testing.T) {
	ev := New(pcm.Default())
	et, err := ev.Eval(env.New(), 0, cast.Expr{Kind: cast.ExprLiteral, Literal: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if et.Kind != etype.KindVal {
		t.Fatalf("expected Val, got %v", et.Kind)
	}
	if !et.Val.Contributions.Contains(contrib.ConstantLiteral("1")) {
		t.Errorf("expected literal source present")
	}
}

func TestEvalVarUnbound(t *testing.T) {
	ev := New(pcm.Default())
	_, err := ev.Eval(env.New(), 0, cast.Expr{Kind: cast.ExprVar, Name: "x"})
	if err == nil {
		t.Fatal("expected unbound identifier error")
	}
}

func TestEvalBuiltinLiftsOp(t *testing.T) {
	ev := New(pcm.Default())
	e := cast.Expr{
		Kind:    cast.ExprBuiltin,
		Builtin: "add",
		Args: []cast.Expr{
			{Kind: cast.ExprLiteral, Literal: "1"},
			{Kind: cast.ExprLiteral, Literal: "2"},
		},
	}
	et, err := ev.Eval(env.New(), 0, e)
	if err != nil {
		t.Fatal(err)
	}
	norm := etype.Normalize(et)
	if norm.Kind != etype.KindVal {
		t.Fatalf("expected normalized Val, got %v", norm.Kind)
	}
	sum, ok := norm.Val.Contributions.Get(contrib.ConstantLiteral("1"))
	if !ok || !sum.Ops.Has(contrib.BuiltinOp("add")) {
		t.Errorf("expected add op lifted onto literal source")
	}
}

func TestEvalFunAppBetaReduces(t *testing.T) {
	ev := New(pcm.Default())
	// fun (x : Int32) => builtin add x x
	fn := cast.Expr{
		Kind:      cast.ExprFun,
		Param:     "x",
		ParamType: &cast.Type{Name: "Int32"},
		Sub1: &cast.Expr{
			Kind:    cast.ExprBuiltin,
			Builtin: "add",
			Args: []cast.Expr{
				{Kind: cast.ExprVar, Name: "x"},
				{Kind: cast.ExprVar, Name: "x"},
			},
		},
	}
	app := cast.Expr{
		Kind: cast.ExprApp,
		Sub1: &fn,
		Args: []cast.Expr{{Kind: cast.ExprLiteral, Literal: "3"}},
	}
	et, err := ev.Eval(env.New(), 0, app)
	if err != nil {
		t.Fatal(err)
	}
	got := etype.Normalize(et)
	if got.Kind != etype.KindVal {
		t.Fatalf("expected application to beta-reduce to Val, got %v", got.Kind)
	}
	if !got.Val.Contributions.Contains(contrib.ConstantLiteral("3")) {
		t.Errorf("expected argument literal present after reduction, got %+v", got.Val.Contributions.Sources())
	}
}

func TestEvalMessageAmountZeroIsNothing(t *testing.T) {
	ev := New(pcm.Default())
	msg := cast.Expr{
		Kind: cast.ExprMessage,
		MessageFields: []cast.MessageField{
			{Label: cast.LabelAmount, Value: cast.Expr{Kind: cast.ExprLiteral, Literal: "0"}},
			{Label: cast.LabelRecipient, Value: cast.Expr{Kind: cast.ExprVar, Name: "to"}},
		},
	}
	e := env.New().BindVal("to", etype.Nothing())
	et, err := ev.Eval(e, 0, msg)
	if err != nil {
		t.Fatal(err)
	}
	if et.Kind != etype.KindCompositeVal {
		t.Fatalf("expected CompositeVal, got %v", et.Kind)
	}
	if n := etype.Normalize(*et.Special); n.Kind != etype.KindVal || !n.Val.IsNothing() {
		t.Errorf("expected zero-amount special part to normalize to nothing, got %+v", n)
	}
}

func TestEvalFixpointErrors(t *testing.T) {
	ev := New(pcm.Default())
	_, err := ev.Eval(env.New(), 0, cast.Expr{Kind: cast.ExprFixpoint})
	if err == nil {
		t.Fatal("expected fixpoint to be a fatal error")
	}
}
