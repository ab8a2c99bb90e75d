package pcm

import (
	"testing"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/etype"
)

func TestIntegerAddIsApplicableType(t *testing.T) {
	p := IntegerAdd{}
	if !p.IsApplicableType(cast.Type{Name: "Int32"}) {
		t.Error("expected Int32 applicable")
	}
	if !p.IsApplicableType(cast.Type{Name: "Uint128"}) {
		t.Error("expected Uint128 applicable")
	}
	if p.IsApplicableType(cast.Type{Name: "ByStr20"}) {
		t.Error("expected ByStr20 not applicable")
	}
}

func TestIntegerAddUnitLiteral(t *testing.T) {
	p := IntegerAdd{}
	if !p.IsUnitLiteral(cast.Expr{Kind: cast.ExprLiteral, Literal: "0"}) {
		t.Error("expected 0 to be unit")
	}
	if p.IsUnitLiteral(cast.Expr{Kind: cast.ExprLiteral, Literal: "1"}) {
		t.Error("expected 1 to not be unit")
	}
}

func TestIntegerAddIsOpExpr(t *testing.T) {
	p := IntegerAdd{}
	e := cast.Expr{
		Kind:    cast.ExprBuiltin,
		Builtin: "add",
		Args: []cast.Expr{
			{Kind: cast.ExprVar, Name: "x"},
			{Kind: cast.ExprVar, Name: "d"},
		},
	}
	if !p.IsOpExpr(e, "x", "d") {
		t.Error("expected add(x,d) to match IsOpExpr(x,d)")
	}
	if !p.IsOpExpr(e, "d", "x") {
		t.Error("expected operand order to be irrelevant")
	}
}

func TestIntegerAddSpuriousConditionalExprOpForm(t *testing.T) {
	p := IntegerAdd{}
	clauses := []cast.ExprClause{
		{
			Pattern: cast.Pattern{Constructor: cast.CtorSome, Binders: []string{"x"}},
			Body: cast.Expr{
				Kind: cast.ExprBuiltin, Builtin: "add",
				Args: []cast.Expr{{Kind: cast.ExprVar, Name: "x"}, {Kind: cast.ExprVar, Name: "d"}},
			},
		},
		{
			Pattern: cast.Pattern{Constructor: cast.CtorNone},
			Body:    cast.Expr{Kind: cast.ExprVar, Name: "d"},
		},
	}
	scrutinee := cast.Expr{Kind: cast.ExprVar, Name: "opt"}
	if !p.IsSpuriousConditionalExpr(scrutinee, clauses) {
		t.Error("expected PCM-op form to be recognized as spurious")
	}
}

func TestIntegerAddSpuriousConditionalStmt(t *testing.T) {
	p := IntegerAdd{}
	pf := contrib.FromPseudofield(contrib.Pseudofield{Field: "counts", Keys: []string{"k"}})
	scrutineeVal := etype.Val(contrib.Known{
		Precision:     contrib.Exactly,
		Contributions: contrib.Single(pf, contrib.Summary{Cardinality: contrib.Linear, Ops: contrib.NewOperatorSet()}),
	})
	clauses := []cast.StmtClause{
		{
			Pattern: cast.Pattern{Constructor: cast.CtorSome, Binders: []string{"x"}},
			Body: []cast.Stmt{
				{
					Kind:   cast.StmtBind,
					Binder: "y",
					Value: &cast.Expr{
						Kind: cast.ExprBuiltin, Builtin: "add",
						Args: []cast.Expr{{Kind: cast.ExprVar, Name: "x"}, {Kind: cast.ExprVar, Name: "d"}},
					},
				},
				{
					Kind:  cast.StmtMapUpdate,
					Field: "counts",
					Keys:  []string{"k"},
					Value: &cast.Expr{Kind: cast.ExprVar, Name: "y"},
				},
			},
		},
		{
			Pattern: cast.Pattern{Constructor: cast.CtorNone},
			Body: []cast.Stmt{
				{
					Kind:  cast.StmtMapUpdate,
					Field: "counts",
					Keys:  []string{"k"},
					Value: &cast.Expr{Kind: cast.ExprVar, Name: "d"},
				},
			},
		},
	}
	scrutinee := cast.Expr{Kind: cast.ExprVar, Name: "counts"}
	if !p.IsSpuriousConditionalStmt(scrutineeVal, scrutinee, clauses) {
		t.Error("expected PCM-op statement form to be recognized as spurious")
	}
}
