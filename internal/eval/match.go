package eval

import (
	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/etype"
)

// evalMatch implements MatchExpr(x, clauses).
func (ev *Evaluator) evalMatch(environment env.Environment, fpCount int, e cast.Expr) (etype.ExpressionType, error) {
	scrutineeET, err := ev.Eval(environment, fpCount, *e.Scrutinee)
	if err != nil {
		return etype.ExpressionType{}, err
	}

	clauseETs := make([]etype.ExpressionType, len(e.Clauses))
	for i, c := range e.Clauses {
		bound := environment
		for _, binder := range c.Pattern.Binders {
			bound = bound.BindVal(binder, scrutineeET)
		}
		bodyET, err := ev.Eval(bound, fpCount, c.Body)
		if err != nil {
			return etype.ExpressionType{}, err
		}
		clauseETs[i] = bodyET
	}

	cond := etype.Op(contrib.ConditionalOp(), scrutineeET)
	if ev.isSpuriousConditionalExpr(*e.Scrutinee, e.Clauses) {
		cond = etype.Nothing()
	}
	return etype.ComposeParallel(cond, clauseETs), nil
}

func (ev *Evaluator) isSpuriousConditionalExpr(scrutinee cast.Expr, clauses []cast.ExprClause) bool {
	for _, id := range ev.Registry.IDs() {
		p, _ := ev.Registry.Lookup(id)
		if p.IsSpuriousConditionalExpr(scrutinee, clauses) {
			return true
		}
	}
	return false
}
