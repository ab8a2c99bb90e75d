package summary

import (
	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/etype"
)

func (a *Analyzer) analyzeMatchStmt(environment env.Environment, summary env.ComponentSummary, s cast.Stmt) (env.Environment, env.ComponentSummary, error) {
	scrutineeET, err := a.evalNormalized(environment, s.Scrutinee)
	if err != nil {
		return environment, summary, err
	}

	if a.isSpuriousConditionalStmt(scrutineeET, *s.Scrutinee, s.Clauses) {
		some, ok := findStmtClause(s.Clauses, cast.CtorSome)
		if !ok {
			return environment, summary, nil
		}
		bound := bindClauseBinders(environment, some.Pattern.Binders, scrutineeET)
		_, summary, err = a.AnalyzeBody(bound, summary, some.Body)
		return environment, summary, err
	}

	cond := etype.Normalize(etype.Op(contrib.ConditionalOp(), scrutineeET))
	if etype.IsUnknown(cond) {
		summary = summary.Add(env.AlwaysExclusive(contrib.Pseudofield{}, false, "unsummarisable match condition"))
	} else {
		summary = summary.Add(env.ConditionOn(cond))
	}

	for _, c := range s.Clauses {
		bound := bindClauseBinders(environment, c.Pattern.Binders, scrutineeET)
		_, clauseSummary, err := a.AnalyzeBody(bound, env.EmptySummary(), c.Body)
		if err != nil {
			return environment, summary, err
		}
		summary = summary.Union(clauseSummary)
	}
	return environment, summary, nil
}

func (a *Analyzer) isSpuriousConditionalStmt(scrutineeET etype.ExpressionType, scrutinee cast.Expr, clauses []cast.StmtClause) bool {
	for _, id := range a.Registry.IDs() {
		p, _ := a.Registry.Lookup(id)
		if p.IsSpuriousConditionalStmt(scrutineeET, scrutinee, clauses) {
			return true
		}
	}
	return false
}

func findStmtClause(clauses []cast.StmtClause, ctor string) (cast.StmtClause, bool) {
	for _, c := range clauses {
		if c.Pattern.Constructor == ctor {
			return c, true
		}
	}
	return cast.StmtClause{}, false
}

func bindClauseBinders(environment env.Environment, binders []string, et etype.ExpressionType) env.Environment {
	for _, b := range binders {
		environment = environment.BindVal(b, et)
	}
	return environment
}
