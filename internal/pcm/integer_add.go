package pcm

import (
	"strings"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/etype"
)

// IntegerAdd is the built-in PCM over signed/unsigned integer types:
// unit is the zero literal, op is builtin add applied once to each
// operand.
type IntegerAdd struct{}

func (IntegerAdd) Identifier() string { return "integer_add" }

func (IntegerAdd) IsApplicableType(t cast.Type) bool {
	if t.IsFunction {
		return false
	}
	name := strings.ToLower(t.Name)
	return strings.HasPrefix(name, "int") || strings.HasPrefix(name, "uint")
}

func (IntegerAdd) IsUnitLiteral(e cast.Expr) bool {
	return e.Kind == cast.ExprLiteral && isZeroLiteral(e.Literal)
}

func isZeroLiteral(lit string) bool {
	trimmed := strings.TrimLeft(lit, "-")
	for _, c := range trimmed {
		if c != '0' {
			return false
		}
	}
	return trimmed != ""
}

func (IntegerAdd) IsOp(op contrib.Operator) bool {
	return !op.IsConditional && op.Builtin == "add"
}

func (p IntegerAdd) IsOpExpr(e cast.Expr, a, b string) bool {
	if e.Kind != cast.ExprBuiltin || e.Builtin != "add" || len(e.Args) != 2 {
		return false
	}
	names := map[string]bool{}
	for _, arg := range e.Args {
		if arg.Kind != cast.ExprVar {
			return false
		}
		names[arg.Name] = true
	}
	return names[a] && names[b]
}

func (p IntegerAdd) IsSpuriousConditionalExpr(scrutinee cast.Expr, clauses []cast.ExprClause) bool {
	some, none, ok := splitOptionClauses(clauses)
	if !ok {
		return false
	}
	if len(some.Pattern.Binders) != 1 {
		return false
	}
	binder := some.Pattern.Binders[0]

	// PCM-unit form: Some x => x | None => unit.
	if some.Body.Kind == cast.ExprVar && some.Body.Name == binder && p.IsUnitLiteral(none.Body) {
		return true
	}

	// PCM-op form: Some x => op(x, y) | None => y.
	if none.Body.Kind == cast.ExprVar {
		free := none.Body.Name
		if p.IsOpExpr(some.Body, binder, free) {
			return true
		}
	}
	return false
}

func splitOptionClauses(clauses []cast.ExprClause) (some, none *cast.ExprClause, ok bool) {
	if len(clauses) != 2 {
		return nil, nil, false
	}
	for i := range clauses {
		switch clauses[i].Pattern.Constructor {
		case cast.CtorSome:
			some = &clauses[i]
		case cast.CtorNone:
			none = &clauses[i]
		}
	}
	return some, none, some != nil && none != nil
}

func (p IntegerAdd) IsSpuriousConditionalStmt(scrutineeVal etype.ExpressionType, scrutinee cast.Expr, clauses []cast.StmtClause) bool {
	if scrutineeVal.Kind != etype.KindVal {
		return false
	}
	val := scrutineeVal.Val
	if val.Precision != contrib.Exactly || val.Contributions.Len() != 1 {
		return false
	}
	srcs := val.Contributions.Sources()
	if !srcs[0].IsPseudofield() {
		return false
	}
	sum, _ := val.Contributions.Get(srcs[0])
	if sum.Cardinality != contrib.Linear || sum.Ops.Len() != 0 {
		return false
	}

	some, none, ok := splitOptionStmtClauses(clauses)
	if !ok || len(some.Pattern.Binders) != 1 {
		return false
	}
	binder := some.Pattern.Binders[0]

	freeVar, storedField, opOK := opAssignThenStore(some.Body, binder)
	if !opOK {
		return false
	}
	return storesFreeVarToField(none.Body, freeVar, storedField)
}

func splitOptionStmtClauses(clauses []cast.StmtClause) (some, none *cast.StmtClause, ok bool) {
	if len(clauses) != 2 {
		return nil, nil, false
	}
	for i := range clauses {
		switch clauses[i].Pattern.Constructor {
		case cast.CtorSome:
			some = &clauses[i]
		case cast.CtorNone:
			none = &clauses[i]
		}
	}
	return some, none, some != nil && none != nil
}

// opAssignThenStore recognizes `q = op(x, d); m[...] := q` inside a
// Some-branch statement list, returning the free variable d and the
// pseudofield stored to.
func opAssignThenStore(body []cast.Stmt, binder string) (freeVar string, field string, ok bool) {
	var bound string
	var ip IntegerAdd
	for _, s := range body {
		switch s.Kind {
		case cast.StmtBind:
			if s.Value == nil || !ip.IsOpExpr(*s.Value, binder, freeVarOf(*s.Value, binder)) {
				continue
			}
			bound = s.Binder
			freeVar = freeVarOf(*s.Value, binder)
		case cast.StmtStore, cast.StmtMapUpdate:
			if s.Value != nil && s.Value.Kind == cast.ExprVar && s.Value.Name == bound {
				return freeVar, s.Field, freeVar != ""
			}
		}
	}
	return "", "", false
}

func freeVarOf(e cast.Expr, binder string) string {
	if e.Kind != cast.ExprBuiltin || len(e.Args) != 2 {
		return ""
	}
	for _, a := range e.Args {
		if a.Kind == cast.ExprVar && a.Name != binder {
			return a.Name
		}
	}
	return ""
}

func storesFreeVarToField(body []cast.Stmt, freeVar, field string) bool {
	for _, s := range body {
		if (s.Kind == cast.StmtStore || s.Kind == cast.StmtMapUpdate) && s.Field == field {
			if s.Value != nil && s.Value.Kind == cast.ExprVar && s.Value.Name == freeVar {
				return true
			}
		}
	}
	return false
}
