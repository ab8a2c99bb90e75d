package summary

import (
	"fmt"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/etype"
)

// implicitParamNames returns the host-configured implicit component
// parameters, shared by every transition and procedure, prepended ahead of
// a procedure's own declared parameters before translating a call. This
// must stay in lockstep with internal/analyzer's bindComponentParams, which
// prepends the same list in the same order when binding a component's own
// environment.
func (a *Analyzer) implicitParamNames() []string {
	names := make([]string, len(a.Host.ImplicitComponentParams))
	for i, p := range a.Host.ImplicitComponentParams {
		names[i] = p.Name
	}
	return names
}

func (a *Analyzer) analyzeCallProc(environment env.Environment, summary env.ComponentSummary, s cast.Stmt) (env.Environment, env.ComponentSummary, error) {
	calleeSig, ok := environment.Lookup(s.Proc)
	if !ok || calleeSig.Kind != env.SigComponent {
		return environment, summary, fmt.Errorf("%w: %q", ErrUnknownProcedure, s.Proc)
	}
	translated, err := a.procedureCallSummary(environment, s.Proc, calleeSig.Params, calleeSig.Summary, s.Args)
	if err != nil {
		return environment, summary, err
	}
	return environment, summary.Union(translated), nil
}

// procedureCallSummary rewrites a callee's summary into the caller's
// parameter space.
func (a *Analyzer) procedureCallSummary(callerEnv env.Environment, callSite string, calleeParams []cast.ContractParam, calleeSummary env.ComponentSummary, argExprs []cast.Expr) (env.ComponentSummary, error) {
	implicitNames := a.implicitParamNames()
	combinedParamNames := make([]string, 0, len(implicitNames)+len(calleeParams))
	combinedParamNames = append(combinedParamNames, implicitNames...)
	for _, p := range calleeParams {
		combinedParamNames = append(combinedParamNames, p.Name)
	}

	combinedArgs := make([]cast.Expr, 0, len(combinedParamNames))
	for _, implicit := range implicitNames {
		combinedArgs = append(combinedArgs, cast.Expr{Kind: cast.ExprVar, Name: implicit})
	}
	combinedArgs = append(combinedArgs, argExprs...)

	if !guardKeysAreParameters(callerEnv, calleeSummary, combinedParamNames, combinedArgs) {
		return env.EmptySummary().Add(env.AlwaysExclusive(contrib.Pseudofield{}, false,
			"call to "+callSite+" violates the keys-are-parameters invariant")), nil
	}

	argETs := make([]etype.ExpressionType, len(combinedArgs))
	for i, arg := range combinedArgs {
		et, err := a.Eval.Eval(callerEnv, 0, arg)
		if err != nil {
			return env.ComponentSummary{}, err
		}
		argETs[i] = et
	}

	translated := env.EmptySummary()
	for _, op := range calleeSummary.Operations() {
		newOp := op
		if len(op.Field.Keys) > 0 {
			newKeys := make([]string, len(op.Field.Keys))
			for i, key := range op.Field.Keys {
				idx := indexOf(combinedParamNames, key)
				newKeys[i] = combinedArgs[idx].Name
			}
			newOp.Field = contrib.Pseudofield{Field: op.Field.Field, Keys: newKeys}
		}
		newOp.Value = substituteProcParams(op.Value, argETs)
		translated = translated.Add(newOp)
	}
	return translated, nil
}

// guardKeysAreParameters checks step 3 of procedure_call_summary: every
// identifier the callee uses as a map key must itself be a callee
// parameter, and the corresponding caller-side argument at that position
// must be a caller component parameter.
func guardKeysAreParameters(callerEnv env.Environment, calleeSummary env.ComponentSummary, combinedParamNames []string, combinedArgs []cast.Expr) bool {
	keys := collectMapKeyIdentifiers(calleeSummary)
	for _, key := range keys {
		idx := indexOf(combinedParamNames, key)
		if idx < 0 || idx >= len(combinedArgs) {
			return false
		}
		arg := combinedArgs[idx]
		if arg.Kind != cast.ExprVar || !callerEnv.IsComponentParam(arg.Name) {
			return false
		}
	}
	return true
}

func collectMapKeyIdentifiers(s env.ComponentSummary) []string {
	seen := map[string]bool{}
	var out []string
	for _, op := range s.Operations() {
		for _, k := range op.Field.Keys {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

func indexOf(names []string, target string) int {
	for i, n := range names {
		if n == target {
			return i
		}
	}
	return -1
}

// substituteProcParams iteratively substitutes each ProcParameter(i) with
// the caller's i-th combined argument expression-type, normalizing after
// each substitution.
func substituteProcParams(et etype.ExpressionType, argETs []etype.ExpressionType) etype.ExpressionType {
	for i, argET := range argETs {
		et = etype.Normalize(etype.SubstituteArgument(et, contrib.ProcParameter(i), argET))
	}
	return et
}
