// Package eval implements the symbolic expression evaluator: walks a type-annotated expression, producing an expression-type
// in the internal/etype domain.
package eval

import (
	"fmt"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/etype"
	"github.com/contractshard/shardc/internal/pcm"
)

// Evaluator walks expressions against a PCM registry, needed to recognize
// PCM-unit values when evaluating message `_amount` slots and spurious
// match conditionals.
type Evaluator struct {
	Registry pcm.Registry
}

// New builds an Evaluator over the given PCM registry.
func New(registry pcm.Registry) *Evaluator {
	return &Evaluator{Registry: registry}
}

// Eval produces the expression-type of e under environment e's bindings,
// threading fpCount, the de Bruijn level to assign the next lambda
// parameter encountered.
func (ev *Evaluator) Eval(environment env.Environment, fpCount int, e cast.Expr) (etype.ExpressionType, error) {
	switch e.Kind {
	case cast.ExprLiteral:
		return etype.Val(contrib.Known{
			Precision: contrib.Exactly,
			Contributions: contrib.Single(contrib.ConstantLiteral(e.Literal),
				contrib.Summary{Cardinality: contrib.Linear, Ops: contrib.NewOperatorSet()}),
		}), nil

	case cast.ExprVar:
		sig, ok := environment.Lookup(e.Name)
		if !ok || sig.Kind != env.SigIdent {
			return etype.ExpressionType{}, fmt.Errorf("%w: %q", ErrUnboundIdentifier, e.Name)
		}
		return sig.Type, nil

	case cast.ExprBuiltin:
		args, err := ev.evalAll(environment, fpCount, e.Args)
		if err != nil {
			return etype.ExpressionType{}, err
		}
		return etype.Op(contrib.BuiltinOp(e.Builtin), etype.ComposeSequence(args)), nil

	case cast.ExprConstr:
		args, err := ev.evalAll(environment, fpCount, e.Args)
		if err != nil {
			return etype.ExpressionType{}, err
		}
		return etype.ComposeSequence(args), nil

	case cast.ExprLet:
		rhs, err := ev.Eval(environment, fpCount, *e.Sub1)
		if err != nil {
			return etype.ExpressionType{}, err
		}
		rhs = etype.Normalize(rhs)
		bound := environment.BindVal(e.Param, rhs)
		return ev.Eval(bound, fpCount, *e.Sub2)

	case cast.ExprTFun:
		return ev.Eval(environment, fpCount, *e.Sub1)

	case cast.ExprTApp:
		return ev.Eval(environment, fpCount, *e.Sub1)

	case cast.ExprFun:
		return ev.evalFun(environment, fpCount, e)

	case cast.ExprApp:
		return ev.evalApp(environment, fpCount, e)

	case cast.ExprMessage:
		return ev.evalMessage(environment, fpCount, e)

	case cast.ExprMatch:
		return ev.evalMatch(environment, fpCount, e)

	case cast.ExprFixpoint:
		return etype.ExpressionType{}, ErrFixpoint

	default:
		return etype.ExpressionType{}, fmt.Errorf("%w: kind %v", ErrUnsupportedForm, e.Kind)
	}
}

func (ev *Evaluator) evalAll(environment env.Environment, fpCount int, exprs []cast.Expr) ([]etype.ExpressionType, error) {
	out := make([]etype.ExpressionType, len(exprs))
	for i, a := range exprs {
		et, err := ev.Eval(environment, fpCount, a)
		if err != nil {
			return nil, err
		}
		out[i] = et
	}
	return out, nil
}

func (ev *Evaluator) evalFun(environment env.Environment, fpCount int, e cast.Expr) (etype.ExpressionType, error) {
	var paramType etype.ExpressionType
	if e.ParamType != nil && e.ParamType.IsFunction {
		paramType = etype.Fun([]int{fpCount}, etype.OpaqueDef(contrib.FormalParameter(fpCount)))
	} else {
		paramType = etype.Val(contrib.Known{
			Precision: contrib.Exactly,
			Contributions: contrib.Single(contrib.FormalParameter(fpCount),
				contrib.Summary{Cardinality: contrib.Linear, Ops: contrib.NewOperatorSet()}),
		})
	}
	bound := environment.BindVal(e.Param, paramType)
	bodyET, err := ev.Eval(bound, fpCount+1, *e.Sub1)
	if err != nil {
		return etype.ExpressionType{}, err
	}
	return etype.Fun([]int{fpCount}, etype.InlineDef(bodyET)), nil
}

func (ev *Evaluator) evalApp(environment env.Environment, fpCount int, e cast.Expr) (etype.ExpressionType, error) {
	if len(e.Args) == 0 {
		return etype.ExpressionType{}, ErrEmptyArguments
	}
	callee, err := ev.Eval(environment, fpCount, *e.Sub1)
	if err != nil {
		return etype.ExpressionType{}, err
	}
	args, err := ev.evalAll(environment, fpCount, e.Args)
	if err != nil {
		return etype.ExpressionType{}, err
	}

	desc := callee
	if callee.Kind == etype.KindUnknown {
		desc = unknownFunction(len(args))
	} else if callee.Kind != etype.KindFun {
		return etype.ExpressionType{}, ErrNotAFunction
	}
	return etype.App(desc, args), nil
}

// unknownFunction fabricates an unknown function of the given arity:
// nested Funs whose innermost body is Unknown.
func unknownFunction(arity int) etype.ExpressionType {
	body := etype.Unknown()
	for i := arity - 1; i >= 0; i-- {
		body = etype.Fun([]int{i}, etype.InlineDef(body))
	}
	return body
}
