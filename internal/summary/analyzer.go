// Package summary implements the statement analyzer / summary builder:
// walks a component body, threading an environment and a growing
// component summary.
package summary

import (
	"fmt"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/etype"
	"github.com/contractshard/shardc/internal/eval"
	"github.com/contractshard/shardc/internal/hostconfig"
	"github.com/contractshard/shardc/internal/pcm"
)

// Analyzer walks statement lists, evaluating expressions through an
// eval.Evaluator sharing the same PCM registry.
type Analyzer struct {
	Registry pcm.Registry
	Host     *hostconfig.HostConfig
	Eval     *eval.Evaluator
}

// New builds an Analyzer over the given PCM registry. A nil host falls back
// to hostconfig.Default.
func New(registry pcm.Registry, host *hostconfig.HostConfig) *Analyzer {
	if host == nil {
		host = hostconfig.Default()
	}
	return &Analyzer{Registry: registry, Host: host, Eval: eval.New(registry)}
}

// AnalyzeBody walks stmts in order, threading environment and summary.
// Statements following a Throw are still analyzed and their effects
// retained — an over-approximation kept deliberately conservative rather
// than truncating at the throw.
func (a *Analyzer) AnalyzeBody(environment env.Environment, summary env.ComponentSummary, stmts []cast.Stmt) (env.Environment, env.ComponentSummary, error) {
	for _, s := range stmts {
		var err error
		environment, summary, err = a.analyzeStmt(environment, summary, s)
		if err != nil {
			return environment, summary, err
		}
	}
	return environment, summary, nil
}

func (a *Analyzer) analyzeStmt(environment env.Environment, summary env.ComponentSummary, s cast.Stmt) (env.Environment, env.ComponentSummary, error) {
	switch s.Kind {
	case cast.StmtLoad:
		return a.analyzeLoad(environment, summary, contrib.Pseudofield{Field: s.Field}, s.Binder)

	case cast.StmtStore:
		return a.analyzeStore(environment, summary, contrib.Pseudofield{Field: s.Field}, s.Value)

	case cast.StmtMapGet:
		pf := contrib.Pseudofield{Field: s.Field, Keys: s.Keys}
		if reason, ok := a.summarisabilityFailure(environment, s.Field, s.Keys); !ok {
			summary = summary.Add(env.AlwaysExclusive(pf, true, reason))
			environment = environment.BindVal(s.Binder, etype.Unknown())
			return environment, summary, nil
		}
		return a.analyzeLoad(environment, summary, pf, s.Binder)

	case cast.StmtMapUpdate:
		pf := contrib.Pseudofield{Field: s.Field, Keys: s.Keys}
		if reason, ok := a.summarisabilityFailure(environment, s.Field, s.Keys); !ok {
			summary = summary.Add(env.AlwaysExclusive(pf, true, reason))
			return environment, summary, nil
		}
		return a.analyzeStore(environment, summary, pf, s.Value)

	case cast.StmtAcceptPayment:
		return environment, summary.Add(env.AcceptMoney()), nil

	case cast.StmtSendMsgs:
		et, err := a.evalNormalized(environment, s.Value)
		if err != nil {
			return environment, summary, err
		}
		return environment, summary.Add(env.SendMessages(et)), nil

	case cast.StmtCreateEvnt:
		et, err := a.evalNormalized(environment, s.Value)
		if err != nil {
			return environment, summary, err
		}
		return environment, summary.Add(env.EmitEvent(et)), nil

	case cast.StmtReadFromBC:
		return environment.BindVal(s.Binder, etype.Nothing()), summary, nil

	case cast.StmtBind:
		et, err := a.evalNormalized(environment, s.Value)
		if err != nil {
			return environment, summary, err
		}
		return environment.BindVal(s.Binder, et), summary, nil

	case cast.StmtMatch:
		return a.analyzeMatchStmt(environment, summary, s)

	case cast.StmtCallProc:
		return a.analyzeCallProc(environment, summary, s)

	case cast.StmtIterate:
		return environment, summary.Add(env.AlwaysExclusive(contrib.Pseudofield{}, false, "iteration is not analyzed")), nil

	case cast.StmtThrow:
		return environment, summary, nil

	default:
		return environment, summary, fmt.Errorf("summary: unsupported statement kind %q", s.Kind)
	}
}

func (a *Analyzer) evalNormalized(environment env.Environment, e *cast.Expr) (etype.ExpressionType, error) {
	if e == nil {
		return etype.Nothing(), nil
	}
	et, err := a.Eval.Eval(environment, 0, *e)
	if err != nil {
		return etype.ExpressionType{}, err
	}
	return etype.Normalize(et), nil
}

// analyzeLoad implements the shared Load/MapGet read-after-write rule.
func (a *Analyzer) analyzeLoad(environment env.Environment, summary env.ComponentSummary, pf contrib.Pseudofield, binder string) (env.Environment, env.ComponentSummary, error) {
	if readAfterWrite(summary, pf) {
		summary = summary.Add(env.AlwaysExclusive(pf, true, "read after write to "+pf.String()))
		return environment.BindVal(binder, etype.Unknown()), summary, nil
	}
	summary = summary.Add(env.Read(pf))
	fieldET := etype.Val(contrib.Known{
		Precision: contrib.Exactly,
		Contributions: contrib.Single(contrib.FromPseudofield(pf),
			contrib.Summary{Cardinality: contrib.Linear, Ops: contrib.NewOperatorSet()}),
	})
	return environment.BindVal(binder, fieldET), summary, nil
}

func (a *Analyzer) analyzeStore(environment env.Environment, summary env.ComponentSummary, pf contrib.Pseudofield, value *cast.Expr) (env.Environment, env.ComponentSummary, error) {
	et, err := a.evalNormalized(environment, value)
	if err != nil {
		return environment, summary, err
	}
	return environment, summary.Add(env.Write(pf, et)), nil
}

func readAfterWrite(summary env.ComponentSummary, pf contrib.Pseudofield) bool {
	for _, op := range summary.Operations() {
		if op.Kind == env.OpWrite && op.Field.SameLocation(pf) {
			return true
		}
	}
	return false
}

// summarisabilityFailure reports whether a MapGet/MapUpdate access on field
// is summarisable: the access is bottom-level (its key count equals the
// field's map-key nesting depth) and every key identifier resolves to a
// (non-shadowed) component parameter. The contract AST carries no local
// field-type declarations, so depth always comes from the host config.
// On failure it also returns the AlwaysExclusive reason to record.
func (a *Analyzer) summarisabilityFailure(environment env.Environment, field string, keys []string) (string, bool) {
	depth := a.Host.MapKeyDepth(field, 0, false)
	if len(keys) != depth {
		return "map access is not bottom-level", false
	}
	for _, k := range keys {
		sig, ok := environment.Lookup(k)
		if !ok || sig.Kind != env.SigIdent || sig.ShadowStatus != env.ComponentParameter {
			return "map key is not a component parameter", false
		}
	}
	return "", true
}
