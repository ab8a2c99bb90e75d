// Package analyzer orchestrates a full module analysis: it
// folds a module's external libraries, its own library, and its
// components' parameters into a single environment in source order, then
// runs the statement analyzer and constraint synthesizer over each
// transition.
//
// Phase sequence:
//  1. LIBRARIES:    fold external libraries (dependency order), then the
//     contract's own library block, into the base environment.
//  2. PARAMETERS:   bind the contract's own (plus host-implicit) parameters
//     as component parameters visible to every component.
//  3. COMPONENTS:   for each component in source order, bind its own (plus
//     host-implicit) parameters, analyze its body, and fold its signature
//     into the environment for subsequent CallProc resolution.
//  4. SYNTHESIZE:   for each transition's finished summary, synthesize
//     sharding constraints — independent across transitions, so this phase
//     runs across a worker pool.
package analyzer

import (
	"context"
	"runtime"
	"sync"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/constraint"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/digest"
	"github.com/contractshard/shardc/internal/env"
	oerrors "github.com/contractshard/shardc/internal/errors"
	"github.com/contractshard/shardc/internal/etype"
	"github.com/contractshard/shardc/internal/hostconfig"
	"github.com/contractshard/shardc/internal/pcm"
	"github.com/contractshard/shardc/internal/summary"
)

// Analyzer holds the shared PCM registry and host configuration a module
// analysis runs against.
type Analyzer struct {
	Registry pcm.Registry
	Host     *hostconfig.HostConfig
	Summary  *summary.Analyzer
}

// New builds an Analyzer. A nil host falls back to hostconfig.Default.
func New(registry pcm.Registry, host *hostconfig.HostConfig) *Analyzer {
	if host == nil {
		host = hostconfig.Default()
	}
	return &Analyzer{Registry: registry, Host: host, Summary: summary.New(registry, host)}
}

// Result is a complete module analysis: one entry per transition plus a content digest over all of
// them.
type Result struct {
	Transitions []digest.TransitionResult
	Digest      string
}

// AnalyzeModule runs the full pipeline over mod.
func (a *Analyzer) AnalyzeModule(ctx context.Context, mod *cast.Module) (*Result, error) {
	baseEnv, err := a.foldLibraries(env.New(), mod)
	if err != nil {
		return nil, err
	}
	baseEnv = a.bindContractParams(baseEnv, mod)

	var transitions []digest.TransitionResult
	for _, comp := range mod.Components {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		compEnv := a.bindComponentParams(baseEnv, comp)
		_, finalSummary, err := a.Summary.AnalyzeBody(compEnv, env.EmptySummary(), comp.Body)
		if err != nil {
			return nil, oerrors.NewStructuralError(err.Error(), comp.Name,
				"check the analyzer's coverage of this component's statement forms")
		}

		baseEnv = baseEnv.Bind(comp.Name, env.ComponentSig(comp.Params, finalSummary))

		if comp.Kind != cast.KindTransition {
			continue
		}
		transitions = append(transitions, digest.TransitionResult{Name: comp.Name, Summary: finalSummary})
	}

	a.synthesizeAll(ctx, transitions)
	digestStr := digest.Compute(transitions)
	digest.SortTransitions(transitions)

	return &Result{Transitions: transitions, Digest: digestStr}, nil
}

// foldLibraries evaluates every external library's entries (in the
// dependency order the module already lists them), then the module's own
// library block, binding each value definition's expression-type.
func (a *Analyzer) foldLibraries(environment env.Environment, mod *cast.Module) (env.Environment, error) {
	for _, lib := range mod.ExternalLibraries {
		var err error
		environment, err = a.foldLibraryEntries(environment, lib.Entries)
		if err != nil {
			return environment, oerrors.NewStructuralError(err.Error(), lib.Name,
				"check this external library's value definitions")
		}
	}
	environment, err := a.foldLibraryEntries(environment, mod.Library)
	if err != nil {
		return environment, oerrors.NewStructuralError(err.Error(), mod.Name,
			"check the contract's library block")
	}
	return environment, nil
}

func (a *Analyzer) foldLibraryEntries(environment env.Environment, entries []cast.LibraryEntry) (env.Environment, error) {
	for _, entry := range entries {
		if entry.Expr == nil {
			// Opaque type definition: no value to bind.
			continue
		}
		et, err := a.Summary.Eval.Eval(environment, 0, *entry.Expr)
		if err != nil {
			return environment, err
		}
		environment = environment.BindVal(entry.Name, etype.Normalize(et))
	}
	return environment, nil
}

// bindContractParams widens environment's component-parameter set to
// include the contract's own construction parameters plus any the host
// implicitly supplies, each bound to a Val sourced from ContractParameter.
func (a *Analyzer) bindContractParams(environment env.Environment, mod *cast.Module) env.Environment {
	names := append(append([]string{}, environment.ComponentParamNames()...), paramNames(a.Host.ImplicitContractParams)...)
	names = append(names, paramNames(mod.Params)...)
	environment = environment.WithComponentParams(names)

	for _, p := range a.Host.ImplicitContractParams {
		environment = environment.Bind(p.Name, contractParamSig(p.Name))
	}
	for _, p := range mod.Params {
		environment = environment.Bind(p.Name, contractParamSig(p.Name))
	}
	return environment
}

// bindComponentParams widens baseEnv's component-parameter set with comp's
// own (plus the host's implicit component) parameters, each bound to a Val
// sourced from ProcParameter(i) at its position in the combined list — the
// same positional scheme internal/summary's CallProc translation assumes,
// which is why both sides read the implicit list off a.Host rather than a
// hardcoded default.
func (a *Analyzer) bindComponentParams(baseEnv env.Environment, comp cast.Component) env.Environment {
	implicitNames := paramNames(a.Host.ImplicitComponentParams)
	combined := make([]string, 0, len(implicitNames)+len(comp.Params))
	combined = append(combined, implicitNames...)
	combined = append(combined, paramNames(comp.Params)...)

	names := append(append([]string{}, baseEnv.ComponentParamNames()...), combined...)
	compEnv := baseEnv.WithComponentParams(names)
	// WithComponentParams resets every name to a placeholder; restore the
	// contract-level bindings bindContractParams made.
	for _, name := range baseEnv.ComponentParamNames() {
		if sig, ok := baseEnv.Lookup(name); ok {
			compEnv = compEnv.Bind(name, sig)
		}
	}
	for i, name := range combined {
		compEnv = compEnv.Bind(name, procParamSig(i))
	}
	return compEnv
}

func contractParamSig(name string) env.Sig {
	return env.IdentSig(env.ComponentParameter, nil, etype.Val(contrib.Known{
		Precision: contrib.Exactly,
		Contributions: contrib.Single(contrib.ContractParameter(name),
			contrib.Summary{Cardinality: contrib.Linear, Ops: contrib.NewOperatorSet()}),
	}))
}

func procParamSig(index int) env.Sig {
	return env.IdentSig(env.ComponentParameter, nil, etype.Val(contrib.Known{
		Precision: contrib.Exactly,
		Contributions: contrib.Single(contrib.ProcParameter(index),
			contrib.Summary{Cardinality: contrib.Linear, Ops: contrib.NewOperatorSet()}),
	}))
}

func paramNames(params []cast.ContractParam) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// synthesizeAll runs constraint synthesis across transitions concurrently:
// each transition's constraints depend only on its own finished summary,
// so, unlike the sequential fold that builds those summaries, this phase
// is safely parallel (one goroutine per transition, at most GOMAXPROCS of
// them running at once).
func (a *Analyzer) synthesizeAll(ctx context.Context, transitions []digest.TransitionResult) {
	if ctx.Err() != nil {
		return
	}
	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	for i := range transitions {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			transitions[i].Constraints = constraint.Synthesize(a.Registry, transitions[i].Summary)
		}(i)
	}
	wg.Wait()
}
