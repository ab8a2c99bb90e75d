package env

import "github.com/contractshard/shardc/internal/etype"

// Environment is a persistent dictionary from name to Environment
// Signature: entries are added on binding and never mutated, so that each branch of a match can evaluate from the
// same snapshot independently.
type Environment struct {
	bindings map[string]Sig
	compParams map[string]bool
}

// New builds an empty environment with no component parameters in scope.
func New() Environment {
	return Environment{bindings: map[string]Sig{}, compParams: map[string]bool{}}
}

// WithComponentParams returns a new environment whose component-parameter
// set is replaced by names, each bound as IdentSig(ComponentParameter, …)
// with an Unknown expression-type placeholder — callers bind the real
// expression-type via Bind once the parameter's initial value is known.
func (e Environment) WithComponentParams(names []string) Environment {
	out := e.clone()
	out.compParams = make(map[string]bool, len(names))
	for _, n := range names {
		out.compParams[n] = true
		out.bindings[n] = IdentSig(ComponentParameter, nil, etype.Unknown())
	}
	return out
}

// IsComponentParam reports whether name is one of the enclosing
// component's own parameters.
func (e Environment) IsComponentParam(name string) bool {
	return e.compParams[name]
}

// ComponentParamNames returns the names currently in the component-
// parameter set, for callers building up a wider set across nested
// scopes (e.g. contract parameters plus a component's own parameters).
func (e Environment) ComponentParamNames() []string {
	names := make([]string, 0, len(e.compParams))
	for n := range e.compParams {
		names = append(names, n)
	}
	return names
}

// Bind returns a new environment with name bound to sig, overriding any
// prior binding — except that sig's IdentSig ShadowStatus is computed here
// rather than trusted from the caller: a name matching a component
// parameter becomes ShadowsComponentParameter (unless it IS the component
// parameter's own initial binding), and a fresh name becomes
// DoesNotShadow.
func (e Environment) Bind(name string, sig Sig) Environment {
	out := e.clone()
	if sig.Kind == SigIdent && sig.ShadowStatus != ComponentParameter {
		if e.compParams[name] {
			sig.ShadowStatus = ShadowsComponentParameter
		} else {
			sig.ShadowStatus = DoesNotShadow
		}
	}
	out.bindings[name] = sig
	return out
}

// BindVal is a convenience wrapper for binding a plain value identifier.
func (e Environment) BindVal(name string, t etype.ExpressionType) Environment {
	return e.Bind(name, IdentSig(DoesNotShadow, nil, t))
}

// Lookup returns the signature bound to name.
func (e Environment) Lookup(name string) (Sig, bool) {
	s, ok := e.bindings[name]
	return s, ok
}

// Resolve adapts Lookup to the pcm.Resolver shape: identifier to
// expression-type.
func (e Environment) Resolve(name string) (etype.ExpressionType, bool) {
	s, ok := e.bindings[name]
	if !ok || s.Kind != SigIdent {
		return etype.ExpressionType{}, false
	}
	return s.Type, true
}

func (e Environment) clone() Environment {
	b := make(map[string]Sig, len(e.bindings))
	for k, v := range e.bindings {
		b[k] = v
	}
	cp := make(map[string]bool, len(e.compParams))
	for k, v := range e.compParams {
		cp[k] = v
	}
	return Environment{bindings: b, compParams: cp}
}
