package env

import (
	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/etype"
)

// ShadowStatus records a binder's relationship to the enclosing
// component's own parameters.
type ShadowStatus int

const (
	// DoesNotShadow: a fresh name, unrelated to any component parameter.
	DoesNotShadow ShadowStatus = iota
	// ComponentParameter: this binding *is* one of the component's own
	// parameters.
	ComponentParameter
	// ShadowsComponentParameter: a later binder reuses a component
	// parameter's name.
	ShadowsComponentParameter
)

func (s ShadowStatus) String() string {
	switch s {
	case DoesNotShadow:
		return "does-not-shadow"
	case ComponentParameter:
		return "component-parameter"
	case ShadowsComponentParameter:
		return "shadows-component-parameter"
	default:
		return "invalid"
	}
}

// SigKind discriminates Environment Signature variants.
type SigKind int

const (
	SigComponent SigKind = iota
	SigIdent
)

// Sig is an Environment Signature: the per-name binding the analysis
// environment carries.
type Sig struct {
	Kind SigKind

	// SigComponent: a named transition/procedure.
	Params  []cast.ContractParam
	Summary ComponentSummary

	// SigIdent: a value or function name.
	ShadowStatus ShadowStatus
	PCMMembers   []string
	Type         etype.ExpressionType
}

// ComponentSig builds a SigComponent binding.
func ComponentSig(params []cast.ContractParam, summary ComponentSummary) Sig {
	return Sig{Kind: SigComponent, Params: params, Summary: summary}
}

// IdentSig builds a SigIdent binding.
func IdentSig(shadow ShadowStatus, pcmMembers []string, t etype.ExpressionType) Sig {
	return Sig{Kind: SigIdent, ShadowStatus: shadow, PCMMembers: pcmMembers, Type: t}
}

// HasPCM reports whether id is among the recorded PCM units this
// identifier is known to equal.
func (s Sig) HasPCM(id string) bool {
	for _, m := range s.PCMMembers {
		if m == id {
			return true
		}
	}
	return false
}
