package contrib

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceKind tags a Contribution Source variant.
type SourceKind int

const (
	SrcUnknown SourceKind = iota
	SrcConstantLiteral
	SrcContractParameter
	SrcPseudofield
	SrcFormalParameter
	SrcProcParameter
)

// Pseudofield is a reference to mutable contract state: a field identifier
// plus an optional ordered list of key identifiers for map-typed fields.
// When Keys is non-empty it must describe a bottom-level access — the
// number of keys equals the map's nesting depth for that field (enforced
// by internal/summary's summarisability check, not here).
type Pseudofield struct {
	Field string
	Keys  []string
}

// String renders a canonical, deterministic form used both as a map key
// discriminator and for diagnostic output.
func (p Pseudofield) String() string {
	if len(p.Keys) == 0 {
		return p.Field
	}
	return p.Field + "[" + strings.Join(p.Keys, "][") + "]"
}

// SameLocation reports whether two pseudofields name the exact same
// location (same field, same key identifiers in the same order) — the
// read-after-write and commutative-write checks compare locations this way.
func (p Pseudofield) SameLocation(o Pseudofield) bool {
	if p.Field != o.Field || len(p.Keys) != len(o.Keys) {
		return false
	}
	for i := range p.Keys {
		if p.Keys[i] != o.Keys[i] {
			return false
		}
	}
	return true
}

// Source is a Contribution Source: where a value ultimately comes from.
// Only the field(s) relevant to Kind are populated.
type Source struct {
	Kind SourceKind

	Literal    string      // SrcConstantLiteral
	ParamName  string      // SrcContractParameter
	Field      Pseudofield // SrcPseudofield
	FormalK    int         // SrcFormalParameter: de Bruijn level
	ProcParamI int         // SrcProcParameter: positional index
}

func Unknown() Source                      { return Source{Kind: SrcUnknown} }
func ConstantLiteral(l string) Source      { return Source{Kind: SrcConstantLiteral, Literal: l} }
func ContractParameter(id string) Source   { return Source{Kind: SrcContractParameter, ParamName: id} }
func FromPseudofield(pf Pseudofield) Source { return Source{Kind: SrcPseudofield, Field: pf} }
func FormalParameter(k int) Source         { return Source{Kind: SrcFormalParameter, FormalK: k} }
func ProcParameter(i int) Source           { return Source{Kind: SrcProcParameter, ProcParamI: i} }

// Key returns the canonical string used as this source's Contributions map
// key — two sources denote the same contribution iff their keys match.
func (s Source) Key() string {
	switch s.Kind {
	case SrcUnknown:
		return "unknown"
	case SrcConstantLiteral:
		return "lit:" + s.Literal
	case SrcContractParameter:
		return "cparam:" + s.ParamName
	case SrcPseudofield:
		return "field:" + s.Field.String()
	case SrcFormalParameter:
		return "fp:" + strconv.Itoa(s.FormalK)
	case SrcProcParameter:
		return "pp:" + strconv.Itoa(s.ProcParamI)
	default:
		return fmt.Sprintf("invalid-source-kind:%d", s.Kind)
	}
}

// IsPseudofield reports whether this source denotes mutable state.
func (s Source) IsPseudofield() bool { return s.Kind == SrcPseudofield }
