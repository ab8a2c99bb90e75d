package pcm

import (
	"sort"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
)

// Registry holds the set of known PCM modules, keyed by identifier.
// Immutable from the caller's point of view: Register returns a new
// Registry rather than mutating the receiver.
type Registry struct {
	byID map[string]PCM
}

// NewRegistry builds a Registry from an initial set of PCMs.
func NewRegistry(pcms ...PCM) Registry {
	r := Registry{byID: map[string]PCM{}}
	for _, p := range pcms {
		r.byID[p.Identifier()] = p
	}
	return r
}

// Register returns a new Registry with p added (or replacing any prior
// PCM of the same identifier).
func (r Registry) Register(p PCM) Registry {
	out := make(map[string]PCM, len(r.byID)+1)
	for k, v := range r.byID {
		out[k] = v
	}
	out[p.Identifier()] = p
	return Registry{byID: out}
}

// IDs returns every registered PCM's identifier, sorted.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the PCM with the given identifier.
func (r Registry) Lookup(id string) (PCM, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Applicable returns, in deterministic identifier order, every registered
// PCM applicable to t.
func (r Registry) Applicable(t cast.Type) []PCM {
	var out []PCM
	for _, p := range r.byID {
		if p.IsApplicableType(t) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier() < out[j].Identifier() })
	return out
}

// FindOpPCM returns the (first, in identifier order) registered PCM whose
// binary operation is op, used by the constraint synthesizer's
// commutative-write detection.
func (r Registry) FindOpPCM(op contrib.Operator) (PCM, bool) {
	var ids []string
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := r.byID[id]
		if p.IsOp(op) {
			return p, true
		}
	}
	return nil, false
}

// Default returns the built-in registry: integer addition.
func Default() Registry {
	return NewRegistry(IntegerAdd{})
}
