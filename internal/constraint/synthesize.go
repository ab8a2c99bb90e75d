package constraint

import (
	"sort"

	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/etype"
	"github.com/contractshard/shardc/internal/pcm"
)

// BalancePseudofield names the implicit native-currency balance the host
// exposes to every component.
var BalancePseudofield = contrib.Pseudofield{Field: "_balance"}

// Synthesize reduces a component summary to its sharding constraint set
//. The returned slice is sorted by Constraint.Key for
// deterministic output.
func Synthesize(registry pcm.Registry, summary env.ComponentSummary) []Constraint {
	if escapeHatch(summary) {
		return []Constraint{NewUnsat()}
	}

	out := map[string]Constraint{}
	add := func(c Constraint) { out[c.Key()] = c }

	ops := summary.Operations()

	for _, op := range ops {
		if op.Kind == env.OpAcceptMoney {
			add(NewSenderShard())
			break
		}
	}

	var sends []env.Operation
	for _, op := range ops {
		if op.Kind == env.OpSendMessages {
			sends = append(sends, op)
		}
	}
	for _, send := range sends {
		special := *send.Value.Special
		if special.Val.Precision == contrib.SubsetOf {
			add(NewMustOwn(BalancePseudofield))
		}
		for _, src := range special.Val.Contributions.Sources() {
			if src.Kind == contrib.SrcProcParameter {
				add(NewAddrMustBeNonContract(src.ProcParamI))
			}
		}
	}

	cw := map[string]string{} // pseudofield location -> PCM identifier
	for _, op := range ops {
		if op.Kind != env.OpWrite {
			continue
		}
		if pcmID, ok := commutativePCM(registry, op.Field, op.Value); ok {
			cw[op.Field.String()] = pcmID
		}
	}
	isCW := func(f contrib.Pseudofield) bool {
		_, ok := cw[f.String()]
		return ok
	}

	for loc, pcmID := range cw {
		var pf contrib.Pseudofield
		for _, op := range ops {
			if op.Kind == env.OpWrite && op.Field.String() == loc {
				pf = op.Field
				break
			}
		}
		add(NewMustHavePCM(pf, pcmID))
	}

	for _, op := range ops {
		if op.Kind != env.OpRead {
			continue
		}
		if spuriousRead(ops, isCW, op.Field) {
			continue
		}
		add(NewMustOwn(op.Field))
	}

	for _, op := range ops {
		if op.Kind != env.OpWrite || isCW(op.Field) {
			continue
		}
		add(NewMustOwn(op.Field))
		for _, pf := range pseudofieldSourcesIn(op.Value) {
			add(NewMustOwn(pf))
		}
	}

	for _, op := range ops {
		if op.Kind != env.OpConditionOn {
			continue
		}
		for _, pf := range pseudofieldSourcesIn(op.Value) {
			add(NewMustOwn(pf))
		}
	}

	keys := make([]string, 0, len(out))
	for k := range out {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	result := make([]Constraint, len(keys))
	for i, k := range keys {
		result[i] = out[k]
	}
	return result
}

// escapeHatch checks the three Unsat-forcing conditions: an always-exclusive
// summary, or a SendMessages argument whose expression-type is not a plain
// composite of procedure-parameter contributions.
func escapeHatch(summary env.ComponentSummary) bool {
	if summary.HasAlwaysExclusive() {
		return true
	}
	for _, op := range summary.Operations() {
		if op.Kind != env.OpSendMessages {
			continue
		}
		et := op.Value
		if et.Kind != etype.KindCompositeVal || et.Special == nil || et.Special.Kind != etype.KindVal {
			return true
		}
		for _, src := range et.Special.Val.Contributions.Sources() {
			if src.Kind != contrib.SrcProcParameter {
				return true
			}
		}
	}
	return false
}

// commutativePCM detects a commutative write: a
// Write(pf, Val(Exactly, contribs)) is commutative under PCM P when
// contribs, restricted to pseudofield sources, is exactly
// { pf -> (Linear, {op}) } for a single operator op some PCM identifies as
// its binary operation.
func commutativePCM(registry pcm.Registry, pf contrib.Pseudofield, et etype.ExpressionType) (string, bool) {
	if et.Kind != etype.KindVal || et.Val.Precision != contrib.Exactly {
		return "", false
	}
	var pfSources []contrib.Source
	for _, src := range et.Val.Contributions.Sources() {
		if src.Kind == contrib.SrcPseudofield {
			pfSources = append(pfSources, src)
		}
	}
	if len(pfSources) != 1 || !pfSources[0].Field.SameLocation(pf) {
		return "", false
	}
	summ, _ := et.Val.Contributions.Get(pfSources[0])
	if summ.Cardinality != contrib.Linear || summ.Ops.Len() != 1 {
		return "", false
	}
	op := summ.Ops.Sorted()[0]
	p, ok := registry.FindOpPCM(op)
	if !ok {
		return "", false
	}
	return p.Identifier(), true
}

// spuriousRead detects a spurious read: a
// Read(pf) is spurious iff no non-CW Write, ConditionOn, EmitEvent, or
// SendMessages references pf in its expression-type, and none of those
// expression-types is Unknown.
func spuriousRead(ops []env.Operation, isCW func(contrib.Pseudofield) bool, pf contrib.Pseudofield) bool {
	for _, op := range ops {
		switch op.Kind {
		case env.OpWrite:
			if isCW(op.Field) {
				continue
			}
		case env.OpConditionOn, env.OpEmitEvent, env.OpSendMessages:
		default:
			continue
		}
		if etype.IsUnknown(op.Value) {
			return false
		}
		for _, ref := range pseudofieldSourcesIn(op.Value) {
			if ref.SameLocation(pf) {
				return false
			}
		}
	}
	return true
}

// pseudofieldSourcesIn collects every distinct pseudofield referenced by
// an expression-type's contributions, structurally.
func pseudofieldSourcesIn(et etype.ExpressionType) []contrib.Pseudofield {
	seen := map[string]contrib.Pseudofield{}
	var walk func(et etype.ExpressionType)
	walk = func(et etype.ExpressionType) {
		switch et.Kind {
		case etype.KindVal:
			for _, src := range et.Val.Contributions.Sources() {
				if src.Kind == contrib.SrcPseudofield {
					seen[src.Field.String()] = src.Field
				}
			}
		case etype.KindCompositeVal:
			walk(*et.Full)
			walk(*et.Special)
		case etype.KindOp:
			walk(*et.OpOperand)
		case etype.KindComposeSequence:
			for _, e := range et.Elements {
				walk(e)
			}
		case etype.KindComposeParallel:
			walk(*et.Cond)
			for _, c := range et.Clauses {
				walk(c)
			}
		case etype.KindApp:
			walk(*et.Callee)
			for _, a := range et.Args {
				walk(a)
			}
		}
	}
	walk(et)
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]contrib.Pseudofield, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}
