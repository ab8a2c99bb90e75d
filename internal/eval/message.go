package eval

import (
	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/etype"
)

// sendsMoneyMarker is the designated expression-type standing in for "an
// _amount slot that isn't statically known to be a PCM unit".
func sendsMoneyMarker() etype.ExpressionType {
	return etype.Val(contrib.Known{Precision: contrib.SubsetOf, Contributions: contrib.Empty()})
}

// evalMessage implements Message(bindings) → CompositeVal(full, special).
func (ev *Evaluator) evalMessage(environment env.Environment, fpCount int, e cast.Expr) (etype.ExpressionType, error) {
	payload := make([]etype.ExpressionType, 0, len(e.MessageFields))
	var specialParts []etype.ExpressionType

	for _, f := range e.MessageFields {
		fieldET, err := ev.Eval(environment, fpCount, f.Value)
		if err != nil {
			return etype.ExpressionType{}, err
		}
		payload = append(payload, fieldET)

		switch f.Label {
		case cast.LabelAmount:
			if ev.isKnownPCMUnit(environment, f.Value) {
				specialParts = append(specialParts, etype.Nothing())
			} else {
				specialParts = append(specialParts, sendsMoneyMarker())
			}
		case cast.LabelRecipient:
			specialParts = append(specialParts, fieldET)
		}
	}

	full := etype.ComposeParallel(etype.Nothing(), payload)
	special := etype.Nothing()
	if len(specialParts) > 0 {
		special = etype.ComposeSequence(specialParts)
	}
	return etype.CompositeVal(full, special), nil
}

// isKnownPCMUnit reports whether amount is a zero literal, or an
// identifier statically known (via its IdentSig) to be a PCM unit.
func (ev *Evaluator) isKnownPCMUnit(environment env.Environment, amount cast.Expr) bool {
	if amount.Kind == cast.ExprLiteral {
		// The amount's static type isn't threaded through here, so every
		// registered PCM's unit-literal recognizer is consulted.
		for _, id := range ev.Registry.IDs() {
			p, _ := ev.Registry.Lookup(id)
			if p.IsUnitLiteral(amount) {
				return true
			}
		}
		return false
	}
	if amount.Kind == cast.ExprVar {
		sig, ok := environment.Lookup(amount.Name)
		if !ok || sig.Kind != env.SigIdent {
			return false
		}
		return len(sig.PCMMembers) > 0
	}
	return false
}
