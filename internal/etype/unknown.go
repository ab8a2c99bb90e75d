package etype

import "github.com/contractshard/shardc/internal/contrib"

// IsUnknown reports whether et is Unknown-infected: it is Unknown itself,
// a Val whose contributions carry an unknown source, or any subterm is.
func IsUnknown(et ExpressionType) bool {
	switch et.Kind {
	case KindUnknown:
		return true
	case KindVal:
		return valHasUnknownSource(et.Val)
	case KindCompositeVal:
		return IsUnknown(*et.Full) || IsUnknown(*et.Special)
	case KindOp:
		return IsUnknown(*et.OpOperand)
	case KindComposeSequence:
		for _, e := range et.Elements {
			if IsUnknown(e) {
				return true
			}
		}
		return false
	case KindComposeParallel:
		if IsUnknown(*et.Cond) {
			return true
		}
		for _, c := range et.Clauses {
			if IsUnknown(c) {
				return true
			}
		}
		return false
	case KindFun:
		if et.Def.IsOpaque {
			return false
		}
		if et.Def.Inline != nil {
			return IsUnknown(*et.Def.Inline)
		}
		return false
	case KindApp:
		if IsUnknown(*et.Callee) {
			return true
		}
		for _, a := range et.Args {
			if IsUnknown(a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func valHasUnknownSource(k contrib.Known) bool {
	for _, src := range k.Contributions.Sources() {
		if src.Kind == contrib.SrcUnknown {
			return true
		}
	}
	return false
}
