package etype

import (
	"fmt"
	"strings"
)

// Canonical renders et as a deterministic string, used wherever set
// membership or output ordering needs a stable key derived from an
// expression-type's abstract structure.
func Canonical(et ExpressionType) string {
	var b strings.Builder
	writeCanonical(&b, et)
	return b.String()
}

func writeCanonical(b *strings.Builder, et ExpressionType) {
	switch et.Kind {
	case KindUnknown:
		b.WriteString("unknown")
	case KindVal:
		b.WriteString("val(")
		b.WriteString(et.Val.Precision.String())
		b.WriteString(";")
		for _, src := range et.Val.Contributions.Sources() {
			sum, _ := et.Val.Contributions.Get(src)
			fmt.Fprintf(b, "%s=%s[", src.Key(), sum.Cardinality.String())
			for i, op := range sum.Ops.Sorted() {
				if i > 0 {
					b.WriteString(",")
				}
				b.WriteString(op.String())
			}
			b.WriteString("];")
		}
		b.WriteString(")")
	case KindCompositeVal:
		b.WriteString("composite(")
		writeCanonical(b, *et.Full)
		b.WriteString("|")
		writeCanonical(b, *et.Special)
		b.WriteString(")")
	case KindOp:
		b.WriteString("op(")
		b.WriteString(et.Op.String())
		b.WriteString(",")
		writeCanonical(b, *et.OpOperand)
		b.WriteString(")")
	case KindComposeSequence:
		b.WriteString("seq(")
		for i, e := range et.Elements {
			if i > 0 {
				b.WriteString(",")
			}
			writeCanonical(b, e)
		}
		b.WriteString(")")
	case KindComposeParallel:
		b.WriteString("par(")
		writeCanonical(b, *et.Cond)
		b.WriteString(";")
		for i, c := range et.Clauses {
			if i > 0 {
				b.WriteString(",")
			}
			writeCanonical(b, c)
		}
		b.WriteString(")")
	case KindFun:
		b.WriteString("fun(")
		for i, l := range et.Levels {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, "%d", l)
		}
		b.WriteString(";")
		if et.Def.IsOpaque {
			b.WriteString(et.Def.Opaque.Key())
		} else {
			writeCanonical(b, *et.Def.Inline)
		}
		b.WriteString(")")
	case KindApp:
		b.WriteString("app(")
		writeCanonical(b, *et.Callee)
		for _, a := range et.Args {
			b.WriteString(",")
			writeCanonical(b, a)
		}
		b.WriteString(")")
	}
}
