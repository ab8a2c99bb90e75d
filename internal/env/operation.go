// Package env implements the analysis environment and the signature and
// effect types it binds names to.
package env

import (
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/etype"
)

// OperationKind discriminates Component Operation variants.
type OperationKind int

const (
	OpRead OperationKind = iota
	OpWrite
	OpAcceptMoney
	OpConditionOn
	OpEmitEvent
	OpSendMessages
	OpAlwaysExclusive
)

func (k OperationKind) String() string {
	switch k {
	case OpRead:
		return "Read"
	case OpWrite:
		return "Write"
	case OpAcceptMoney:
		return "AcceptMoney"
	case OpConditionOn:
		return "ConditionOn"
	case OpEmitEvent:
		return "EmitEvent"
	case OpSendMessages:
		return "SendMessages"
	case OpAlwaysExclusive:
		return "AlwaysExclusive"
	default:
		return "invalid"
	}
}

// Operation is a Component Operation: one recorded effect of a
// transition/procedure body.
type Operation struct {
	Kind OperationKind

	// OpRead, OpWrite: the pseudofield touched.
	Field contrib.Pseudofield

	// OpWrite, OpConditionOn, OpEmitEvent, OpSendMessages: the associated
	// expression-type.
	Value etype.ExpressionType

	// OpAlwaysExclusive: optional triggering location and a human reason.
	HasLocation bool
	Reason      string
}

func Read(f contrib.Pseudofield) Operation {
	return Operation{Kind: OpRead, Field: f}
}

func Write(f contrib.Pseudofield, v etype.ExpressionType) Operation {
	return Operation{Kind: OpWrite, Field: f, Value: v}
}

func AcceptMoney() Operation { return Operation{Kind: OpAcceptMoney} }

func ConditionOn(v etype.ExpressionType) Operation {
	return Operation{Kind: OpConditionOn, Value: v}
}

func EmitEvent(v etype.ExpressionType) Operation {
	return Operation{Kind: OpEmitEvent, Value: v}
}

func SendMessages(v etype.ExpressionType) Operation {
	return Operation{Kind: OpSendMessages, Value: v}
}

func AlwaysExclusive(f contrib.Pseudofield, hasLocation bool, reason string) Operation {
	return Operation{Kind: OpAlwaysExclusive, Field: f, HasLocation: hasLocation, Reason: reason}
}

// Key returns a canonical string: two operations are the same member of a
// Component Summary iff their keys match.
func (o Operation) Key() string {
	switch o.Kind {
	case OpRead:
		return "read:" + o.Field.String()
	case OpWrite:
		return "write:" + o.Field.String() + ":" + etype.Canonical(o.Value)
	case OpAcceptMoney:
		return "accept"
	case OpConditionOn:
		return "cond:" + etype.Canonical(o.Value)
	case OpEmitEvent:
		return "event:" + etype.Canonical(o.Value)
	case OpSendMessages:
		return "send:" + etype.Canonical(o.Value)
	case OpAlwaysExclusive:
		loc := ""
		if o.HasLocation {
			loc = o.Field.String()
		}
		return "excl:" + loc + ":" + o.Reason
	default:
		return "invalid"
	}
}
