// Package constraint implements the constraint synthesizer: reduces a component summary to the set of sharding constraints
// a runtime scheduler enforces.
package constraint

import "github.com/contractshard/shardc/internal/contrib"

// Kind discriminates Sharding Constraint variants.
type Kind int

const (
	// MustOwn: the shard executing this transition must be authoritative
	// for this pseudofield.
	MustOwn Kind = iota
	// MustAcceptWeakRead: reads of this pseudofield may observe stale
	// values. Not emitted by Synthesize — no trigger rule for it exists
	// yet; kept as a representable output for a future, more precise
	// refinement (see DESIGN.md).
	MustAcceptWeakRead
	// MustHavePCM: a commutative write participates in the named PCM.
	MustHavePCM
	// AddrMustBeNonContract: a message recipient, a procedure parameter by
	// index, must not itself be a contract address.
	AddrMustBeNonContract
	// MustNotHaveDuplicates: the named argument indices must be pairwise
	// distinct to prevent map-key aliasing. Not emitted by Synthesize for
	// the same reason as MustAcceptWeakRead.
	MustNotHaveDuplicates
	// SenderShard: this transition must execute in the sender's shard.
	SenderShard
	// Unsat: no shard placement is admissible.
	Unsat
)

func (k Kind) String() string {
	switch k {
	case MustOwn:
		return "MustOwn"
	case MustAcceptWeakRead:
		return "MustAcceptWeakRead"
	case MustHavePCM:
		return "MustHavePCM"
	case AddrMustBeNonContract:
		return "AddrMustBeNonContract"
	case MustNotHaveDuplicates:
		return "MustNotHaveDuplicates"
	case SenderShard:
		return "SenderShard"
	case Unsat:
		return "Unsat"
	default:
		return "invalid"
	}
}

// Constraint is a single Sharding Constraint. Only the fields relevant to
// Kind are populated.
type Constraint struct {
	Kind Kind

	// MustOwn, MustAcceptWeakRead, MustHavePCM: the pseudofield.
	Field contrib.Pseudofield

	// MustHavePCM: the PCM identifier.
	PCMID string

	// AddrMustBeNonContract: the procedure-parameter index.
	ProcParamIdx int

	// MustNotHaveDuplicates: the argument indices.
	Indices []int
}

func NewMustOwn(f contrib.Pseudofield) Constraint {
	return Constraint{Kind: MustOwn, Field: f}
}

func NewMustHavePCM(f contrib.Pseudofield, pcmID string) Constraint {
	return Constraint{Kind: MustHavePCM, Field: f, PCMID: pcmID}
}

func NewAddrMustBeNonContract(idx int) Constraint {
	return Constraint{Kind: AddrMustBeNonContract, ProcParamIdx: idx}
}

func NewSenderShard() Constraint { return Constraint{Kind: SenderShard} }

func NewUnsat() Constraint { return Constraint{Kind: Unsat} }

// Key renders a canonical string for deduplication and deterministic
// output ordering.
func (c Constraint) Key() string {
	switch c.Kind {
	case MustOwn, MustAcceptWeakRead:
		return c.Kind.String() + ":" + c.Field.String()
	case MustHavePCM:
		return c.Kind.String() + ":" + c.Field.String() + ":" + c.PCMID
	case AddrMustBeNonContract:
		return c.Kind.String() + ":" + itoa(c.ProcParamIdx)
	case MustNotHaveDuplicates:
		s := c.Kind.String() + ":"
		for i, idx := range c.Indices {
			if i > 0 {
				s += ","
			}
			s += itoa(idx)
		}
		return s
	default:
		return c.Kind.String()
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
