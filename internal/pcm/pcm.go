// Package pcm implements the partial-commutative-monoid registry:
// pluggable recognizers for data types whose independent writes commute,
// used by the constraint synthesizer to turn what would otherwise be an
// exclusive-ownership requirement into a weaker compatible-write one.
package pcm

import (
	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/contrib"
	"github.com/contractshard/shardc/internal/etype"
)

// Resolver looks up the expression-type bound to an identifier in scope,
// the same role an Environment plays during evaluation. It is expressed
// as a function rather than a concrete environment type so that this
// package has no dependency on internal/env.
type Resolver func(name string) (et etype.ExpressionType, ok bool)

// PCM is the capability set a partial-commutative-monoid module exposes.
// New monoids register an implementation of this interface; there is no
// base class to extend.
type PCM interface {
	// Identifier names this PCM for diagnostics and for MustHavePCM
	// constraint output.
	Identifier() string

	// IsApplicableType reports whether this PCM applies to a value of the
	// given type.
	IsApplicableType(t cast.Type) bool

	// IsUnitLiteral recognizes the unit value syntactically, without
	// needing to resolve identifiers.
	IsUnitLiteral(e cast.Expr) bool

	// IsOp reports whether op is this PCM's binary operation.
	IsOp(op contrib.Operator) bool

	// IsOpExpr reports whether e is exactly this PCM's binary operation
	// applied once each to the identifiers a and b (in either order).
	IsOpExpr(e cast.Expr, a, b string) bool

	// IsSpuriousConditionalExpr recognizes the PCM-unit and PCM-op
	// expression idioms over an option-typed scrutinee with exactly two
	// clauses (Some x => …, None => …).
	IsSpuriousConditionalExpr(scrutinee cast.Expr, clauses []cast.ExprClause) bool

	// IsSpuriousConditionalStmt recognizes the PCM-op statement idiom:
	// a map read whose expression-type is exactly the pseudofield value,
	// matched with a Some branch applying the PCM op to the binder and a
	// free variable, and a None branch storing that same free variable.
	IsSpuriousConditionalStmt(scrutineeVal etype.ExpressionType, scrutinee cast.Expr, clauses []cast.StmtClause) bool
}
