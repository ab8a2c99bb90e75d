package analyzer

import (
	"context"
	"testing"

	"github.com/contractshard/shardc/internal/cast"
	"github.com/contractshard/shardc/internal/constraint"
	"github.com/contractshard/shardc/internal/env"
	"github.com/contractshard/shardc/internal/hostconfig"
	"github.com/contractshard/shardc/internal/pcm"
)

func ptr(e cast.Expr) *cast.Expr { return &e }
func lit(l string) cast.Expr    { return cast.Expr{Kind: cast.ExprLiteral, Literal: l} }
func v(name string) cast.Expr   { return cast.Expr{Kind: cast.ExprVar, Name: name} }

// incrementBody is scenario S1: a plain commutative counter
// increment with no other reference to the field.
func incrementBody() []cast.Stmt {
	return []cast.Stmt{
		{Kind: cast.StmtLoad, Binder: "v", Field: "counter"},
		{Kind: cast.StmtBind, Binder: "one", Value: ptr(lit("1"))},
		{Kind: cast.StmtBind, Binder: "v2", Value: ptr(cast.Expr{
			Kind: cast.ExprBuiltin, Builtin: "add",
			Args: []cast.Expr{v("v"), v("one")},
		})},
		{Kind: cast.StmtStore, Field: "counter", Value: ptr(v("v2"))},
	}
}

// TestAnalyzeModulePlainIncrement runs the full pipeline over a single
// S1-shaped transition, end to end: the only constraint should be
// MustHavePCM(counter, integer_add), with no MustOwn (the Read is
// spurious).
func TestAnalyzeModulePlainIncrement(t *testing.T) {
	mod := &cast.Module{
		Name: "Counter",
		Components: []cast.Component{
			{Name: "Increment", Kind: cast.KindTransition, Body: incrementBody()},
		},
	}

	a := New(pcm.Default(), hostconfig.Default())
	result, err := a.AnalyzeModule(context.Background(), mod)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Transitions) != 1 || result.Transitions[0].Name != "Increment" {
		t.Fatalf("expected one transition Increment, got %+v", result.Transitions)
	}
	if result.Digest == "" {
		t.Fatal("expected a non-empty digest")
	}

	cs := result.Transitions[0].Constraints
	foundPCM, foundMustOwn := false, false
	for _, c := range cs {
		switch c.Kind {
		case constraint.MustHavePCM:
			foundPCM = true
		case constraint.MustOwn:
			foundMustOwn = true
		}
	}
	if !foundPCM {
		t.Errorf("expected MustHavePCM in %+v", cs)
	}
	if foundMustOwn {
		t.Errorf("expected no MustOwn for a spurious read, got %+v", cs)
	}
}

// TestAnalyzeModuleProcedureProducesNoConstraints checks that procedures
// contribute to the environment (so callers can resolve them) but never
// appear in the transition output themselves.
func TestAnalyzeModuleProcedureProducesNoConstraints(t *testing.T) {
	mod := &cast.Module{
		Name: "Counter",
		Components: []cast.Component{
			{Name: "bump", Kind: cast.KindProcedure, Body: incrementBody()},
			{Name: "Increment", Kind: cast.KindTransition, Body: []cast.Stmt{
				{Kind: cast.StmtCallProc, Proc: "bump"},
			}},
		},
	}

	a := New(pcm.Default(), hostconfig.Default())
	result, err := a.AnalyzeModule(context.Background(), mod)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Transitions) != 1 || result.Transitions[0].Name != "Increment" {
		t.Fatalf("expected exactly the transition Increment, got %+v", result.Transitions)
	}
}

// TestAnalyzeModuleCustomImplicitComponentParam checks that a host config
// naming an implicit component parameter other than "_sender" is honored
// both when binding a component's own environment and when translating a
// CallProc into the caller's coordinates — the two binding sites must
// agree on the same host-supplied name and position, or a procedure
// referencing the implicit parameter fails to resolve at the call site.
func TestAnalyzeModuleCustomImplicitComponentParam(t *testing.T) {
	host := &hostconfig.HostConfig{
		ImplicitComponentParams: []cast.ContractParam{{Name: "_origin"}},
		FieldMapDepth:           map[string]int{},
	}
	mod := &cast.Module{
		Name: "Originator",
		Components: []cast.Component{
			{Name: "bump", Kind: cast.KindProcedure, Body: []cast.Stmt{
				{Kind: cast.StmtStore, Field: "lastOrigin", Value: ptr(v("_origin"))},
			}},
			{Name: "Touch", Kind: cast.KindTransition, Body: []cast.Stmt{
				{Kind: cast.StmtCallProc, Proc: "bump"},
			}},
		},
	}

	a := New(pcm.Default(), host)
	result, err := a.AnalyzeModule(context.Background(), mod)
	if err != nil {
		t.Fatalf("expected the implicit parameter to resolve through CallProc translation, got: %v", err)
	}

	var foundWrite bool
	for _, op := range result.Transitions[0].Summary.Operations() {
		if op.Kind == env.OpWrite {
			foundWrite = true
			if len(op.Value.Val.Contributions.Sources()) == 0 {
				t.Error("expected the translated write to carry a contribution from _origin, got none")
			}
		}
	}
	if !foundWrite {
		t.Error("expected a translated Write(lastOrigin, …) in the transition's summary")
	}
}

// TestAnalyzeModuleLibraryBinding exercises the library-folding phase: a
// library-defined constant is visible to a transition referencing it.
func TestAnalyzeModuleLibraryBinding(t *testing.T) {
	mod := &cast.Module{
		Name: "Counter",
		Library: []cast.LibraryEntry{
			{Name: "one", Expr: ptr(lit("1"))},
		},
		Components: []cast.Component{
			{Name: "Increment", Kind: cast.KindTransition, Body: []cast.Stmt{
				{Kind: cast.StmtLoad, Binder: "v", Field: "counter"},
				{Kind: cast.StmtBind, Binder: "v2", Value: ptr(cast.Expr{
					Kind: cast.ExprBuiltin, Builtin: "add",
					Args: []cast.Expr{v("v"), v("one")},
				})},
				{Kind: cast.StmtStore, Field: "counter", Value: ptr(v("v2"))},
			}},
		},
	}

	a := New(pcm.Default(), hostconfig.Default())
	if _, err := a.AnalyzeModule(context.Background(), mod); err != nil {
		t.Fatal(err)
	}
}
