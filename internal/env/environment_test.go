package env

import (
	"testing"

	"github.com/contractshard/shardc/internal/etype"
)

func TestShadowStatusAssignment(t *testing.T) {
	e := New().WithComponentParams([]string{"sender"})

	// A fresh name does not shadow.
	e2 := e.BindVal("local", etype.Nothing())
	sig, ok := e2.Lookup("local")
	if !ok || sig.ShadowStatus != DoesNotShadow {
		t.Fatalf("expected fresh name DoesNotShadow, got %+v ok=%v", sig, ok)
	}

	// The component parameter's own binding is ComponentParameter.
	sig, ok = e2.Lookup("sender")
	if !ok || sig.ShadowStatus != ComponentParameter {
		t.Fatalf("expected sender ComponentParameter, got %+v ok=%v", sig, ok)
	}

	// A later binder reusing the parameter's name shadows it.
	e3 := e2.BindVal("sender", etype.Nothing())
	sig, ok = e3.Lookup("sender")
	if !ok || sig.ShadowStatus != ShadowsComponentParameter {
		t.Fatalf("expected rebinding sender to shadow, got %+v ok=%v", sig, ok)
	}
}

func TestBindDoesNotMutatePriorSnapshot(t *testing.T) {
	e1 := New()
	e2 := e1.BindVal("x", etype.Nothing())
	if _, ok := e1.Lookup("x"); ok {
		t.Error("expected prior environment snapshot to be unaffected by later Bind")
	}
	if _, ok := e2.Lookup("x"); !ok {
		t.Error("expected new environment to have the binding")
	}
}

func TestComponentSummaryMonotone(t *testing.T) {
	s := EmptySummary()
	s2 := s.Add(AcceptMoney())
	if s.Len() != 0 {
		t.Error("Add must not mutate the receiver")
	}
	if s2.Len() != 1 {
		t.Fatalf("expected 1 operation, got %d", s2.Len())
	}
	s3 := s2.Add(AcceptMoney())
	if s3.Len() != 1 {
		t.Errorf("adding a duplicate operation must not grow the set, got %d", s3.Len())
	}
}
