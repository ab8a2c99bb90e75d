package digest

import (
	"testing"

	"github.com/contractshard/shardc/internal/constraint"
	"github.com/contractshard/shardc/internal/env"
)

func TestComputeOrderIndependent(t *testing.T) {
	a := TransitionResult{Name: "Incr", Summary: env.EmptySummary().Add(env.AcceptMoney()), Constraints: []constraint.Constraint{constraint.NewSenderShard()}}
	b := TransitionResult{Name: "Deposit", Summary: env.EmptySummary(), Constraints: nil}

	d1 := Compute([]TransitionResult{a, b})
	d2 := Compute([]TransitionResult{b, a})
	if d1 != d2 {
		t.Errorf("digest depends on input order: %q != %q", d1, d2)
	}
}

func TestComputeSensitiveToContent(t *testing.T) {
	a := TransitionResult{Name: "Incr", Summary: env.EmptySummary().Add(env.AcceptMoney())}
	b := TransitionResult{Name: "Incr", Summary: env.EmptySummary()}

	d1 := Compute([]TransitionResult{a})
	d2 := Compute([]TransitionResult{b})
	if d1 == d2 {
		t.Errorf("expected different digests for different summaries")
	}
}

func TestComputeHasSha256Prefix(t *testing.T) {
	got := Compute(nil)
	if len(got) < 7 || got[:7] != "sha256:" {
		t.Errorf("expected sha256: prefix, got %q", got)
	}
}
