// Package digest computes a deterministic, order-independent fingerprint
// over an analysis run's per-transition output.
package digest

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/contractshard/shardc/internal/constraint"
	"github.com/contractshard/shardc/internal/env"
)

// TransitionResult is one transition's analysis output: procedures produce no output of their own, only transitions
// do.
type TransitionResult struct {
	Name        string
	Summary     env.ComponentSummary
	Constraints []constraint.Constraint
}

// SortTransitions sorts results by name, the total ordering this package
// and any consumer rendering a module's results share (mirrors the
// teacher's SortResources: one canonical order used everywhere an
// ordered view is needed).
func SortTransitions(results []TransitionResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
}

// Compute returns a deterministic "sha256:<hex>" digest over results,
// independent of the slice's input order.
//
// Algorithm:
//  1. Sort by transition name (SortTransitions).
//  2. Render each transition as its name, then "|ops:" and each
//     operation's Key() in summary order, then "|constraints:" and each
//     constraint's Key() in sorted order, every key followed by ";".
//  3. Concatenate every transition's rendering with a newline separator.
//  4. SHA256 the result.
func Compute(results []TransitionResult) string {
	sorted := make([]TransitionResult, len(results))
	copy(sorted, results)
	SortTransitions(sorted)

	h := sha256.New()
	for i, r := range sorted {
		h.Write([]byte(render(r)))
		if i < len(sorted)-1 {
			h.Write([]byte("\n"))
		}
	}
	return fmt.Sprintf("sha256:%x", h.Sum(nil))
}

func render(r TransitionResult) string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString("|ops:")
	for _, op := range r.Summary.Operations() {
		b.WriteString(op.Key())
		b.WriteString(";")
	}
	b.WriteString("|constraints:")
	keys := make([]string, len(r.Constraints))
	for i, c := range r.Constraints {
		keys[i] = c.Key()
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(";")
	}
	return b.String()
}
