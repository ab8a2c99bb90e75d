package env

import "sort"

// ComponentSummary is a set of Operations; membership is
// structural-equality-based (via Operation.Key), order is irrelevant for
// semantics but preserved deterministically for output.
type ComponentSummary struct {
	ops map[string]Operation
}

// EmptySummary returns the empty Component Summary.
func EmptySummary() ComponentSummary {
	return ComponentSummary{ops: map[string]Operation{}}
}

// Add returns a new summary with op included. Invariant 6: callers never remove an operation, only add.
func (s ComponentSummary) Add(op Operation) ComponentSummary {
	out := make(map[string]Operation, len(s.ops)+1)
	for k, v := range s.ops {
		out[k] = v
	}
	out[op.Key()] = op
	return ComponentSummary{ops: out}
}

// Union returns the union of two summaries.
func (s ComponentSummary) Union(o ComponentSummary) ComponentSummary {
	out := make(map[string]Operation, len(s.ops)+len(o.ops))
	for k, v := range s.ops {
		out[k] = v
	}
	for k, v := range o.ops {
		out[k] = v
	}
	return ComponentSummary{ops: out}
}

// Has reports whether op is a member.
func (s ComponentSummary) Has(op Operation) bool {
	_, ok := s.ops[op.Key()]
	return ok
}

// Len returns the number of distinct operations.
func (s ComponentSummary) Len() int { return len(s.ops) }

// Operations returns the summary's operations in a deterministic
// (key-sorted) order.
func (s ComponentSummary) Operations() []Operation {
	keys := make([]string, 0, len(s.ops))
	for k := range s.ops {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Operation, len(keys))
	for i, k := range keys {
		out[i] = s.ops[k]
	}
	return out
}

// Filter returns the subset of operations for which keep returns true.
func (s ComponentSummary) Filter(keep func(Operation) bool) ComponentSummary {
	out := make(map[string]Operation, len(s.ops))
	for k, v := range s.ops {
		if keep(v) {
			out[k] = v
		}
	}
	return ComponentSummary{ops: out}
}

// HasAlwaysExclusive reports whether the summary contains any
// AlwaysExclusive operation — invariant 8.
func (s ComponentSummary) HasAlwaysExclusive() bool {
	for _, op := range s.ops {
		if op.Kind == OpAlwaysExclusive {
			return true
		}
	}
	return false
}

// WriteTo returns the first Write operation that satisfies f, if any.
func (s ComponentSummary) WriteTo(f func(Operation) bool) (Operation, bool) {
	for _, op := range s.ops {
		if op.Kind == OpWrite && f(op) {
			return op, true
		}
	}
	return Operation{}, false
}
