package contrib

import "sort"

// Contributions is a mapping from Contribution Source to Contribution
// Summary. Keys are unique; iteration order is not observable (callers
// needing a deterministic order use Sources(), which sorts canonically).
// Values are never mutated in place — every operation returns a new
// Contributions.
type Contributions struct {
	entries map[string]entry
}

type entry struct {
	Source  Source
	Summary Summary
}

// Empty returns the empty Contributions.
func Empty() Contributions {
	return Contributions{entries: map[string]entry{}}
}

// Single returns a Contributions with exactly one source.
func Single(src Source, sum Summary) Contributions {
	c := Empty()
	return c.With(src, sum)
}

// With returns a new Contributions with src bound to sum, replacing any
// prior binding for the same source key.
func (c Contributions) With(src Source, sum Summary) Contributions {
	out := make(map[string]entry, len(c.entries)+1)
	for k, v := range c.entries {
		out[k] = v
	}
	out[src.Key()] = entry{Source: src, Summary: sum}
	return Contributions{entries: out}
}

// Get looks up a source's summary.
func (c Contributions) Get(src Source) (Summary, bool) {
	e, ok := c.entries[src.Key()]
	return e.Summary, ok
}

// Len returns the number of distinct sources.
func (c Contributions) Len() int { return len(c.entries) }

// Sources returns the bound sources in a deterministic (key-sorted) order.
func (c Contributions) Sources() []Source {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Source, len(keys))
	for i, k := range keys {
		out[i] = c.entries[k].Source
	}
	return out
}

// MergeFunc resolves a conflict when a source is bound in both operands of
// a union.
type MergeFunc func(a, b Summary) Summary

// Union merges two Contributions by source, applying merge to sources
// present in both.
func (c Contributions) Union(o Contributions, merge MergeFunc) Contributions {
	out := make(map[string]entry, len(c.entries)+len(o.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	for k, v := range o.entries {
		if existing, ok := out[k]; ok {
			out[k] = entry{Source: existing.Source, Summary: merge(existing.Summary, v.Summary)}
			continue
		}
		out[k] = v
	}
	return Contributions{entries: out}
}

// Map returns a new Contributions with fn applied to every summary. Used to
// lift a builtin/Conditional operator across all sources, e.g.
// `Op(op, Val(ps, c))`.
func (c Contributions) Map(fn func(Summary) Summary) Contributions {
	out := make(map[string]entry, len(c.entries))
	for k, v := range c.entries {
		out[k] = entry{Source: v.Source, Summary: fn(v.Summary)}
	}
	return Contributions{entries: out}
}

// Filter returns a new Contributions containing only sources for which
// keep returns true.
func (c Contributions) Filter(keep func(Source) bool) Contributions {
	out := make(map[string]entry, len(c.entries))
	for k, v := range c.entries {
		if keep(v.Source) {
			out[k] = v
		}
	}
	return Contributions{entries: out}
}

// Contains reports whether src is bound.
func (c Contributions) Contains(src Source) bool {
	_, ok := c.entries[src.Key()]
	return ok
}
