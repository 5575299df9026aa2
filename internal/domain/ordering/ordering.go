// Package ordering implements the position rules shared by the column and
// note ordering domains.
//
// A scope is the set of entities whose positions must be unique and densely
// packed: a user's columns, or a user's active notes in one column (or in the
// unfiled lane). Every function here is pure. It takes a snapshot of a scope
// and returns the position writes that move the scope to its next state;
// callers persist those writes in a single transaction.
//
// Two bases coexist. Appends start at 1 and bulk reorders assign list
// indexes starting at 0, so a densely packed scope is either 0..N-1 or 1..N.
package ordering

import (
	"cmp"
	"errors"
	"slices"
)

// ErrNotInScope is returned when the item being moved is not part of the
// scope snapshot it is moved within.
var ErrNotInScope = errors.New("ordering: item not in scope")

// Item is one entry of a scope snapshot.
type Item struct {
	ID       string
	Position int
}

// Change is a single position write.
type Change struct {
	ID       string
	Position int
}

// Next returns the append position for a scope whose highest position is
// maxPos. An empty scope (found == false) starts at 1.
func Next(maxPos int, found bool) int {
	if !found {
		return 1
	}
	return maxPos + 1
}

// Base returns the first position of a scope: 0 when any item sits at
// position 0 (the scope was bulk-reordered), otherwise 1.
func Base(items []Item) int {
	for _, it := range items {
		if it.Position == 0 {
			return 0
		}
	}
	return 1
}

// Bounds returns the lowest and highest positions held in items.
// ok is false for an empty scope.
func Bounds(items []Item) (lo, hi int, ok bool) {
	if len(items) == 0 {
		return 0, 0, false
	}
	lo, hi = items[0].Position, items[0].Position
	for _, it := range items[1:] {
		lo = min(lo, it.Position)
		hi = max(hi, it.Position)
	}
	return lo, hi, true
}

// Move repositions id inside its own scope and cascades the siblings between
// the old and the new slot. Moving earlier shifts every sibling in [to, old)
// by +1; moving later shifts every sibling in (old, to] by -1. The target is
// clamped to the scope's current bounds so a move never opens a gap.
//
// The returned position is the one assigned to id. The first change is
// always the moved item itself; an empty change list means nothing moved.
func Move(items []Item, id string, to int) (int, []Change, error) {
	idx := slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
	if idx < 0 {
		return 0, nil, ErrNotInScope
	}
	from := items[idx].Position

	lo, hi, _ := Bounds(items)
	to = min(max(to, lo), hi)
	if to == from {
		return to, nil, nil
	}

	changes := []Change{{ID: id, Position: to}}
	for _, it := range byPosition(items) {
		if it.ID == id {
			continue
		}
		switch {
		case to < from && it.Position >= to && it.Position < from:
			changes = append(changes, Change{ID: it.ID, Position: it.Position + 1})
		case to > from && it.Position > from && it.Position <= to:
			changes = append(changes, Change{ID: it.ID, Position: it.Position - 1})
		}
	}
	return to, changes, nil
}

// Compact closes the gap left by an item removed from position removed:
// every remaining item above it moves down by one. Changes are ordered by
// ascending original position.
func Compact(items []Item, removed int) []Change {
	var changes []Change
	for _, it := range byPosition(items) {
		if it.Position > removed {
			changes = append(changes, Change{ID: it.ID, Position: it.Position - 1})
		}
	}
	return changes
}

// Place inserts a new item id into the scope at the requested slot and
// densely renumbers the scope from its base. Existing items keep their
// relative order; the new item lands before every item positioned at or
// after at. A slot below the base or past the end is clamped.
//
// The returned position is the one assigned to id; the changes cover the
// existing items only.
func Place(items []Item, id string, at int) (int, []Change) {
	sorted := byPosition(items)
	idx := 0
	for idx < len(sorted) && sorted[idx].Position < at {
		idx++
	}

	base := Base(items)
	ordered := slices.Insert(sorted, idx, Item{ID: id, Position: -1})

	var changes []Change
	for i, it := range ordered {
		want := base + i
		if it.ID != id && it.Position != want {
			changes = append(changes, Change{ID: it.ID, Position: want})
		}
	}
	return base + idx, changes
}

// Arrange produces the full order of a scope after a bulk reorder: the
// listed ids present in the scope come first in list order, followed by the
// unlisted items in their previous relative order. Positions are assigned
// densely from base. Listed ids that are not in items are ignored.
func Arrange(listed []string, items []Item, base int) []Change {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	ordered := make([]Item, 0, len(items))
	seen := make(map[string]bool, len(listed))
	for _, id := range listed {
		it, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, it)
	}
	for _, it := range byPosition(items) {
		if !seen[it.ID] {
			ordered = append(ordered, it)
		}
	}

	var changes []Change
	for i, it := range ordered {
		if want := base + i; it.Position != want {
			changes = append(changes, Change{ID: it.ID, Position: want})
		}
	}
	return changes
}

// Renumber densely repacks a scope from base, keeping the current order.
func Renumber(items []Item, base int) []Change {
	return Arrange(nil, items, base)
}

// Without returns a copy of items minus the entry for id.
func Without(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// byPosition returns a copy of items sorted by position. The sort is stable
// so items sharing a position keep the order the store returned them in.
func byPosition(items []Item) []Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return sorted
}
