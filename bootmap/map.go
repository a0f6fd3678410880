package bootmap

import (
	"fmt"
	"strings"
)

// MaxRegions is the fixed capacity of a Map. 32 slots comfortably covers
// firmware tables plus the handful of loader-marked regions; the bound is a
// compile-time constant because the map is built before any allocator
// exists.
const MaxRegions = 32

// Map is a fixed-capacity, always-sorted sequence of memory regions.
//
// Live entries occupy indices [0, next); every slot at or beyond next holds
// the empty sentinel. After any Sort the live entries are ordered by
// (Range.Start, Range.End) ascending. The cursor is a uint64 rather than an
// int so the struct layout is identical on 32- and 64-bit builds; the map is
// embedded in BootInfo, which crosses a boot-stub/loader boundary where both
// sides must agree on offsets.
//
// A Map has exactly one writer and no concurrent readers until it is handed
// off inside a BootInfo; it needs and has no synchronization.
type Map struct {
	entries [MaxRegions]Region
	next    uint64
}

// NewMap returns an empty map: all slots hold the empty sentinel and the
// cursor is zero. The zero value of Map is equally usable.
func NewMap() *Map {
	return &Map{}
}

// Len returns the number of live regions.
func (m *Map) Len() int {
	return int(m.next)
}

// Regions returns the live regions as an ordered view. Slots beyond the
// cursor are never exposed. The view aliases the map's storage; callers must
// treat it as read-only.
func (m *Map) Regions() []Region {
	return m.entries[:m.next]
}

// AddRegion inserts region and re-sorts the map. It returns ErrMapFull when
// all MaxRegions slots are live; an over-capacity insert must fail loudly
// rather than write out of bounds or overwrite a live entry.
//
// Re-sorting on every insertion keeps the map canonical for any observer at
// any time, so loader-marked regions and firmware regions can be inserted in
// any order.
func (m *Map) AddRegion(region Region) error {
	if m.next >= MaxRegions {
		return fmt.Errorf("bootmap: cannot add %s: %w", region, ErrMapFull)
	}
	m.entries[m.next] = region
	m.next++
	m.Sort()
	return nil
}

// regionLess is the sort order: by Range.Start, ties by Range.End, with
// empty-range sentinels always last regardless of address.
func regionLess(a, b Region) bool {
	if a.Range.IsEmpty() {
		return false
	}
	if b.Range.IsEmpty() {
		return true
	}
	if a.Range.Start != b.Range.Start {
		return a.Range.Start < b.Range.Start
	}
	return a.Range.End < b.Range.End
}

// Sort orders all slots by regionLess and recomputes the cursor as the index
// of the first empty sentinel. Recomputing is essential: sorting can move an
// empty sentinel that sat below the cursor (an emptied or zero-length entry)
// past the live prefix.
//
// Insertion sort over the fixed array, not sort.Slice: the build path must
// stay allocation-free and sort.Slice escapes its closure to the heap.
func (m *Map) Sort() {
	for i := 1; i < len(m.entries); i++ {
		r := m.entries[i]
		j := i
		for j > 0 && regionLess(r, m.entries[j-1]) {
			m.entries[j] = m.entries[j-1]
			j--
		}
		m.entries[j] = r
	}

	m.next = MaxRegions
	for i := range m.entries {
		if m.entries[i].Range.IsEmpty() {
			m.next = uint64(i)
			break
		}
	}
}

// Normalize resolves overlaps between adjacent regions in a single forward
// scan. The map must already be sorted, which AddRegion guarantees.
//
// A usable region overlapping its successor is truncated to the successor's
// start: free-RAM claims are the least authoritative, so usable memory
// yields to whatever follows. Two overlapping non-usable regions mean the
// firmware map itself is contradictory; there is no safe way to pick a
// winner, so Normalize reports ErrUnresolvedOverlap naming both regions.
//
// The scan assumes overlaps are pairwise: trimming the earlier, usable
// region of each overlapping pair resolves it. Normalize is idempotent on
// already-normalized input.
func (m *Map) Normalize() error {
	live := m.entries[:m.next]
	for i := 0; i+1 < len(live); i++ {
		region, next := &live[i], live[i+1]
		if region.Range.End <= next.Range.Start {
			continue
		}
		if region.Type != RegionUsable {
			return fmt.Errorf("bootmap: %s and %s: %w", *region, next, ErrUnresolvedOverlap)
		}
		region.Range.End = next.Range.Start
	}
	return nil
}

// TotalUsable returns the number of bytes of usable RAM in the map. Call it
// after Normalize; overlapping usable regions would otherwise be counted
// twice.
func (m *Map) TotalUsable() uint64 {
	var total uint64
	for _, r := range m.Regions() {
		if r.Type == RegionUsable {
			total += r.Range.Size()
		}
	}
	return total
}

func (m *Map) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range m.Regions() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}
