// Package bootmap builds the physical-memory map a bootloader hands to the
// kernel it loads.
//
// # Overview
//
// This package ingests the raw E820-style memory descriptor table supplied by
// firmware, classifies each entry, and normalizes the result into a canonical,
// sorted, non-overlapping sequence of typed regions. The finished map is
// packaged together with the page-table root address and the loaded payload
// into a single BootInfo value that crosses the boot-to-kernel transition
// exactly once.
//
// The whole construction runs before any dynamic memory management exists:
// there is no heap allocation anywhere on the build path, all storage is a
// fixed 32-slot array plus stack locals, and every structure keeps an
// explicit 64-bit layout so a 32-bit boot stub and a 64-bit loader agree on
// offsets.
//
// # Key Types
//
//   - Frame / FrameRange: fixed-size physical page frames and half-open
//     ranges of them, the granularity of the map
//   - Region: one contiguous frame range with a RegionType classification
//   - Map: the fixed-capacity, always-sorted container of regions
//   - BootInfo: the immutable handoff aggregate consumed by the kernel
//
// # Building a Map
//
// The firmware path reads the descriptor table straight out of memory:
//
//	m, err := bootmap.ReadMap(tableAddr, entryCount)
//	if err != nil {
//	    // halt: the firmware map cannot be trusted
//	}
//
// The loader then marks its own regions (kernel image, stacks, page tables)
// through the same AddRegion path; every insertion re-sorts, so insertion
// order never matters.
//
// # Error Model
//
// All three terminal conditions - an unknown firmware region type, an
// overlap between two authoritative regions, and map capacity exhaustion -
// are unrecoverable for a boot sequence. They are reported as wrapped
// sentinel errors (ErrUnknownRegionType, ErrUnresolvedOverlap, ErrMapFull)
// so the caller can identify the condition and halt with a diagnostic.
package bootmap
