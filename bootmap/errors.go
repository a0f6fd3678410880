package bootmap

import "errors"

// All three conditions are unrecoverable for a boot sequence: the kernel
// cannot be started on top of an untrustworthy memory map. Callers are
// expected to halt with a diagnostic, not to retry or continue with a
// partial map.
var (
	// ErrMapFull indicates an insertion beyond the fixed MaxRegions capacity.
	ErrMapFull = errors.New("bootmap: memory map full")
	// ErrUnknownRegionType indicates a firmware descriptor carried a type
	// code outside the recognized range. There is no safe default
	// classification for memory of unknown use.
	ErrUnknownRegionType = errors.New("bootmap: unknown firmware region type")
	// ErrUnresolvedOverlap indicates two non-usable regions claim the same
	// physical memory, so the firmware map contradicts itself.
	ErrUnresolvedOverlap = errors.New("bootmap: non-usable regions overlap")
)
