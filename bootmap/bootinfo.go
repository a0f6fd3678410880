package bootmap

// BootInfo is the handoff structure passed from the bootloader to the kernel.
// It aggregates everything about the address space and memory layout that
// the kernel cannot discover on its own. It is constructed exactly once,
// after the memory map is finished, and must be treated as immutable by the
// consumer.
type BootInfo struct {
	// PageTableRootAddr is the physical address of the root page table the
	// loader built (the PML4 on x86-64).
	PageTableRootAddr uint64

	// MemoryMap is the canonical memory map: sorted, non-overlapping, typed.
	MemoryMap Map

	// Package is a borrowed view of the loaded payload. The bytes live in
	// memory owned by the loader for the whole handoff window; no allocator
	// exists to copy them, and none is needed.
	Package []byte
}

// NewBootInfo assembles the handoff structure. The map is copied by value so
// the BootInfo snapshot cannot be mutated through the construction-time
// pointer; package bytes are borrowed, never copied.
func NewBootInfo(pageTableRootAddr uint64, m *Map, pkg []byte) BootInfo {
	return BootInfo{
		PageTableRootAddr: pageTableRootAddr,
		MemoryMap:         *m,
		Package:           pkg,
	}
}
