package bootmap

import "fmt"

// RegionType classifies one contiguous range of physical memory. The type is
// 32 bits wide so the Region layout is identical on 32- and 64-bit builds.
type RegionType uint32

const (
	// RegionEmpty marks an unused map slot (zero value, zero-length range).
	RegionEmpty RegionType = iota
	// RegionUsable is free RAM.
	RegionUsable
	// RegionInUse is RAM that is already occupied.
	RegionInUse
	// RegionReserved is memory firmware declared unusable.
	RegionReserved
	// RegionAcpiReclaimable holds ACPI tables and may be reclaimed once they
	// are consumed.
	RegionAcpiReclaimable
	// RegionAcpiNvs is ACPI non-volatile storage.
	RegionAcpiNvs
	// RegionBadMemory is memory firmware reported as faulty.
	RegionBadMemory
	// RegionKernel holds the loaded kernel image.
	RegionKernel
	// RegionKernelStack holds the kernel stack.
	RegionKernelStack
	// RegionPageTable holds page tables built by the loader.
	RegionPageTable
	// RegionBootloader holds the bootloader itself.
	RegionBootloader
	// RegionFrameZero is the frame at physical address zero. Kept out of the
	// free pool so null-pointer mistakes never hand out frame 0.
	RegionFrameZero
	// RegionBootInfo holds the BootInfo structure.
	RegionBootInfo
	// RegionPackage holds the loaded payload.
	RegionPackage
)

var regionTypeNames = [...]string{
	RegionEmpty:           "Empty",
	RegionUsable:          "Usable",
	RegionInUse:           "InUse",
	RegionReserved:        "Reserved",
	RegionAcpiReclaimable: "AcpiReclaimable",
	RegionAcpiNvs:         "AcpiNvs",
	RegionBadMemory:       "BadMemory",
	RegionKernel:          "Kernel",
	RegionKernelStack:     "KernelStack",
	RegionPageTable:       "PageTable",
	RegionBootloader:      "Bootloader",
	RegionFrameZero:       "FrameZero",
	RegionBootInfo:        "BootInfo",
	RegionPackage:         "Package",
}

func (t RegionType) String() string {
	if int(t) < len(regionTypeNames) {
		return regionTypeNames[t]
	}
	return fmt.Sprintf("RegionType(%d)", uint32(t))
}

// Region is one classified range of physical frames. Regions are plain
// values; copying one is the only form of ownership transfer.
type Region struct {
	Range FrameRange
	Type  RegionType
}

// EmptyRegion returns the unused-slot sentinel: a zero-length range at
// physical address zero, tagged RegionEmpty. It is also the Region zero
// value.
func EmptyRegion() Region {
	return Region{}
}

// RegionOf builds a Region covering the frames that contain the half-open
// physical address range [startAddr, endAddr). Loaders use this to mark
// their own regions (kernel image, stacks, page tables) before inserting
// them with Map.AddRegion.
func RegionOf(startAddr, endAddr uint64, t RegionType) Region {
	return Region{
		Range: FrameRange{
			Start: FrameContaining(startAddr),
			End:   FrameContaining(endAddr),
		},
		Type: t,
	}
}

func (r Region) String() string {
	return fmt.Sprintf("%s %s", r.Range, r.Type)
}
