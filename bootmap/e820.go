package bootmap

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/bootkit/internal/buf"
	"github.com/joshuapare/bootkit/internal/e820"
)

// regionFromDescriptor classifies one raw firmware descriptor. Type codes
// 1-5 map one-to-one onto the firmware-producible region types; any other
// code is fatal, because memory of unknown use can be neither handed out nor
// safely skipped.
//
// Both range bounds round down to the containing frame, so a descriptor
// ending mid-frame drops its partial trailing frame (see FrameContaining).
func regionFromDescriptor(d e820.Descriptor) (Region, error) {
	var t RegionType
	switch d.Type {
	case e820.TypeUsable:
		t = RegionUsable
	case e820.TypeReserved:
		t = RegionReserved
	case e820.TypeAcpiReclaimable:
		t = RegionAcpiReclaimable
	case e820.TypeAcpiNvs:
		t = RegionAcpiNvs
	case e820.TypeBadMemory:
		t = RegionBadMemory
	default:
		return Region{}, fmt.Errorf("bootmap: descriptor %s: %w", d, ErrUnknownRegionType)
	}
	return Region{
		Range: FrameRange{
			Start: FrameContaining(d.StartAddr),
			End:   FrameContaining(d.StartAddr + d.Length),
		},
		Type: t,
	}, nil
}

// tableAt returns a byte view of the raw descriptor table at addr.
//
// This is the only raw-memory access in the package. No bounds information
// exists beyond the caller-supplied count, so the caller must guarantee that
// addr points at a valid table of exactly count records and that the memory
// stays valid and unwritten for the duration of the read. During early boot
// both hold trivially: the firmware wrote the table and nothing else
// executes.
func tableAt(addr uintptr, count int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), count*e820.DescriptorSize)
}

// ReadMap builds the canonical memory map from the firmware descriptor table
// at addr. It converts and inserts each record (every insertion re-sorts),
// then runs the normalization pass over the sorted sequence.
//
// The read is unchecked: the caller must guarantee that addr points at a
// valid table of exactly count records and that the memory stays valid for
// the duration of the call.
func ReadMap(addr uintptr, count int) (Map, error) {
	return ParseMap(tableAt(addr, count), count)
}

// ParseMap is ReadMap over an already-obtained byte view of the table.
// It decodes record by record; nothing is allocated on the way to a
// finished map.
func ParseMap(table []byte, count int) (Map, error) {
	if _, err := buf.CheckTableBounds(len(table), count, e820.DescriptorSize); err != nil {
		return Map{}, fmt.Errorf("bootmap: descriptor table: %w", err)
	}
	var m Map
	for i := 0; i < count; i++ {
		d, err := e820.DecodeDescriptor(table[i*e820.DescriptorSize:])
		if err != nil {
			return Map{}, fmt.Errorf("bootmap: descriptor %d: %w", i, err)
		}
		r, err := regionFromDescriptor(d)
		if err != nil {
			return Map{}, err
		}
		if err := m.AddRegion(r); err != nil {
			return Map{}, err
		}
	}
	m.Sort()
	if err := m.Normalize(); err != nil {
		return Map{}, err
	}
	return m, nil
}
