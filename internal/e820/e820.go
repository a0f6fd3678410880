// Package e820 houses the low-level decoder for the firmware memory
// descriptor table. The goal is to keep the raw-record parsing focused and
// independent from the public API so the bootmap package can orchestrate the
// data in a more ergonomic form.
//
// Each record is 24 bytes, little-endian, with explicit 64-bit address
// fields even on 32-bit builds so a boot stub and the main loader agree on
// the structure size.
package e820

import (
	"fmt"

	"github.com/joshuapare/bootkit/internal/buf"
)

// Descriptor field offsets within the raw record.
//
//	0x00  u64  start address
//	0x08  u64  length in bytes
//	0x10  u32  region type code
//	0x14  u32  ACPI 3.0 extended attributes
const (
	StartAddrOffset = 0x00
	LengthOffset    = 0x08
	TypeOffset      = 0x10
	AttrsOffset     = 0x14

	// DescriptorSize is the size of one raw record in bytes.
	DescriptorSize = 0x18
)

// Region type codes as reported by firmware. Codes outside this range have
// no defined meaning; the caller must treat them as fatal.
const (
	TypeUsable          = 1
	TypeReserved        = 2
	TypeAcpiReclaimable = 3
	TypeAcpiNvs         = 4
	TypeBadMemory       = 5
)

// Descriptor is one decoded firmware memory descriptor, before
// classification into the public region-type enumeration.
type Descriptor struct {
	StartAddr uint64
	Length    uint64
	Type      uint32
	Attrs     uint32
}

func (d Descriptor) String() string {
	return fmt.Sprintf("{start=%#x len=%#x type=%d}", d.StartAddr, d.Length, d.Type)
}

// DecodeDescriptor decodes the record at the start of b.
func DecodeDescriptor(b []byte) (Descriptor, error) {
	if len(b) < DescriptorSize {
		return Descriptor{}, fmt.Errorf("e820: record needs %d bytes, have %d: %w",
			DescriptorSize, len(b), ErrTruncated)
	}
	return Descriptor{
		StartAddr: buf.U64LE(b[StartAddrOffset:]),
		Length:    buf.U64LE(b[LengthOffset:]),
		Type:      buf.U32LE(b[TypeOffset:]),
		Attrs:     buf.U32LE(b[AttrsOffset:]),
	}, nil
}

// DecodeTable decodes count consecutive records from b. The table length is
// bounds-checked (including the count*size multiplication) before any record
// is read.
func DecodeTable(b []byte, count int) ([]Descriptor, error) {
	if _, err := buf.CheckTableBounds(len(b), count, DescriptorSize); err != nil {
		return nil, fmt.Errorf("e820: table of %d records: %w", count, err)
	}
	descs := make([]Descriptor, count)
	for i := range descs {
		d, err := DecodeDescriptor(b[i*DescriptorSize:])
		if err != nil {
			return nil, err
		}
		descs[i] = d
	}
	return descs, nil
}

// PutDescriptor encodes d at b[off:]. Used by fixture builders and the dump
// tooling; the boot path itself never writes descriptors.
func PutDescriptor(b []byte, off int, d Descriptor) {
	buf.PutU64(b, off+StartAddrOffset, d.StartAddr)
	buf.PutU64(b, off+LengthOffset, d.Length)
	buf.PutU32(b, off+TypeOffset, d.Type)
	buf.PutU32(b, off+AttrsOffset, d.Attrs)
}
