package bootmap

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bootkit/internal/e820"
)

// buildTable encodes descriptors into a contiguous raw table, the same
// layout firmware leaves in memory.
func buildTable(descs ...e820.Descriptor) []byte {
	b := make([]byte, len(descs)*e820.DescriptorSize)
	for i, d := range descs {
		e820.PutDescriptor(b, i*e820.DescriptorSize, d)
	}
	return b
}

func TestParseMapRoundTrip(t *testing.T) {
	table := buildTable(
		e820.Descriptor{StartAddr: 0x0000, Length: 0x1000, Type: e820.TypeUsable},
		e820.Descriptor{StartAddr: 0x1000, Length: 0x2000, Type: e820.TypeReserved},
		e820.Descriptor{StartAddr: 0x3000, Length: 0x1000, Type: e820.TypeUsable},
	)

	m, err := ParseMap(table, 3)
	require.NoError(t, err)

	got := m.Regions()
	require.Len(t, got, 3)
	require.Equal(t, rg(0, 1, RegionUsable), got[0])
	require.Equal(t, rg(1, 3, RegionReserved), got[1])
	require.Equal(t, rg(3, 4, RegionUsable), got[2])

	for i := 1; i < len(got); i++ {
		require.False(t, got[i-1].Range.Overlaps(got[i].Range))
	}
}

func TestParseMapRejectsUnknownTypeBeforeInsertion(t *testing.T) {
	table := buildTable(
		e820.Descriptor{StartAddr: 0x0000, Length: 0x1000, Type: 9},
	)

	_, err := ParseMap(table, 1)
	require.ErrorIs(t, err, ErrUnknownRegionType)
}

func TestParseMapRejectsTruncatedTable(t *testing.T) {
	table := buildTable(
		e820.Descriptor{StartAddr: 0, Length: 0x1000, Type: e820.TypeUsable},
	)

	_, err := ParseMap(table, 2)
	require.Error(t, err)

	_, err = ParseMap(table[:10], 1)
	require.Error(t, err)
}

func TestParseMapNormalizes(t *testing.T) {
	// Usable descriptor runs into the reserved one that follows it; the
	// parsed map must come out non-overlapping with the usable side trimmed.
	table := buildTable(
		e820.Descriptor{StartAddr: 0x0000, Length: 0x5000, Type: e820.TypeUsable},
		e820.Descriptor{StartAddr: 0x3000, Length: 0x2000, Type: e820.TypeReserved},
	)

	m, err := ParseMap(table, 2)
	require.NoError(t, err)

	got := m.Regions()
	require.Len(t, got, 2)
	require.Equal(t, rg(0, 3, RegionUsable), got[0])
	require.Equal(t, rg(3, 5, RegionReserved), got[1])
}

func TestParseMapRejectsAuthoritativeOverlap(t *testing.T) {
	table := buildTable(
		e820.Descriptor{StartAddr: 0x0000, Length: 0x5000, Type: e820.TypeReserved},
		e820.Descriptor{StartAddr: 0x3000, Length: 0x3000, Type: e820.TypeAcpiNvs},
	)

	_, err := ParseMap(table, 2)
	require.ErrorIs(t, err, ErrUnresolvedOverlap)
}

func TestReadMapFromRawMemory(t *testing.T) {
	table := buildTable(
		e820.Descriptor{StartAddr: 0x0000, Length: 0x9000, Type: e820.TypeUsable},
		e820.Descriptor{StartAddr: 0x9000, Length: 0x1000, Type: e820.TypeAcpiReclaimable},
	)

	m, err := ReadMap(uintptr(unsafe.Pointer(&table[0])), 2)
	runtime.KeepAlive(table)
	require.NoError(t, err)

	got := m.Regions()
	require.Len(t, got, 2)
	require.Equal(t, rg(0, 9, RegionUsable), got[0])
	require.Equal(t, rg(9, 10, RegionAcpiReclaimable), got[1])
}

func TestRegionFromDescriptorClassification(t *testing.T) {
	cases := []struct {
		code uint32
		want RegionType
	}{
		{e820.TypeUsable, RegionUsable},
		{e820.TypeReserved, RegionReserved},
		{e820.TypeAcpiReclaimable, RegionAcpiReclaimable},
		{e820.TypeAcpiNvs, RegionAcpiNvs},
		{e820.TypeBadMemory, RegionBadMemory},
	}
	for _, tc := range cases {
		r, err := regionFromDescriptor(e820.Descriptor{Length: 0x1000, Type: tc.code})
		require.NoError(t, err)
		require.Equal(t, tc.want, r.Type)
	}

	_, err := regionFromDescriptor(e820.Descriptor{Length: 0x1000, Type: 0})
	require.ErrorIs(t, err, ErrUnknownRegionType)
	_, err = regionFromDescriptor(e820.Descriptor{Length: 0x1000, Type: 6})
	require.ErrorIs(t, err, ErrUnknownRegionType)
}

func TestRegionFromDescriptorFloorsBothBounds(t *testing.T) {
	// Start mid-frame, end mid-frame: both round down to the containing
	// frame, so the partial trailing frame is dropped.
	r, err := regionFromDescriptor(e820.Descriptor{
		StartAddr: 0x1800,
		Length:    0x2000, // ends at 0x3800
		Type:      e820.TypeUsable,
	})
	require.NoError(t, err)
	require.Equal(t, FrameRange{Start: 1, End: 3}, r.Range)
}
