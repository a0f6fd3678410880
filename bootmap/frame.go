package bootmap

import "fmt"

const (
	// FrameSize is the size of a physical page frame in bytes.
	FrameSize = 4096

	// FrameShift is the bit shift between a physical address and the number
	// of the frame containing it (FrameSize == 1 << FrameShift).
	FrameShift = 12
)

// Frame is a physical page frame number. Frame n covers physical addresses
// [n*FrameSize, (n+1)*FrameSize).
type Frame uint64

// FrameContaining returns the frame that contains addr, rounding down.
// Both bounds of a converted firmware range use this floor rounding, so a
// range ending mid-frame loses its partial trailing frame. Widening the end
// bound instead would report memory as usable that firmware never fully
// reported, which is the unsafe direction.
func FrameContaining(addr uint64) Frame {
	return Frame(addr >> FrameShift)
}

// Address returns the physical address of the first byte of the frame.
func (f Frame) Address() uint64 {
	return uint64(f) << FrameShift
}

// FrameRange is a half-open range of frames: [Start, End). End >= Start
// always; Start == End is the empty range.
type FrameRange struct {
	Start Frame
	End   Frame
}

// IsEmpty reports whether the range covers no frames. The empty range is the
// unused-slot sentinel inside a Map.
func (r FrameRange) IsEmpty() bool {
	return r.Start == r.End
}

// Frames returns the number of frames in the range.
func (r FrameRange) Frames() uint64 {
	return uint64(r.End - r.Start)
}

// Size returns the length of the range in bytes.
func (r FrameRange) Size() uint64 {
	return r.Frames() * FrameSize
}

// Overlaps reports whether r and other share at least one frame. An empty
// range overlaps nothing, even when it sits inside another range.
func (r FrameRange) Overlaps(other FrameRange) bool {
	lo := r.Start
	if other.Start > lo {
		lo = other.Start
	}
	hi := r.End
	if other.End < hi {
		hi = other.End
	}
	return lo < hi
}

func (r FrameRange) String() string {
	return fmt.Sprintf("[%#x-%#x)", r.Start.Address(), r.End.Address())
}
