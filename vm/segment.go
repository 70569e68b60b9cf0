package vm

// Segment is a memory segment addressed by push and pop.
type Segment int

//go:generate go tool stringer -linecomment -type=Segment
const (
	SEGMENT_ARGUMENT = Segment(0) // argument
	SEGMENT_LOCAL    = Segment(1) // local
	SEGMENT_THIS     = Segment(2) // this
	SEGMENT_THAT     = Segment(3) // that
	SEGMENT_CONSTANT = Segment(4) // constant
	SEGMENT_STATIC   = Segment(5) // static
	SEGMENT_POINTER  = Segment(6) // pointer
	SEGMENT_TEMP     = Segment(7) // temp
)

// segmentList is the keyword match order for segments.
var segmentList = []Segment{
	SEGMENT_ARGUMENT,
	SEGMENT_LOCAL,
	SEGMENT_THIS,
	SEGMENT_THAT,
	SEGMENT_CONSTANT,
	SEGMENT_STATIC,
	SEGMENT_POINTER,
	SEGMENT_TEMP,
}

// Virtual returns true if the segment has no backing storage, so it can be
// pushed from but not popped into.
func (seg Segment) Virtual() bool {
	return seg == SEGMENT_CONSTANT
}
