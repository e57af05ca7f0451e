package curb

import (
	"fmt"
	"math"
	"slices"
)

// Action is an edit of a partition. Actions are applied by [Config.Reduce]
// and [Config.Apply].
//
// The set of actions is closed: [SetType], [Resize], [AddSegment],
// [AddSegmentLeft] and [ReplaceSegments].
type Action interface {
	apply(cfg Config, p Partition) (Partition, error)
}

var (
	_ Action = SetType{}
	_ Action = Resize{}
	_ Action = AddSegment{}
	_ Action = AddSegmentLeft{}
	_ Action = ReplaceSegments{}
)

// SetType changes the type of a segment.
type SetType struct {
	Index int
	Type  SegmentType
}

func (a SetType) apply(cfg Config, p Partition) (Partition, error) {
	seg, ok := p.Segment(a.Index)
	if !ok {
		return p, fmt.Errorf("set type of segment %d: %w", a.Index, ErrIndexOutOfRange)
	}
	if !a.Type.Valid() {
		return p, fmt.Errorf("set type of segment %d to %s: %w", a.Index, a.Type, ErrInvalidArgument)
	}
	if seg.Type == a.Type {
		return p, nil
	}
	segs := slices.Clone(p.Segments)
	segs[a.Index].Type = a.Type
	return p.withSegments(segs), nil
}

// Resize sets the length of a segment. The following segment, or the
// unassigned remainder if the segment is the last one, gives up or absorbs the
// difference.
type Resize struct {
	Index  int
	Length float64
}

func (a Resize) apply(cfg Config, p Partition) (Partition, error) {
	seg, ok := p.Segment(a.Index)
	if !ok {
		return p, fmt.Errorf("resize segment %d: %w", a.Index, ErrIndexOutOfRange)
	}
	length := cfg.Round(a.Length)
	if !isFinite(length) || length <= 0 {
		return p, fmt.Errorf("resize segment %d to %g: %w", a.Index, a.Length, ErrInvalidAdjustment)
	}
	delta := length - seg.Length

	segs := slices.Clone(p.Segments)
	segs[a.Index].Length = length
	if a.Index == len(segs)-1 {
		remaining := settle(p.UnknownRemaining - delta)
		if remaining < 0 {
			return p, fmt.Errorf("resize segment %d to %g exceeds unassigned length %g: %w",
				a.Index, length, p.UnknownRemaining, ErrInvalidAdjustment)
		}
		if cfg.belowStep(remaining) {
			segs[a.Index].Length += remaining
			remaining = 0
		}
		p.UnknownRemaining = remaining
	} else {
		next := cfg.snap(segs[a.Index+1].Length - delta)
		if next <= 0 {
			return p, fmt.Errorf("resize segment %d to %g leaves segment %d with %g: %w",
				a.Index, length, a.Index+1, next, ErrInvalidAdjustment)
		}
		segs[a.Index+1].Length = next
	}
	return p.withSegments(segs), nil
}

// AddSegment creates a segment of the default type from the unassigned
// remainder and inserts it after the segment at index After. A negative After
// inserts at the start.
type AddSegment struct {
	After int
}

func (a AddSegment) apply(cfg Config, p Partition) (Partition, error) {
	if !(p.UnknownRemaining >= Tolerance) {
		return p, fmt.Errorf("add segment: nothing left to assign: %w", ErrInvalidAdjustment)
	}
	if a.After >= len(p.Segments) {
		return p, fmt.Errorf("add segment after %d: %w", a.After, ErrIndexOutOfRange)
	}
	pos := max(a.After+1, 0)

	length := cfg.Round(min(cfg.SeedLength, p.UnknownRemaining))
	if length > p.UnknownRemaining {
		// Rounding up would take more than is left.
		length = cfg.floor(p.UnknownRemaining)
	}
	remaining := settle(p.UnknownRemaining - length)
	if length <= 0 || cfg.belowStep(remaining) {
		// No later edit could assign what would be left.
		length = p.UnknownRemaining
		remaining = 0
	}
	p, seg := p.newSegment(cfg.DefaultType, length)
	p.UnknownRemaining = remaining
	return p.withSegments(slices.Insert(slices.Clone(p.Segments), pos, seg)), nil
}

// AddSegmentLeft creates a segment of the given length immediately before the
// segment at Index. The length is taken from that segment or, failing that,
// from its left neighbour; a donor must keep at least one foot. The
// unassigned remainder is never used.
type AddSegmentLeft struct {
	Index  int
	Length float64
}

// minDonorRemainder is what a segment must keep after donating length to a
// new neighbour.
const minDonorRemainder = 1

func (a AddSegmentLeft) apply(cfg Config, p Partition) (Partition, error) {
	if _, ok := p.Segment(a.Index); !ok {
		return p, fmt.Errorf("add segment left of %d: %w", a.Index, ErrIndexOutOfRange)
	}
	length := cfg.Round(a.Length)
	if !isFinite(length) || length <= 0 {
		return p, fmt.Errorf("add segment of length %g: %w", a.Length, ErrInvalidAdjustment)
	}

	var donor int
	switch need := length + minDonorRemainder; {
	case p.Segments[a.Index].Length >= need:
		donor = a.Index
	case a.Index > 0 && p.Segments[a.Index-1].Length >= need:
		donor = a.Index - 1
	default:
		return p, fmt.Errorf("add segment of length %g left of %d: %w", length, a.Index, ErrInsufficientSpace)
	}

	segs := slices.Clone(p.Segments)
	segs[donor].Length = cfg.snap(segs[donor].Length - length)
	p, seg := p.newSegment(cfg.DefaultType, length)
	return p.withSegments(slices.Insert(segs, a.Index, seg)), nil
}

// ReplaceSegments replaces all segments, either with Segments or, if
// Transform is set, with the result of calling Transform on a copy of the
// current segments.
//
// The replacement must have the same total length as the segments it
// replaces. This is not checked; permutations satisfy it trivially.
type ReplaceSegments struct {
	Segments  []Segment
	Transform func([]Segment) []Segment
}

func (a ReplaceSegments) apply(cfg Config, p Partition) (Partition, error) {
	if a.Transform != nil {
		return p.withSegments(a.Transform(slices.Clone(p.Segments))), nil
	}
	return p.withSegments(slices.Clone(a.Segments)), nil
}

// Reversed is a [ReplaceSegments] transform that reverses the order of
// segments.
func Reversed(segs []Segment) []Segment {
	slices.Reverse(segs)
	return segs
}

// Moved returns a [ReplaceSegments] transform that moves the segment at from
// so that it ends up at index to. Out of range indices leave the segments as
// they are.
func Moved(from, to int) func([]Segment) []Segment {
	return func(segs []Segment) []Segment {
		if from < 0 || from >= len(segs) || to < 0 || to >= len(segs) || from == to {
			return segs
		}
		seg := segs[from]
		segs = slices.Delete(segs, from, from+1)
		return slices.Insert(segs, to, seg)
	}
}

// settle clears floating point residue from the unassigned remainder.
func settle(x float64) float64 {
	if math.Abs(x) < Tolerance {
		return 0
	}
	return x
}
