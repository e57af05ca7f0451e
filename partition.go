package curb

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// SegmentID identifies a segment for the lifetime of its partition.
type SegmentID = uuid.UUID

// segmentNamespace is the UUIDv5 namespace blockface namespaces are derived
// from.
var segmentNamespace = uuid.MustParse("6f1c1a52-3b0e-5d8e-9a57-2a4c0f1e7b10")

// newSegmentID derives the id of the seq'th segment created on a blockface.
// Ids are name-based so that reducing the same actions twice yields the same
// partition.
func newSegmentID(blockfaceID string, seq int) SegmentID {
	ns := uuid.NewSHA1(segmentNamespace, []byte(blockfaceID))
	return uuid.NewSHA1(ns, []byte(strconv.Itoa(seq)))
}

// Segment is a contiguous, labeled piece of a blockface. Lengths are in feet.
type Segment struct {
	ID     SegmentID   `json:"id"`
	Type   SegmentType `json:"type"`
	Length float64     `json:"length"`
}

func (seg Segment) String() string {
	return fmt.Sprintf("%s(%g)", seg.Type, seg.Length)
}

// Partition divides the length of a blockface into segments and a remainder
// that hasn't been assigned yet.
//
// Partitions are values. The reducer never writes to the Segments slice of a
// partition it was given; it returns a new partition instead.
type Partition struct {
	// Segments are ordered by their position along the blockface, starting at
	// its reference end.
	Segments []Segment `json:"segments"`
	// UnknownRemaining is the part of the blockface not covered by any
	// segment. It always lies at the far end.
	UnknownRemaining float64 `json:"unknown_remaining"`
	BlockfaceLength  float64 `json:"blockface_length"`
	BlockfaceID      string  `json:"blockface_id"`
	// Issued counts the segment ids handed out so far.
	Issued int `json:"issued"`
}

// Initialize returns an empty partition of a blockface of the given length.
func Initialize(totalLength float64, blockfaceID string) (Partition, error) {
	if !(totalLength > 0) || !isFinite(totalLength) {
		return Partition{}, fmt.Errorf("blockface length %g: %w", totalLength, ErrInvalidArgument)
	}
	return Partition{
		UnknownRemaining: totalLength,
		BlockfaceLength:  totalLength,
		BlockfaceID:      blockfaceID,
	}, nil
}

// IsCollectionComplete reports whether the whole blockface has been assigned
// to segments.
func (p Partition) IsCollectionComplete() bool {
	return scalar.EqualWithinAbs(p.UnknownRemaining, 0, Tolerance)
}

// Assigned returns the total length of all segments.
func (p Partition) Assigned() float64 {
	lengths := make([]float64, len(p.Segments))
	for i, seg := range p.Segments {
		lengths[i] = seg.Length
	}
	return floats.Sum(lengths)
}

// Check verifies that the segments and the unassigned remainder add up to the
// blockface length, that every segment has a positive length, and that ids
// are distinct and accounted for by Issued.
func (p Partition) Check() error {
	if p.Issued < len(p.Segments) {
		return fmt.Errorf("%d segments but only %d ids issued", len(p.Segments), p.Issued)
	}
	seen := make(map[SegmentID]struct{}, len(p.Segments))
	for i, seg := range p.Segments {
		if !(seg.Length > 0) {
			return fmt.Errorf("segment %d has non-positive length %g", i, seg.Length)
		}
		if _, ok := seen[seg.ID]; ok {
			return fmt.Errorf("segment %d reuses id %s", i, seg.ID)
		}
		seen[seg.ID] = struct{}{}
	}
	if p.UnknownRemaining < 0 {
		return fmt.Errorf("negative unassigned length %g", p.UnknownRemaining)
	}
	if total := p.Assigned() + p.UnknownRemaining; !scalar.EqualWithinAbs(total, p.BlockfaceLength, Tolerance) {
		return fmt.Errorf("segments and remainder sum to %g, blockface is %g", total, p.BlockfaceLength)
	}
	return nil
}

// Segment returns the segment at index i.
func (p Partition) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(p.Segments) {
		return Segment{}, false
	}
	return p.Segments[i], true
}

// Index returns the position of the segment with the given id, or -1.
func (p Partition) Index(id SegmentID) int {
	return slices.IndexFunc(p.Segments, func(seg Segment) bool { return seg.ID == id })
}

// withSegments returns a copy of p using segs.
func (p Partition) withSegments(segs []Segment) Partition {
	p.Segments = segs
	return p
}

// newSegment returns a segment with a fresh id and the partition that issued
// it.
func (p Partition) newSegment(typ SegmentType, length float64) (Partition, Segment) {
	seg := Segment{
		ID:     newSegmentID(p.BlockfaceID, p.Issued),
		Type:   typ,
		Length: length,
	}
	p.Issued++
	return p, seg
}
