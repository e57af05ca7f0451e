package curb

// Offsets returns the positions along the blockface at which segments begin.
//
// For n segments, the result has n+1 entries: 0, the start of each following
// segment, and the end of the last segment. If part of the blockface is still
// unassigned, the last of these is where the unassigned tail begins, and one
// more entry, the end of the tail, is appended.
func Offsets(p Partition) []float64 {
	n := len(p.Segments) + 1
	if p.UnknownRemaining > 0 {
		n++
	}
	out := make([]float64, 1, n)
	var o float64
	for _, seg := range p.Segments {
		o += seg.Length
		out = append(out, o)
	}
	if p.UnknownRemaining > 0 {
		out = append(out, o+p.UnknownRemaining)
	}
	return out
}

// OffsetCache remembers the most recent result of [Offsets].
//
// A hit requires the very same segment slice, not just equal contents, and the
// same unassigned remainder. Because partitions are never modified in place,
// this is sufficient. Callers must not modify the returned slice.
//
// An OffsetCache must not be used concurrently.
type OffsetCache struct {
	segs    []Segment
	unknown float64
	offsets []float64
	valid   bool
}

func (c *OffsetCache) Offsets(p Partition) []float64 {
	if c.valid && sameSlice(c.segs, p.Segments) && c.unknown == p.UnknownRemaining {
		return c.offsets
	}
	c.segs = p.Segments
	c.unknown = p.UnknownRemaining
	c.offsets = Offsets(p)
	c.valid = true
	return c.offsets
}

// sameSlice reports whether a and b share their backing array and length.
func sameSlice(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
