package curb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares lengths up to the conservation tolerance.
var approx = cmpopts.EquateApprox(0, Tolerance/10)

// partition builds a partition with segments of the given lengths, all of
// type Parking, and an unassigned remainder.
func partition(unknown float64, lengths ...float64) Partition {
	p := Partition{
		UnknownRemaining: unknown,
		BlockfaceLength:  unknown,
		BlockfaceID:      "test",
	}
	for _, l := range lengths {
		var seg Segment
		p, seg = p.newSegment(Parking, l)
		p.Segments = append(p.Segments, seg)
		p.BlockfaceLength += l
	}
	return p
}

func lengths(p Partition) []float64 {
	out := make([]float64, len(p.Segments))
	for i, seg := range p.Segments {
		out[i] = seg.Length
	}
	return out
}

func checkInvariants(t *testing.T, p Partition) {
	t.Helper()
	if err := p.Check(); err != nil {
		t.Errorf("%v: %v", lengths(p), err)
	}
}
