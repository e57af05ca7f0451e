package curb

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEditJSON(t *testing.T) {
	var edits []Edit
	err := json.Unmarshal([]byte(`[
		{"op": "add", "after": -1},
		{"op": "add", "after": 0},
		{"op": "resize", "index": 0, "length": 12},
		{"op": "set_type", "index": 1, "type": "loading"},
		{"op": "add_left", "index": 1, "length": 3},
		{"op": "resize_by", "index": 2, "delta": -1.5},
		{"op": "reorder", "from": 0, "to": 2},
		{"op": "reverse"}
	]`), &edits)
	if err != nil {
		t.Fatal(err)
	}

	p, _ := Initialize(60, "bf")
	for _, e := range edits {
		p, err = e.Apply(DefaultConfig, p)
		if err != nil {
			t.Fatalf("%s: %v", e, err)
		}
		checkInvariants(t, p)
	}
	// add, add:       [20 20] + 20
	// resize:         [12 28] + 20
	// set_type:       [12 L28] + 20
	// add_left:       [12 3 L25] + 20
	// resize_by:      [12 3 L23.5] + 21.5
	// reorder 0 to 2: [3 L23.5 12]
	// reverse:        [12 L23.5 3]
	diff(t, []float64{12, 23.5, 3}, lengths(p), approx)
	if p.Segments[1].Type != Loading {
		t.Errorf("got type %s, want loading", p.Segments[1].Type)
	}
	if p.UnknownRemaining != 21.5 {
		t.Errorf("got unassigned length %g, want 21.5", p.UnknownRemaining)
	}
}

func TestEditOf(t *testing.T) {
	actions := []Action{
		SetType{Index: 1, Type: Taxi},
		Resize{Index: 2, Length: 4.5},
		AddSegment{After: -1},
		AddSegmentLeft{Index: 0, Length: 3},
		ReplaceSegments{Segments: partition(0, 1, 2).Segments},
	}
	for _, a := range actions {
		e, err := EditOf(a)
		if err != nil {
			t.Fatalf("EditOf(%#v): %v", a, err)
		}
		b, err := json.Marshal(e)
		if err != nil {
			t.Fatal(err)
		}
		var decoded Edit
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatal(err)
		}
		got, err := decoded.Action()
		if err != nil {
			t.Fatal(err)
		}
		diff(t, a, got)
	}

	if _, err := EditOf(ReplaceSegments{Transform: Reversed}); err == nil {
		t.Error("serialized a transform")
	}
}

func TestEditErrors(t *testing.T) {
	p := partition(0, 10, 10)
	tests := []struct {
		edit Edit
		want error
	}{
		{Edit{Op: "split"}, ErrInvalidArgument},
		{Edit{Op: OpResizeBy, Index: 3, Delta: 1}, ErrIndexOutOfRange},
		{Edit{Op: OpResizeBy, Index: 0, Delta: 10}, ErrInvalidAdjustment},
		{Edit{Op: OpReorder, From: 0, To: 5}, ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		q, err := tt.edit.Apply(DefaultConfig, p)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.edit, err, tt.want)
		}
		diff(t, p, q)
	}
}
