package curb

import (
	"encoding/json"
	"fmt"
)

// Op names an [Edit].
type Op string

const (
	OpSetType  Op = "set_type"
	OpResize   Op = "resize"
	OpResizeBy Op = "resize_by"
	OpAdd      Op = "add"
	OpAddLeft  Op = "add_left"
	OpReplace  Op = "replace"
	OpReorder  Op = "reorder"
	OpReverse  Op = "reverse"
)

// Edit is the serializable form of an action, for hosts that record or
// replay edits. Besides the reducer's actions it covers the drag operations
// ([Config.ResizeByDelta], [Config.Reorder]) and reversal.
//
// Only the fields used by Op are meaningful.
type Edit struct {
	Op       Op          `json:"op"`
	Index    int         `json:"index,omitempty"`
	After    int         `json:"after,omitempty"`
	From     int         `json:"from,omitempty"`
	To       int         `json:"to,omitempty"`
	Type     SegmentType `json:"type,omitempty"`
	Length   float64     `json:"length,omitempty"`
	Delta    float64     `json:"delta,omitempty"`
	Segments []Segment   `json:"segments,omitempty"`
}

func (e Edit) String() string {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("Edit(%s)", e.Op)
	}
	return string(b)
}

// EditOf returns the edit describing a. Replacements computed by a transform
// function have no serializable form.
func EditOf(a Action) (Edit, error) {
	switch a := a.(type) {
	case SetType:
		return Edit{Op: OpSetType, Index: a.Index, Type: a.Type}, nil
	case Resize:
		return Edit{Op: OpResize, Index: a.Index, Length: a.Length}, nil
	case AddSegment:
		return Edit{Op: OpAdd, After: a.After}, nil
	case AddSegmentLeft:
		return Edit{Op: OpAddLeft, Index: a.Index, Length: a.Length}, nil
	case ReplaceSegments:
		if a.Transform != nil {
			return Edit{}, fmt.Errorf("replacement by transform can't be serialized")
		}
		return Edit{Op: OpReplace, Segments: a.Segments}, nil
	default:
		return Edit{}, fmt.Errorf("unsupported action %T", a)
	}
}

// Action returns the action that e describes, for edits that don't depend on
// the partition they're applied to. [OpResizeBy] does; use [Edit.Apply].
func (e Edit) Action() (Action, error) {
	switch e.Op {
	case OpSetType:
		return SetType{Index: e.Index, Type: e.Type}, nil
	case OpResize:
		return Resize{Index: e.Index, Length: e.Length}, nil
	case OpAdd:
		return AddSegment{After: e.After}, nil
	case OpAddLeft:
		return AddSegmentLeft{Index: e.Index, Length: e.Length}, nil
	case OpReplace:
		return ReplaceSegments{Segments: e.Segments}, nil
	case OpReorder:
		return ReplaceSegments{Transform: Moved(e.From, e.To)}, nil
	case OpReverse:
		return ReplaceSegments{Transform: Reversed}, nil
	case OpResizeBy:
		return nil, fmt.Errorf("%s depends on the current partition", e.Op)
	default:
		return nil, fmt.Errorf("unknown op %q", e.Op)
	}
}

// Apply applies e to p. Errors are as for [Config.Apply]; unknown ops wrap
// [ErrInvalidArgument].
func (e Edit) Apply(cfg Config, p Partition) (Partition, error) {
	switch e.Op {
	case OpResizeBy:
		seg, ok := p.Segment(e.Index)
		if !ok {
			return p, fmt.Errorf("resize segment %d: %w", e.Index, ErrIndexOutOfRange)
		}
		return cfg.Apply(p, Resize{Index: e.Index, Length: seg.Length + e.Delta})
	case OpReorder:
		if _, ok := p.Segment(e.From); !ok {
			return p, fmt.Errorf("move segment %d: %w", e.From, ErrIndexOutOfRange)
		}
		if _, ok := p.Segment(e.To); !ok {
			return p, fmt.Errorf("move segment to %d: %w", e.To, ErrIndexOutOfRange)
		}
	}
	a, err := e.Action()
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return cfg.Apply(p, a)
}
