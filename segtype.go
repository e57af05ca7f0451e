package curb

import (
	"fmt"
)

// SegmentType is the curb use of a segment. The set of types is closed.
type SegmentType uint8

const (
	Parking SegmentType = iota
	CurbCut
	Loading
	NoParking
	BusStop
	Taxi
	Disabled

	numSegmentTypes
)

var segmentTypeNames = [numSegmentTypes]string{
	Parking:   "parking",
	CurbCut:   "curb_cut",
	Loading:   "loading",
	NoParking: "no_parking",
	BusStop:   "bus_stop",
	Taxi:      "taxi",
	Disabled:  "disabled",
}

var segmentTypeLabels = [numSegmentTypes]string{
	Parking:   "Parking",
	CurbCut:   "Curb Cut",
	Loading:   "Loading",
	NoParking: "No Parking",
	BusStop:   "Bus Stop",
	Taxi:      "Taxi",
	Disabled:  "Disabled",
}

var segmentTypeColors = [numSegmentTypes]string{
	Parking:   "#4a90d9",
	CurbCut:   "#9b9b9b",
	Loading:   "#f5a623",
	NoParking: "#d0021b",
	BusStop:   "#bd10e0",
	Taxi:      "#f8e71c",
	Disabled:  "#0b5cad",
}

// SegmentTypes returns all segment types in declaration order.
func SegmentTypes() []SegmentType {
	out := make([]SegmentType, numSegmentTypes)
	for i := range out {
		out[i] = SegmentType(i)
	}
	return out
}

// Valid reports whether typ is a member of the enumeration.
func (typ SegmentType) Valid() bool {
	return typ < numSegmentTypes
}

// Color returns the display color of the type as a hex triplet. Invalid types
// have no color.
func (typ SegmentType) Color() string {
	if !typ.Valid() {
		return ""
	}
	return segmentTypeColors[typ]
}

// Label returns the human-readable name of the type.
func (typ SegmentType) Label() string {
	if !typ.Valid() {
		return typ.String()
	}
	return segmentTypeLabels[typ]
}

func (typ SegmentType) String() string {
	if !typ.Valid() {
		return fmt.Sprintf("SegmentType(%d)", uint8(typ))
	}
	return segmentTypeNames[typ]
}

func (typ SegmentType) MarshalText() ([]byte, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("invalid segment type %d", uint8(typ))
	}
	return []byte(segmentTypeNames[typ]), nil
}

func (typ *SegmentType) UnmarshalText(b []byte) error {
	t, ok := ParseSegmentType(string(b))
	if !ok {
		return fmt.Errorf("unknown segment type %q", b)
	}
	*typ = t
	return nil
}

// ParseSegmentType looks up a segment type by the name returned by
// [SegmentType.String].
func ParseSegmentType(name string) (SegmentType, bool) {
	for i, n := range segmentTypeNames {
		if n == name {
			return SegmentType(i), true
		}
	}
	return 0, false
}
