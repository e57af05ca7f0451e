package curb

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// Logger receives reports about segments that couldn't be projected. It is
// satisfied by [*zap.SugaredLogger].
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
}

var _ Logger = (*zap.SugaredLogger)(nil)

// Projected is a segment placed on the geometry of its blockface.
type Projected struct {
	Path   orb.LineString
	ID     SegmentID
	Type   SegmentType
	Color  string
	Length float64
}

// Projector places partitions on paths.
type Projector struct {
	Sphere
	// Logger receives projection failures. If nil, failures are discarded.
	Logger Logger
}

// DefaultProjector projects onto the Earth's surface and discards failures.
var DefaultProjector = Projector{Sphere: Earth}

// Project calls [Projector.Project] on [DefaultProjector].
func Project(p Partition, path orb.LineString) []Projected {
	return DefaultProjector.Project(p, path)
}

// Project places each segment of p on path, in proportion to its share of
// the blockface length. The segments' lengths are not compared with the
// path's actual length; only proportions matter.
//
// A segment that can't be placed is reported to the projector's logger and
// left out of the result, as are segments whose geometry degenerates to fewer
// than two coordinates. The unassigned remainder is not projected.
func (pr Projector) Project(p Partition, path orb.LineString) []Projected {
	all := pr.projectAll(p, path)
	out := all[:0]
	for _, proj := range all {
		if len(proj.Path) >= 2 {
			out = append(out, proj)
		}
	}
	return out
}

// projectAll is like Project but keeps failed segments, with empty paths.
func (pr Projector) projectAll(p Partition, path orb.LineString) []Projected {
	pathLength := pr.Length(path)
	offsets := Offsets(p)
	out := make([]Projected, len(p.Segments))
	for k, seg := range p.Segments {
		out[k] = Projected{
			ID:     seg.ID,
			Type:   seg.Type,
			Color:  seg.Type.Color(),
			Length: seg.Length,
		}
		line, err := pr.projectSegment(path, pathLength, p.BlockfaceLength, offsets[k], offsets[k+1])
		if err != nil {
			pr.logger().Warnw("couldn't project segment",
				"blockface", p.BlockfaceID,
				"segment", k,
				"id", seg.ID.String(),
				"type", seg.Type.String(),
				"error", err,
			)
			continue
		}
		out[k].Path = line
	}
	return out
}

// projectSegment returns the part of path between the offsets from and to,
// given in units of the blockface.
func (pr Projector) projectSegment(path orb.LineString, pathLength, blockfaceLength, from, to float64) (orb.LineString, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: %w", ErrProjection, errShortPath)
	}
	if !(pathLength > 0) || !isFinite(pathLength) {
		return nil, fmt.Errorf("%w: path length is %g", ErrProjection, pathLength)
	}
	if !(blockfaceLength > 0) {
		return nil, fmt.Errorf("%w: blockface length is %g", ErrProjection, blockfaceLength)
	}

	startDist := from / blockfaceLength * pathLength
	endDist := to / blockfaceLength * pathLength
	start, err := pr.Along(path, startDist)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrProjection, err)
	}
	end, err := pr.Along(path, endDist)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %w", ErrProjection, err)
	}
	line, err := pr.Slice(path, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjection, err)
	}
	return line, nil
}

var nopLogger = zap.NewNop().Sugar()

func (pr Projector) logger() Logger {
	if pr.Logger == nil {
		return nopLogger
	}
	return pr.Logger
}

// IsProjectionFailure reports whether err was caused by a failed projection.
func IsProjectionFailure(err error) bool {
	return errors.Is(err, ErrProjection)
}
