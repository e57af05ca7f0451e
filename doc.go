// Package curb partitions blockfaces into curb-use segments and places those
// segments on the blockface's geometry.
//
// # Partitions
//
// A blockface is one side of a street block. A [Partition] divides its length
// into an ordered list of [Segment] values, each labeled with a
// [SegmentType] such as [Parking] or [Loading], plus a remainder that hasn't
// been assigned yet and that always lies at the far end. Lengths are in feet.
//
// Partitions obey two invariants:
//   - the segment lengths and the unassigned remainder add up to the
//     blockface length, within [Tolerance];
//   - every segment has a positive length.
//
// [Partition.Check] verifies both.
//
// # Editing
//
// Partitions are created by [Initialize] and edited by reducing them with
// actions: [SetType], [Resize], [AddSegment], [AddSegmentLeft] and
// [ReplaceSegments]. [Config.Reduce] never fails; an action that would break
// an invariant or that refers to a missing segment leaves the partition as it
// was. [Config.Apply] performs the same transition but reports why an action
// was rejected.
//
// Reduction is pure. The partition passed in is never modified, and applying
// the same actions to the same partition always yields the same result,
// including the ids of new segments.
//
// Drag handles usually report movement instead of absolute lengths and
// indices instead of segment lists. [Config.ResizeByDelta] and
// [Config.Reorder] translate those into actions.
//
// [Offsets] computes where each segment begins, for drawing tick marks and
// labels. [OffsetCache] avoids recomputing it for an unchanged partition.
//
// # Projection
//
// [Projector.Project] maps a partition onto a path, an [orb.LineString] of
// longitude/latitude pairs. Segments are placed in proportion to their share
// of the blockface length, measuring the path with great-circle distances on
// a [Sphere]. Points inside an edge of the path are found by following the
// great circle, not by interpolating coordinates, so long edges stay on the
// Earth's surface.
//
// Segments that can't be placed are reported to the projector's [Logger] and
// omitted; the remaining segments are still projected.
// [FeatureCollection] turns the result into GeoJSON.
package curb
