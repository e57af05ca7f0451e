package curb

// ResizeByDelta grows the segment at index by delta, which may be negative.
// It is the entry point for drag handles, which report movement rather than
// absolute lengths.
func (cfg Config) ResizeByDelta(p Partition, index int, delta float64) Partition {
	seg, ok := p.Segment(index)
	if !ok {
		return p
	}
	return cfg.Reduce(p, Resize{Index: index, Length: seg.Length + delta})
}

// Reorder moves the segment at from to index to.
func (cfg Config) Reorder(p Partition, from, to int) Partition {
	if _, ok := p.Segment(from); !ok {
		return p
	}
	if _, ok := p.Segment(to); !ok {
		return p
	}
	return cfg.Reduce(p, ReplaceSegments{Transform: Moved(from, to)})
}

// ResizeByDelta calls [Config.ResizeByDelta] on [DefaultConfig].
func ResizeByDelta(p Partition, index int, delta float64) Partition {
	return DefaultConfig.ResizeByDelta(p, index, delta)
}

// Reorder calls [Config.Reorder] on [DefaultConfig].
func Reorder(p Partition, from, to int) Partition {
	return DefaultConfig.Reorder(p, from, to)
}
