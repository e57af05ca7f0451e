package curb

import (
	"errors"
	"fmt"
)

// Apply applies a to p and returns the resulting partition.
//
// If the action can't be applied without violating the partition's
// invariants, or refers to a segment that doesn't exist, Apply returns p
// itself and an error wrapping [ErrInvalidAdjustment] or
// [ErrIndexOutOfRange].
func (cfg Config) Apply(p Partition, a Action) (Partition, error) {
	if a == nil {
		return p, fmt.Errorf("nil action: %w", ErrInvalidArgument)
	}
	q, err := a.apply(cfg, p)
	if err != nil {
		return p, err
	}
	return q, nil
}

// Reduce is like [Config.Apply] but discards the error. Rejected actions
// leave the partition unchanged.
func (cfg Config) Reduce(p Partition, a Action) Partition {
	q, _ := cfg.Apply(p, a)
	return q
}

// ReduceAll reduces p by each action in turn.
func (cfg Config) ReduceAll(p Partition, actions ...Action) Partition {
	for _, a := range actions {
		p = cfg.Reduce(p, a)
	}
	return p
}

// Apply calls [Config.Apply] on [DefaultConfig].
func Apply(p Partition, a Action) (Partition, error) {
	return DefaultConfig.Apply(p, a)
}

// Reduce calls [Config.Reduce] on [DefaultConfig].
func Reduce(p Partition, a Action) Partition {
	return DefaultConfig.Reduce(p, a)
}

// ReduceAll calls [Config.ReduceAll] on [DefaultConfig].
func ReduceAll(p Partition, actions ...Action) Partition {
	return DefaultConfig.ReduceAll(p, actions...)
}

// IsRejection reports whether err is a rejected edit, as opposed to a misuse
// of the API such as a nil action.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidAdjustment) || errors.Is(err, ErrIndexOutOfRange)
}
