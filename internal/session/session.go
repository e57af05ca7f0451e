// Package session keeps the partition of one blockface while it is being
// edited, applying edits one at a time and remembering the accepted ones.
package session

import (
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"honnef.co/go/curb"
)

// Rejection records an edit that left the partition unchanged.
type Rejection struct {
	// Seq is the position of the edit in the replayed sequence.
	Seq  int
	Edit curb.Edit
	Err  error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("edit %d %s: %v", r.Seq, r.Edit, r.Err)
}

func (r Rejection) Unwrap() error { return r.Err }

// Session owns the partition of a blockface. It is safe for concurrent use.
type Session struct {
	cfg curb.Config
	log curb.Logger

	mu      sync.Mutex
	p       curb.Partition
	history []curb.Edit
	offsets curb.OffsetCache
}

// New returns a session for an empty blockface.
func New(cfg curb.Config, length float64, blockfaceID string, logger curb.Logger) (*Session, error) {
	p, err := curb.Initialize(length, blockfaceID)
	if err != nil {
		return nil, err
	}
	return Resume(cfg, p, logger)
}

// Resume returns a session continuing from a previously saved partition. The
// partition must pass [curb.Partition.Check]; in particular its Issued counter
// must account for its segments, so that new ids never repeat old ones.
func Resume(cfg curb.Config, p curb.Partition, logger curb.Logger) (*Session, error) {
	if err := p.Check(); err != nil {
		return nil, fmt.Errorf("resuming blockface %q: %w", p.BlockfaceID, err)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Session{cfg: cfg, log: logger, p: p}, nil
}

// Dispatch applies e. A rejected edit leaves the partition as it was and is
// returned as an error; [curb.IsRejection] tells rejections from malformed
// edits.
func (s *Session) Dispatch(e curb.Edit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(e)
}

func (s *Session) dispatch(e curb.Edit) error {
	q, err := e.Apply(s.cfg, s.p)
	if err != nil {
		s.log.Debugw("edit rejected",
			"blockface", s.p.BlockfaceID,
			"edit", e.String(),
			"error", err)
		return err
	}
	if err := q.Check(); err != nil {
		s.log.Warnw("edit broke partition invariants",
			"blockface", s.p.BlockfaceID,
			"edit", e.String(),
			"error", err)
		return fmt.Errorf("edit %s: %w", e, err)
	}
	s.p = q
	s.history = append(s.history, e)
	return nil
}

// Replay dispatches each edit in turn and returns the ones that were
// rejected. Rejections don't stop the replay.
func (s *Session) Replay(edits []curb.Edit) []Rejection {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Rejection
	for i, e := range edits {
		if err := s.dispatch(e); err != nil {
			out = append(out, Rejection{Seq: i, Edit: e, Err: err})
		}
	}
	return out
}

// Partition returns the current partition.
func (s *Session) Partition() curb.Partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

// History returns the edits accepted so far, oldest first.
func (s *Session) History() []curb.Edit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]curb.Edit, len(s.history))
	copy(out, s.history)
	return out
}

// Offsets returns the segment boundaries of the current partition. The
// result must not be modified.
func (s *Session) Offsets() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offsets.Offsets(s.p)
}

// Project places the current partition on path.
func (s *Session) Project(pr curb.Projector, path orb.LineString) []curb.Projected {
	return pr.Project(s.Partition(), path)
}
