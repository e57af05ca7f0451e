package session

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"honnef.co/go/curb"
)

func newSession(t *testing.T, length float64) (*Session, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := New(curb.DefaultConfig, length, "main-st-north-100", zap.New(core).Sugar())
	require.NoError(t, err)
	return s, logs
}

func TestNew(t *testing.T) {
	_, err := New(curb.DefaultConfig, 0, "x", nil)
	assert.ErrorIs(t, err, curb.ErrInvalidArgument)

	s, err := New(curb.DefaultConfig, 80, "x", nil)
	require.NoError(t, err)
	p := s.Partition()
	assert.Empty(t, p.Segments)
	assert.Equal(t, 80.0, p.UnknownRemaining)
	assert.Equal(t, []float64{0, 80}, s.Offsets())
}

func TestDispatch(t *testing.T) {
	s, logs := newSession(t, 100)

	require.NoError(t, s.Dispatch(curb.Edit{Op: curb.OpAdd, After: -1}))
	require.NoError(t, s.Dispatch(curb.Edit{Op: curb.OpSetType, Index: 0, Type: curb.CurbCut}))

	p := s.Partition()
	require.Len(t, p.Segments, 1)
	assert.Equal(t, curb.CurbCut, p.Segments[0].Type)
	assert.Equal(t, 80.0, p.UnknownRemaining)
	assert.Zero(t, logs.Len())
}

func TestDispatchRejected(t *testing.T) {
	s, logs := newSession(t, 100)
	require.NoError(t, s.Dispatch(curb.Edit{Op: curb.OpAdd, After: -1}))
	before := s.Partition()

	err := s.Dispatch(curb.Edit{Op: curb.OpResize, Index: 3, Length: 10})
	require.Error(t, err)
	assert.True(t, curb.IsRejection(err))
	assert.Equal(t, before, s.Partition())
	assert.Len(t, s.History(), 1)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "edit rejected", entry.Message)
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	assert.Equal(t, "main-st-north-100", entry.ContextMap()["blockface"])
}

func TestDispatchMalformed(t *testing.T) {
	s, _ := newSession(t, 100)
	err := s.Dispatch(curb.Edit{Op: "split"})
	require.Error(t, err)
	assert.False(t, curb.IsRejection(err))
	assert.ErrorIs(t, err, curb.ErrInvalidArgument)
}

func TestReplay(t *testing.T) {
	s, _ := newSession(t, 100)
	edits := []curb.Edit{
		{Op: curb.OpAdd, After: -1},
		{Op: curb.OpSetType, Index: 0, Type: curb.CurbCut},
		{Op: curb.OpResize, Index: 0, Length: 12},
		{Op: curb.OpAdd, After: 5},
		{Op: curb.OpAdd, After: 0},
		{Op: curb.OpResizeBy, Index: 1, Delta: 5},
		{Op: curb.OpReorder, From: 0, To: 1},
	}

	rejected := s.Replay(edits)
	require.Len(t, rejected, 1)
	assert.Equal(t, 3, rejected[0].Seq)
	assert.Equal(t, edits[3], rejected[0].Edit)
	assert.ErrorIs(t, rejected[0], curb.ErrIndexOutOfRange)

	p := s.Partition()
	require.Len(t, p.Segments, 2)
	assert.Equal(t, curb.Parking, p.Segments[0].Type)
	assert.Equal(t, 25.0, p.Segments[0].Length)
	assert.Equal(t, curb.CurbCut, p.Segments[1].Type)
	assert.Equal(t, 12.0, p.Segments[1].Length)
	assert.InDelta(t, 63.0, p.UnknownRemaining, 1e-9)
	assert.InDeltaSlice(t, []float64{0, 25, 37, 100}, s.Offsets(), 1e-9)
	assert.Len(t, s.History(), len(edits)-1)
}

func TestReplayIsDeterministic(t *testing.T) {
	edits := []curb.Edit{
		{Op: curb.OpAdd, After: -1},
		{Op: curb.OpAdd, After: 0},
		{Op: curb.OpAddLeft, Index: 1, Length: 4},
	}
	a, _ := newSession(t, 60)
	b, _ := newSession(t, 60)
	assert.Empty(t, a.Replay(edits))
	assert.Empty(t, b.Replay(edits))
	assert.Equal(t, a.Partition(), b.Partition())
}

func TestResume(t *testing.T) {
	s, _ := newSession(t, 100)
	s.Replay([]curb.Edit{{Op: curb.OpAdd, After: -1}, {Op: curb.OpAdd, After: 0}})

	r, err := Resume(curb.DefaultConfig, s.Partition(), nil)
	require.NoError(t, err)
	require.NoError(t, r.Dispatch(curb.Edit{Op: curb.OpAdd, After: 1}))
	// Ids continue where the saved partition left off.
	ids := map[curb.SegmentID]bool{}
	for _, seg := range r.Partition().Segments {
		ids[seg.ID] = true
	}
	assert.Len(t, ids, 3)

	broken := s.Partition()
	broken.UnknownRemaining += 10
	_, err = Resume(curb.DefaultConfig, broken, nil)
	assert.Error(t, err)
}

func TestResumeWithoutIssuedCounter(t *testing.T) {
	s, _ := newSession(t, 100)
	s.Replay([]curb.Edit{{Op: curb.OpAdd, After: -1}, {Op: curb.OpAdd, After: 0}})

	// A saved partition that lost its counter would hand out ids again.
	data, err := json.Marshal(s.Partition())
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	delete(saved, "issued")
	data, err = json.Marshal(saved)
	require.NoError(t, err)

	var p curb.Partition
	require.NoError(t, json.Unmarshal(data, &p))
	_, err = Resume(curb.DefaultConfig, p, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ids issued")
}

func TestConcurrentDispatch(t *testing.T) {
	s, _ := newSession(t, 100)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var rejected int
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2; j++ {
				err := s.Dispatch(curb.Edit{Op: curb.OpAdd, After: -1})
				if err != nil {
					if !errors.Is(err, curb.ErrInvalidAdjustment) {
						t.Errorf("unexpected error %v", err)
					}
					mu.Lock()
					rejected++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	p := s.Partition()
	assert.Len(t, p.Segments, 5)
	assert.Equal(t, 11, rejected)
	assert.True(t, p.IsCollectionComplete())
	assert.NoError(t, p.Check())
}

func TestProject(t *testing.T) {
	s, _ := newSession(t, 40)
	s.Replay([]curb.Edit{{Op: curb.OpAdd, After: -1}, {Op: curb.OpAdd, After: 0}})

	got := s.Project(curb.DefaultProjector, orb.LineString{{0, 0}, {0, 0.001}})
	require.Len(t, got, 2)
	assert.Equal(t, got[0].Path[len(got[0].Path)-1], got[1].Path[0])
}
