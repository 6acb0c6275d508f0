package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRenderer struct {
	frames atomic.Int64
}

func (r *countingRenderer) Render() error {
	r.frames.Add(1)
	return nil
}

func (r *countingRenderer) Resize(int, int) {}

func TestRun_HeadlessTicksUntilQuit(t *testing.T) {
	r := &countingRenderer{}
	e := NewEngine(WithTickRate(200), WithRenderer(r), WithRenderFrameLimit(200))

	var ticks atomic.Int64
	var total atomic.Int64 // microseconds of dt
	e.SetTickCallback(func(dt float32) {
		ticks.Add(1)
		total.Add(int64(dt * 1e6))
		if ticks.Load() == 10 {
			e.Quit()
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}

	assert.GreaterOrEqual(t, ticks.Load(), int64(10))
	assert.Positive(t, total.Load())
	assert.Positive(t, r.frames.Load())

	select {
	case <-e.Done():
	default:
		t.Fatal("Done not closed after Quit")
	}
}

func TestQuit_Idempotent(t *testing.T) {
	e := NewEngine()
	require.NotPanics(t, func() {
		e.Quit()
		e.Quit()
	})
}

func TestTickPeriod(t *testing.T) {
	assert.Equal(t, time.Second/60, tickPeriod(0))
	assert.Equal(t, 10*time.Millisecond, tickPeriod(100))
	assert.Equal(t, time.Duration(0), framePeriod(-1))
	assert.Equal(t, 20*time.Millisecond, framePeriod(50))
}

func TestProfilerToggle_WhileRunning(t *testing.T) {
	e := NewEngine(WithTickRate(200), WithRenderer(&countingRenderer{}), WithRenderFrameLimit(200))

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	for i := range 50 {
		if i%2 == 0 {
			e.EnableProfiler()
		} else {
			e.DisableProfiler()
		}
		time.Sleep(time.Millisecond)
	}
	e.Quit()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}
}
