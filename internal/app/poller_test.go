package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gallery/internal/config"
	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/viewstate"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 30 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 30 * time.Second},
		{"negative failures", -1, 30 * time.Second},
		{"one failure", 1, time.Minute},
		{"two failures", 2, 2 * time.Minute},
		{"three failures", 3, 4 * time.Minute},
		{"four failures capped", 4, 5 * time.Minute}, // Would be 8m, capped to 5m
		{"many failures capped", 100, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 80; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff || got <= 0 {
			t.Errorf("calculateBackoff(%d, %v) = %v, outside (0, %v]", failures, baseInterval, got, maxBackoff)
		}
	}
}

type countingTarget struct {
	mu    sync.Mutex
	calls int
	store viewstate.Store[[]photos.Photo]
	fail  bool
}

func (c *countingTarget) Refresh(context.Context) {
	c.mu.Lock()
	c.calls++
	fail := c.fail
	c.mu.Unlock()
	if fail {
		c.store.Set(viewstate.FailedState[[]photos.Photo](viewstate.PresentableError{Header: "Oops!"}))
		return
	}
	c.store.Set(viewstate.ReadyState([]photos.Photo{}))
}

func (c *countingTarget) Snapshot() viewstate.Snapshot[[]photos.Photo] {
	return c.store.Snapshot()
}

func (c *countingTarget) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestStartRefresher_RefreshesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	target := &countingTarget{}

	StartRefresher(ctx, target, 10*time.Millisecond, zerolog.Nop())
	require.Eventually(t, func() bool { return target.count() >= 3 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	stopped := target.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, target.count(), "no refreshes after cancel")
}

func TestStartRefresher_BacksOffWhileFailing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	target := &countingTarget{fail: true}

	StartRefresher(ctx, target, 20*time.Millisecond, zerolog.Nop())
	require.Eventually(t, func() bool { return target.count() >= 1 }, 2*time.Second, 5*time.Millisecond)

	// After the first failure the next wait doubles, so within 150ms at most
	// 20 + 40 + 80 = 140ms worth of refreshes can happen.
	time.Sleep(150 * time.Millisecond)
	assert.LessOrEqual(t, target.count(), 4)
	assert.GreaterOrEqual(t, target.Snapshot().ConsecutiveFailures, 1)
}

func TestStartRefresher_DisabledForZeroInterval(t *testing.T) {
	target := &countingTarget{}
	StartRefresher(context.Background(), target, 0, zerolog.Nop())
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, target.count())
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, applyOverrides(&cfg, Options{BaseURL: " http://127.0.0.1:8089/ ", Timeout: 3 * time.Second}))
	assert.Equal(t, "http://127.0.0.1:8089/", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)

	before := cfg
	require.NoError(t, applyOverrides(&cfg, Options{}))
	assert.Equal(t, before, cfg)

	assert.Error(t, applyOverrides(&cfg, Options{BaseURL: "not a url"}))
}
