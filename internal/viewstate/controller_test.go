package viewstate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gallery/internal/rest"
)

// switchable is a fetcher whose result can be changed between calls.
type switchable struct {
	mu    sync.Mutex
	calls int
	data  []int
	err   error
}

func (s *switchable) fetch(context.Context) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.data, s.err
}

func (s *switchable) set(data []int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, s.err = data, err
}

func (s *switchable) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestController_StartsLoading(t *testing.T) {
	c := NewController("list", (&switchable{}).fetch)
	assert.Equal(t, Loading, c.State().Phase)
	assert.Nil(t, c.State().Error)
}

func TestController_LoadSuccessPreservesOrder(t *testing.T) {
	src := &switchable{data: []int{1, 2, 3}}
	c := NewController("list", src.fetch)

	c.Load(context.Background())

	st := c.State()
	require.Equal(t, Ready, st.Phase)
	assert.Equal(t, []int{1, 2, 3}, st.Data)
	assert.Nil(t, st.Error)
}

func TestController_EmptyResultIsReady(t *testing.T) {
	src := &switchable{data: []int{}}
	c := NewController("list", src.fetch)

	c.Load(context.Background())

	st := c.State()
	assert.Equal(t, Ready, st.Phase)
	assert.Empty(t, st.Data)
}

func TestController_OfflineFailurePresentsOfflineText(t *testing.T) {
	src := &switchable{err: &rest.Error{Kind: rest.KindOffline, Err: errors.New("dial")}}
	c := NewController("list", src.fetch)

	c.Load(context.Background())

	st := c.State()
	require.Equal(t, Failed, st.Phase)
	require.NotNil(t, st.Error)
	assert.Equal(t, "You are offline!", st.Error.Header)
	assert.Equal(t, "Retry", st.Error.Button)
	assert.NotNil(t, st.Error.Retry)
}

func TestController_RetryRefetchesExactlyOnce(t *testing.T) {
	src := &switchable{err: rest.StatusError(500)}
	c := NewController("detail", src.fetch)

	c.Load(context.Background())
	require.Equal(t, Failed, c.State().Phase)
	before := src.count()

	src.set([]int{7}, nil)
	c.State().Error.Retry(context.Background())

	assert.Equal(t, before+1, src.count())
	st := c.State()
	assert.Equal(t, Ready, st.Phase)
	assert.Equal(t, []int{7}, st.Data)
}

func TestController_RefreshPassesThroughLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	first := true
	c := NewController("list", func(context.Context) ([]int, error) {
		if first {
			first = false
			return []int{1}, nil
		}
		close(started)
		<-release
		return []int{2}, nil
	})
	c.Load(context.Background())
	require.Equal(t, Ready, c.State().Phase)

	var (
		mu     sync.Mutex
		phases []Phase
	)
	cancel := c.Subscribe(func(s Snapshot[[]int]) {
		mu.Lock()
		phases = append(phases, s.Phase)
		mu.Unlock()
	})
	defer cancel()

	done := make(chan struct{})
	go func() {
		c.Refresh(context.Background())
		close(done)
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never started")
	}
	assert.Equal(t, Loading, c.State().Phase, "state while refresh fetch is in flight")

	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Phase{Loading, Ready}, phases)
	assert.Equal(t, []int{2}, c.State().Data)
}

func TestController_OverlappingRefreshLastResolutionWins(t *testing.T) {
	slowRelease := make(chan struct{})
	var n int
	var mu sync.Mutex
	c := NewController("list", func(context.Context) ([]int, error) {
		mu.Lock()
		n++
		call := n
		mu.Unlock()
		if call == 1 {
			<-slowRelease
			return []int{1}, nil
		}
		return []int{2}, nil
	})

	slowDone := make(chan struct{})
	go func() {
		c.Refresh(context.Background())
		close(slowDone)
	}()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return n == 1
	}, 2*time.Second, 5*time.Millisecond)

	c.Refresh(context.Background())
	assert.Equal(t, []int{2}, c.State().Data)

	close(slowRelease)
	<-slowDone
	assert.Equal(t, []int{1}, c.State().Data)
}

func TestStore_SubscribeCancelAndBookkeeping(t *testing.T) {
	var s Store[string]
	var seen []Phase
	cancel := s.Subscribe(func(snap Snapshot[string]) { seen = append(seen, snap.Phase) })

	s.Set(FailedState[string](Present(errors.New("x"), nil)))
	s.Set(FailedState[string](Present(errors.New("y"), nil)))
	assert.Equal(t, 2, s.Snapshot().ConsecutiveFailures)
	assert.False(t, s.Snapshot().LastUpdated.IsZero())

	s.Set(LoadingState[string]())
	assert.Equal(t, 2, s.Snapshot().ConsecutiveFailures)

	s.Set(ReadyState("ok"))
	assert.Equal(t, 0, s.Snapshot().ConsecutiveFailures)

	cancel()
	cancel()
	s.Set(LoadingState[string]())
	assert.Equal(t, []Phase{Failed, Failed, Loading, Ready}, seen)
}
