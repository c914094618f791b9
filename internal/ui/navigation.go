package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/screens"
	"github.com/five82/gallery/internal/viewstate"
)

// Router is the navigation stack. The list screen is the implicit root;
// every NavigateTo pushes a detail screen on top of it.
//
// Navigation methods are called from Model.Update only. Loads they start are
// queued as commands and handed to Bubble Tea by the model.
type Router struct {
	ctx      context.Context
	detailer photos.Detailer
	logger   zerolog.Logger

	stack   []*detailFrame
	pending []tea.Cmd

	sendMu sync.Mutex
	send   func(tea.Msg)
}

type detailFrame struct {
	screen *screens.Detail
	cancel func()
}

// Ensure Router implements the navigation sink at compile time.
var _ screens.Navigator = (*Router)(nil)

// NewRouter returns an empty stack that builds detail screens from detailer.
func NewRouter(ctx context.Context, detailer photos.Detailer, logger zerolog.Logger) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Router{ctx: ctx, detailer: detailer, logger: logger}
}

// NavigateTo pushes the detail screen for dest and queues its first load.
func (r *Router) NavigateTo(dest screens.Destination) {
	detail := screens.NewDetail(r.detailer, dest.PhotoID, r.logger)
	cancel := detail.Subscribe(func(viewstate.Snapshot[photos.PhotoDetail]) { r.notify() })
	r.stack = append(r.stack, &detailFrame{screen: detail, cancel: cancel})
	r.pending = append(r.pending, runCmd(r.ctx, detail.Load))
	r.logger.Debug().Int("photo_id", dest.PhotoID).Int("depth", len(r.stack)).Msg("navigate to detail")
}

// NavigateBack pops the top detail screen. It does nothing at the root.
func (r *Router) NavigateBack() {
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	top.cancel()
	r.stack = r.stack[:len(r.stack)-1]
}

// NavigateToRoot pops every detail screen.
func (r *Router) NavigateToRoot() {
	for len(r.stack) > 0 {
		r.NavigateBack()
	}
}

// Depth is the number of detail screens above the root.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Top returns the visible detail screen, or nil at the root.
func (r *Router) Top() *screens.Detail {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1].screen
}

// SetSender routes state-change notifications to a running program.
func (r *Router) SetSender(send func(tea.Msg)) {
	r.sendMu.Lock()
	r.send = send
	r.sendMu.Unlock()
}

func (r *Router) notify() {
	r.sendMu.Lock()
	send := r.send
	r.sendMu.Unlock()
	if send != nil {
		send(stateChangedMsg{})
	}
}

func (r *Router) drain() []tea.Cmd {
	cmds := r.pending
	r.pending = nil
	return cmds
}

func runCmd(ctx context.Context, fn func(context.Context)) tea.Cmd {
	return func() tea.Msg {
		fn(ctx)
		return nil
	}
}
