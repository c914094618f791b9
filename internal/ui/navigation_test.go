package ui

import (
	"context"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gallery/internal/screens"
)

func TestRouter_StackSemantics(t *testing.T) {
	r := NewRouter(context.Background(), fakeDetailer{}, zerolog.Nop())

	r.NavigateBack()
	assert.Equal(t, 0, r.Depth(), "back at root is a no-op")

	r.NavigateTo(screens.Destination{PhotoID: 5})
	r.NavigateTo(screens.Destination{PhotoID: 6})
	require.Equal(t, 2, r.Depth())
	assert.Equal(t, 6, r.Top().PhotoID())
	assert.Len(t, r.drain(), 2)
	assert.Empty(t, r.drain())

	r.NavigateBack()
	assert.Equal(t, 5, r.Top().PhotoID())

	r.NavigateToRoot()
	assert.Equal(t, 0, r.Depth())
}

func TestRouter_NotifiesOnlyForVisibleStack(t *testing.T) {
	r := NewRouter(context.Background(), fakeDetailer{}, zerolog.Nop())
	var sent atomic.Int32
	r.SetSender(func(msg tea.Msg) {
		if _, ok := msg.(stateChangedMsg); ok {
			sent.Add(1)
		}
	})

	r.NavigateTo(screens.Destination{PhotoID: 1})
	detail := r.Top()
	detail.Load(context.Background())
	assert.Equal(t, int32(1), sent.Load())

	r.NavigateBack()
	detail.Refresh(context.Background())
	assert.Equal(t, int32(1), sent.Load(), "popped screens are unsubscribed")
}
