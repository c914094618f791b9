package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/gallery/internal/logtail"
	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/prefs"
	"github.com/five82/gallery/internal/screens"
	"github.com/five82/gallery/internal/viewstate"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	List    *screens.List
	Router  *Router
	Logger  zerolog.Logger

	Prefs     prefs.Prefs
	PrefsPath string // empty disables persisting preference changes
	LogPath   string // log file shown by the overlay
	Tick      time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	list      *screens.List
	router    *Router
	logger    zerolog.Logger
	keys      keyMap
	prefs     prefs.Prefs
	prefsPath string
	logPath   string
	tick      time.Duration

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	spinner  spinner.Model
	spinning bool

	// List state
	selected int

	// Overlays
	showHelp   bool
	showLogs   bool
	logEntries []logtail.Entry
	logErr     error
}

// New creates the model and subscribes it to the list screen.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Default().Theme
	}

	router := opts.Router
	opts.List.Subscribe(func(viewstate.Snapshot[[]photos.Photo]) { router.notify() })

	return Model{
		ctx:       ctx,
		list:      opts.List,
		router:    router,
		logger:    opts.Logger,
		keys:      DefaultKeyMap(),
		prefs:     p,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		tick:      tick,
		theme:     GetTheme(p.Theme),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		spinning:  true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.tick),
		m.spinner.Tick,
		runCmd(m.ctx, m.list.Load),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case stateChangedMsg:
		m.clampSelection()
		return m, m.ensureSpinner()

	case spinner.TickMsg:
		if m.currentPhase() != viewstate.Loading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.tick)}
		if m.showLogs {
			cmds = append(cmds, readLogsCmd(m.logPath))
		}
		return m, tea.Batch(cmds...)

	case logsMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleURLs):
		m.prefs.ShowURLs = !m.prefs.ShowURLs
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		if m.showLogs {
			return m, readLogsCmd(m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.showLogs {
			m.showLogs = false
			return m, nil
		}
		m.router.NavigateBack()
		return m, m.ensureSpinner()

	case key.Matches(msg, m.keys.Root):
		m.router.NavigateToRoot()
		return m, m.ensureSpinner()

	case key.Matches(msg, m.keys.Reload):
		return m, runCmd(m.ctx, m.currentRefresh())

	case key.Matches(msg, m.keys.Open):
		return m.handleOpen()
	}

	if m.router.Depth() == 0 {
		m.handleListMove(msg)
	}
	return m, nil
}

// handleOpen retries a failed screen or opens the selected photo.
func (m Model) handleOpen() (tea.Model, tea.Cmd) {
	if pe := m.currentError(); pe != nil {
		if pe.Retry == nil {
			return m, nil
		}
		return m, runCmd(m.ctx, pe.Retry)
	}
	if m.router.Depth() > 0 {
		return m, nil
	}
	st := m.list.State()
	if st.Phase != viewstate.Ready || len(st.Data) == 0 {
		return m, nil
	}
	m.list.Select(st.Data[clamp(m.selected, 0, len(st.Data)-1)])
	cmds := m.router.drain()
	cmds = append(cmds, m.ensureSpinner())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleListMove(msg tea.KeyMsg) {
	st := m.list.State()
	if st.Phase != viewstate.Ready {
		return
	}
	count := len(st.Data)
	if count == 0 {
		return
	}
	page := maxInt(m.contentHeight()-1, 1)

	switch {
	case key.Matches(msg, m.keys.Down):
		m.selected++
	case key.Matches(msg, m.keys.Up):
		m.selected--
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.selected += page
	case key.Matches(msg, m.keys.PageUp):
		m.selected -= page
	}
	m.selected = clamp(m.selected, 0, count-1)
}

func (m *Model) clampSelection() {
	st := m.list.State()
	if st.Phase != viewstate.Ready {
		return
	}
	m.selected = clamp(m.selected, 0, len(st.Data)-1)
}

// ensureSpinner restarts the spinner tick when the visible screen is loading.
func (m *Model) ensureSpinner() tea.Cmd {
	if m.spinning || m.currentPhase() != viewstate.Loading {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m Model) currentPhase() viewstate.Phase {
	if d := m.router.Top(); d != nil {
		return d.State().Phase
	}
	return m.list.State().Phase
}

func (m Model) currentError() *viewstate.PresentableError {
	if d := m.router.Top(); d != nil {
		return d.State().Error
	}
	return m.list.State().Error
}

func (m Model) currentRefresh() func(context.Context) {
	if d := m.router.Top(); d != nil {
		return d.Refresh
	}
	return m.list.Refresh
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn().Err(err).Msg("save prefs failed")
	}
}

func (m Model) contentHeight() int {
	return maxInt(m.height-2, 1)
}

// Messages

type tickMsg time.Time

// stateChangedMsg tells the model a screen's view state moved. The model
// reads the new state from the screen itself.
type stateChangedMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	opts.Router.SetSender(p.Send)
	defer opts.Router.SetSender(nil)
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
