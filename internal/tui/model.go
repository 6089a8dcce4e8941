package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"companytime/internal/core/model"
	"companytime/internal/core/stopwatch"
	"companytime/internal/storage"
)

type SessionState int

const (
	StateTimer SessionState = iota
	StateSettings
)

// changeBuffer bounds settings changes queued between renders. Commits
// only happen inside Update and each yields at most one change per key,
// so the listener's send never fills the buffer.
const changeBuffer = 16

type SettingsFormModel struct {
	Wage     string
	Currency string
}

type Options struct {
	TickInterval time.Duration
	Clock        stopwatch.Clock
}

// tickMsg belongs to the run started at generation; ticks from an
// earlier run are dropped.
type tickMsg struct {
	generation int
	at         time.Time
}

type settingsChangedMsg storage.Change

type Model struct {
	store        *storage.Store
	subscription *storage.Subscription
	changes      chan storage.Change
	timer        *stopwatch.Timer
	clock        stopwatch.Clock
	tickInterval time.Duration
	generation   int
	settings     model.Settings
	state        SessionState
	keys         KeyMap
	help         help.Model
	form         *huh.Form
	settingsForm *SettingsFormModel
	width        int
	height       int
	quitting     bool
}

// New builds the terminal model over store. The model stays subscribed
// to store until Close.
func New(store *storage.Store, options Options) Model {
	if options.TickInterval <= 0 {
		options.TickInterval = stopwatch.DefaultTickInterval
	}
	if options.Clock == nil {
		options.Clock = stopwatch.SystemClock{}
	}

	changes := make(chan storage.Change, changeBuffer)
	m := Model{
		store:        store,
		changes:      changes,
		timer:        stopwatch.NewTimer(),
		clock:        options.Clock,
		tickInterval: options.TickInterval,
		settings:     store.Read(),
		state:        StateTimer,
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}
	m.subscription = store.Subscribe(func(change storage.Change) {
		changes <- change
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// Close releases the store subscription.
func (m Model) Close() {
	m.subscription.Close()
}

func (m Model) Settings() model.Settings {
	return m.settings
}

func (m Model) State() SessionState {
	return m.state
}

func (m Model) Display() stopwatch.Display {
	return stopwatch.Derive(m.timer.Elapsed(), m.settings)
}

func (m Model) Running() bool {
	return m.timer.Running()
}

func waitForChange(changes <-chan storage.Change) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return settingsChangedMsg(change)
	}
}

func (m Model) scheduleTick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.tickInterval, func(at time.Time) tea.Msg {
		return tickMsg{generation: generation, at: at}
	})
}
