package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"companytime/internal/core/stopwatch"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case settingsChangedMsg:
		m.settings = m.settings.WithChange(msg.Key, msg.Value)
		return m, waitForChange(m.changes)

	case tickMsg:
		if msg.generation != m.generation || !m.timer.Running() {
			return m, nil
		}
		m.timer.Tick(msg.at)
		return m, m.scheduleTick()
	}

	if m.state == StateSettings {
		return m.updateSettings(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Toggle):
			return m.toggle()
		case key.Matches(msg, m.keys.Reset):
			m.timer.Reset()
		case key.Matches(msg, m.keys.Settings):
			return m.openSettings()
		}
	}
	return m, nil
}

func (m Model) toggle() (Model, tea.Cmd) {
	if m.timer.Toggle(m.clock.Now()) == stopwatch.StateRunning {
		m.generation++
		return m, m.scheduleTick()
	}
	return m, nil
}

func (m Model) openSettings() (Model, tea.Cmd) {
	m.settingsForm = newSettingsFormModel(m.store.ReadRaw())
	m.form = NewSettingsForm(m.settingsForm)
	m.state = StateSettings
	return m, m.form.Init()
}

// leaveSettings hands the edited pair back to the store and returns to
// the timer screen.
func (m Model) leaveSettings() Model {
	if m.settingsForm != nil {
		m.store.Write(m.settingsForm.Wage, m.settingsForm.Currency)
	}
	m.form = nil
	m.settingsForm = nil
	m.state = StateTimer
	return m
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m.leaveSettings(), nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted, huh.StateAborted:
		return m.leaveSettings(), nil
	}
	return m, cmd
}
