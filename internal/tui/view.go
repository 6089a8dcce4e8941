package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"companytime/internal/core/stopwatch"
)

const title = "Company Time!"

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == StateSettings && m.form != nil {
		return m.settingsView()
	}
	return m.timerView()
}

func (m Model) timerView() string {
	display := m.Display()

	status := stoppedStyle.Render("stopped")
	if m.timer.State() == stopwatch.StateRunning {
		status = runningStyle.Render("running")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"Money Made: "+moneyStyle.Render(display.Money),
		clockStyle.Render(display.Duration),
		status,
		hintStyle.Render(m.help.View(m.keys)),
	)
	return docStyle.Render(body)
}

func (m Model) settingsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(m.form.View())
	b.WriteString(hintStyle.Render("esc: save and go back • enter: next"))
	return docStyle.Render(b.String())
}
