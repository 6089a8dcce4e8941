package timer

import (
	"sync"
	"time"

	"companytime/internal/core/model"
	"companytime/internal/core/stopwatch"
	"companytime/internal/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	title         = "Company Time!"
	moneyCaption  = "Money Made: "
	moneyTextSize = 32
	timeTextSize  = 44
	eventBuffer   = 8
)

// Window is the timer screen: elapsed time, money made and the
// Start/Stop and Reset controls.
type Window struct {
	window       fyne.Window
	runner       *stopwatch.Runner
	subscription *storage.Subscription
	moneyLabel   *canvas.Text
	timeLabel    *canvas.Text
	toggleButton *widget.Button
	resetButton  *widget.Button

	mu        sync.Mutex
	settings  model.Settings
	elapsed   time.Duration
	state     stopwatch.State
	onDisplay func(stopwatch.Display, stopwatch.State)

	onSettings  func()
	disposeOnce sync.Once
}

// New creates the timer screen. Settings are read once from store and
// then kept current through a subscription released by Dispose.
func New(app fyne.App, runner *stopwatch.Runner, store *storage.Store) *Window {
	window := app.NewWindow(title)

	textColor := theme.Color(theme.ColorNameForeground)
	moneyLabel := canvas.NewText("", textColor)
	moneyLabel.Alignment = fyne.TextAlignCenter
	moneyLabel.TextStyle = fyne.TextStyle{Monospace: true}
	moneyLabel.TextSize = moneyTextSize

	timeLabel := canvas.NewText("", textColor)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timeLabel.TextSize = timeTextSize

	toggleButton := widget.NewButton("Start", nil)
	toggleButton.Importance = widget.HighImportance
	resetButton := widget.NewButton("Reset", nil)

	screen := &Window{
		window:       window,
		runner:       runner,
		moneyLabel:   moneyLabel,
		timeLabel:    timeLabel,
		toggleButton: toggleButton,
		resetButton:  resetButton,
		settings:     store.Read(),
		state:        stopwatch.StateStopped,
	}

	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if screen.onSettings != nil {
			screen.onSettings()
		}
	})
	topBar := container.NewBorder(nil, nil, nil, settingsButton,
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	controls := container.NewGridWithColumns(1, toggleButton, resetButton)
	body := container.NewVBox(
		layout.NewSpacer(),
		moneyLabel,
		layout.NewSpacer(),
		timeLabel,
		layout.NewSpacer(),
		controls,
		layout.NewSpacer(),
	)
	window.SetContent(container.NewBorder(topBar, nil, nil, nil, container.NewPadded(body)))
	window.Resize(fyne.NewSize(420, 640))

	toggleButton.OnTapped = runner.Toggle
	resetButton.OnTapped = runner.Reset
	window.SetOnClosed(screen.Dispose)

	screen.subscription = store.Subscribe(screen.applyChange)
	events := runner.Subscribe(eventBuffer)
	go func() {
		for event := range events {
			screen.applyEvent(event)
		}
	}()

	screen.render()
	return screen
}

// Show displays the timer screen.
func (screen *Window) Show() {
	screen.window.Show()
}

// Window exposes the underlying Fyne window.
func (screen *Window) Window() fyne.Window {
	return screen.window
}

// SetOnSettings sets the handler for the settings button.
func (screen *Window) SetOnSettings(handler func()) {
	screen.onSettings = handler
}

// SetOnDisplay registers a callback invoked on the UI thread after every
// redraw, used to mirror the display in the system tray.
func (screen *Window) SetOnDisplay(handler func(stopwatch.Display, stopwatch.State)) {
	screen.mu.Lock()
	screen.onDisplay = handler
	screen.mu.Unlock()
	screen.render()
}

// Display returns the derived duration and money text.
func (screen *Window) Display() stopwatch.Display {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return stopwatch.Derive(screen.elapsed, screen.settings)
}

// Settings returns the wage settings currently applied.
func (screen *Window) Settings() model.Settings {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return screen.settings
}

// State returns the last stopwatch state observed by the screen.
func (screen *Window) State() stopwatch.State {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return screen.state
}

// Dispose releases the settings subscription and stops the stopwatch.
// It runs once, whichever teardown path calls it first.
func (screen *Window) Dispose() {
	screen.disposeOnce.Do(func() {
		screen.subscription.Close()
		screen.runner.Close()
	})
}

func (screen *Window) applyChange(change storage.Change) {
	screen.mu.Lock()
	screen.settings = screen.settings.WithChange(change.Key, change.Value)
	screen.mu.Unlock()
	screen.render()
}

func (screen *Window) applyEvent(event stopwatch.Event) {
	screen.mu.Lock()
	screen.elapsed = event.Elapsed
	screen.state = event.State
	screen.mu.Unlock()
	screen.render()
}

func (screen *Window) render() {
	screen.mu.Lock()
	display := stopwatch.Derive(screen.elapsed, screen.settings)
	state := screen.state
	onDisplay := screen.onDisplay
	screen.mu.Unlock()

	fyne.Do(func() {
		screen.moneyLabel.Text = moneyCaption + display.Money
		screen.moneyLabel.Refresh()
		screen.timeLabel.Text = display.Duration
		screen.timeLabel.Refresh()
		screen.toggleButton.SetText(toggleLabel(state))
		if onDisplay != nil {
			onDisplay(display, state)
		}
	})
}

func toggleLabel(state stopwatch.State) string {
	if state == stopwatch.StateRunning {
		return "Stop"
	}
	return "Start"
}
