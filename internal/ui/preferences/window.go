package preferences

import (
	"errors"

	"companytime/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var errInvalidWage = errors.New("enter a positive hourly wage")

// Window handles the settings screen. Edits are handed back only when
// the screen is left, never incrementally.
type Window struct {
	window   fyne.Window
	onCommit func(wage, currency string)
	wage     *widget.Entry
	currency *widget.Select
}

// New creates a settings window; onCommit receives the raw wage text
// and the selected currency symbol on exit.
func New(app fyne.App, onCommit func(wage, currency string)) *Window {
	window := app.NewWindow("Settings")

	wage := widget.NewEntry()
	wage.SetPlaceHolder(model.DefaultWage)
	wage.Validator = func(text string) error {
		if _, ok := model.ValidWage(text); !ok {
			return errInvalidWage
		}
		return nil
	}

	currency := widget.NewSelect(model.Currencies, nil)
	currency.SetSelected(model.DefaultCurrency)

	prefs := &Window{
		window:   window,
		onCommit: onCommit,
		wage:     wage,
		currency: currency,
	}

	backButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), prefs.handleBack)
	topBar := container.NewHBox(backButton,
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	form := widget.NewForm(
		widget.NewFormItem("Wage", wage),
		widget.NewFormItem("Currency", currency),
	)

	window.SetContent(container.NewBorder(topBar, nil, nil, nil, container.NewPadded(form)))
	window.SetCloseIntercept(prefs.handleBack)
	window.Resize(fyne.NewSize(420, 320))

	return prefs
}

// Show fills the form with the stored text and displays the window.
func (prefs *Window) Show(wage, currency string) {
	prefs.UpdateSettings(wage, currency)
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values. The wage text is shown as
// stored; an unknown currency shows the default symbol.
func (prefs *Window) UpdateSettings(wage, currency string) {
	prefs.wage.SetText(wage)
	prefs.currency.SetSelected(model.ParseCurrency(currency))
}

// Values returns the pair that would be committed on exit.
func (prefs *Window) Values() (string, string) {
	return prefs.wage.Text, prefs.currency.Selected
}

func (prefs *Window) handleBack() {
	wage, currency := prefs.Values()
	if prefs.onCommit != nil {
		prefs.onCommit(wage, currency)
	}
	prefs.window.Hide()
}
