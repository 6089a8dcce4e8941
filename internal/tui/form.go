package tui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"companytime/internal/core/model"
)

var errInvalidWage = errors.New("enter a positive hourly wage")

func validateWage(value string) error {
	if _, ok := model.ValidWage(value); !ok {
		return errInvalidWage
	}
	return nil
}

// NewSettingsForm binds a wage input and a currency picker to fm.
func NewSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Wage").
				Description("Hourly rate").
				Placeholder(model.DefaultWage).
				Value(&fm.Wage).
				Validate(validateWage),
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions(model.Currencies...)...).
				Value(&fm.Currency),
		),
	).WithShowHelp(false)
}

func newSettingsFormModel(wage, currency string) *SettingsFormModel {
	return &SettingsFormModel{
		Wage:     wage,
		Currency: model.ParseCurrency(currency),
	}
}
