package model

import (
	"math"
	"strconv"
	"strings"
)

// Persisted key names inside the settings namespace.
const (
	Namespace   = "settings"
	KeyWage     = "wage"
	KeyCurrency = "currency"
)

// Default values used whenever a stored value is absent or malformed.
const (
	DefaultWage     = "7.25"
	DefaultCurrency = "$"

	defaultWageRate = 7.25
)

// Currencies lists the symbols offered on the settings screen.
var Currencies = []string{"$", "€", "£", "¥"}

// Settings holds the user-editable wage configuration.
type Settings struct {
	WageRate float64
	Currency string
}

// DefaultSettings returns settings used before anything is committed.
func DefaultSettings() Settings {
	return Settings{
		WageRate: defaultWageRate,
		Currency: DefaultCurrency,
	}
}

// WithChange returns a copy with a single persisted key applied.
// Unknown keys leave the settings untouched.
func (settings Settings) WithChange(key, value string) Settings {
	switch key {
	case KeyWage:
		settings.WageRate = ParseWage(value)
	case KeyCurrency:
		settings.Currency = ParseCurrency(value)
	}
	return settings
}

// ParseWage converts a stored wage string, falling back to the default.
func ParseWage(value string) float64 {
	rate, ok := ValidWage(value)
	if !ok {
		return defaultWageRate
	}
	return rate
}

// ValidWage reports whether value is a positive finite decimal.
func ValidWage(value string) (float64, bool) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// ParseCurrency returns value when it is a known symbol, else the default.
func ParseCurrency(value string) string {
	if IsCurrency(value) {
		return value
	}
	return DefaultCurrency
}

// IsCurrency reports whether symbol belongs to Currencies.
func IsCurrency(symbol string) bool {
	for _, known := range Currencies {
		if known == symbol {
			return true
		}
	}
	return false
}
