package stopwatch

import (
	"fmt"
	"time"

	"companytime/internal/core/model"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
)

// Components is a millisecond count split into clock fields.
// Hours are not wrapped at 24.
type Components struct {
	Hours   int64
	Minutes int64
	Seconds int64
	Millis  int64
}

// Decompose splits millis into hours, minutes, seconds and milliseconds.
// Negative input is treated as zero.
func Decompose(millis int64) Components {
	if millis < 0 {
		millis = 0
	}
	return Components{
		Hours:   millis / millisPerHour,
		Minutes: millis % millisPerHour / millisPerMinute,
		Seconds: millis % millisPerMinute / millisPerSecond,
		Millis:  millis % millisPerSecond,
	}
}

// Total folds the components back into milliseconds.
func (components Components) Total() int64 {
	return components.Hours*millisPerHour +
		components.Minutes*millisPerMinute +
		components.Seconds*millisPerSecond +
		components.Millis
}

// String renders the components as HH:MM:SS.mmm.
func (components Components) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		components.Hours, components.Minutes, components.Seconds, components.Millis)
}

// FormatDuration renders millis as HH:MM:SS.mmm.
func FormatDuration(millis int64) string {
	return Decompose(millis).String()
}

// MoneyMade converts elapsed milliseconds into earnings at an hourly rate.
func MoneyMade(millis int64, wageRate float64) float64 {
	if millis <= 0 {
		return 0
	}
	return float64(millis) / millisPerHour * wageRate
}

// FormatMoney prefixes amount with symbol and two fractional digits.
func FormatMoney(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// Display is the derived text shown on the timer screen.
type Display struct {
	Duration string
	Money    string
}

// Derive computes the display strings for an elapsed time and settings.
func Derive(elapsed time.Duration, settings model.Settings) Display {
	millis := elapsed.Milliseconds()
	return Display{
		Duration: FormatDuration(millis),
		Money:    FormatMoney(settings.Currency, MoneyMade(millis, settings.WageRate)),
	}
}
