//go:build !android && !ios && !js && !wasm

package tray

import "fyne.io/systray"

func setTooltip(text string) {
	systray.SetTooltip(text)
}
