//go:build android || ios || js || wasm

package tray

func setTooltip(string) {}
