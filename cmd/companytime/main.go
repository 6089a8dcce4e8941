package main

import (
	"path/filepath"

	"companytime/internal/core/model"
	"companytime/internal/core/stopwatch"
	"companytime/internal/logger"
	"companytime/internal/platform"
	"companytime/internal/storage"
	"companytime/internal/ui/preferences"
	"companytime/internal/ui/timer"
	"companytime/internal/ui/tray"
	"companytime/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName = "CompanyTime"
	appID   = "dev.lutitious.companytime"
)

func main() {
	initLogger()

	guard, err := platform.AcquireSingleInstance(appID)
	if err != nil {
		logger.Warn("Another instance is already running", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))
	desktopApp, isDesktop := fyneApp.(desktop.App)

	store := openStore(fyneApp, isDesktop)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close settings store", "error", err)
		}
	}()

	runner := stopwatch.NewRunner(stopwatch.Config{TickInterval: stopwatch.DefaultTickInterval})
	screen := timer.New(fyneApp, runner, store)
	defer screen.Dispose()
	screen.Window().SetMaster()

	prefsWindow := preferences.New(fyneApp, store.Write)
	showSettings := func() {
		prefsWindow.Show(store.ReadRaw())
	}
	screen.SetOnSettings(showSettings)

	if isDesktop {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnToggle:   runner.Toggle,
			OnReset:    runner.Reset,
			OnSettings: showSettings,
			OnShow:     screen.Show,
			OnQuit:     fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.StateIcon(false))
		screen.SetOnDisplay(func(display stopwatch.Display, state stopwatch.State) {
			running := state == stopwatch.StateRunning
			trayManager.SetStatus("Money Made: " + display.Money)
			if trayManager.Running() != running {
				desktopApp.SetSystemTrayIcon(resources.StateIcon(running))
			}
			trayManager.SetRunning(running)
		})
	}

	screen.Show()
	fyneApp.Run()
}

// openStore keeps settings in a YAML file on desktop and in the app
// preferences elsewhere; mobile sandboxes have no user config dir.
func openStore(fyneApp fyne.App, isDesktop bool) *storage.Store {
	if isDesktop {
		path, err := storage.DefaultYAMLPath(platform.NewService(), appName, model.Namespace)
		if err == nil {
			return storage.NewStore(storage.NewYAMLBackend(path))
		}
		logger.Warn("No config dir, keeping settings in app preferences", "error", err)
	}
	return storage.NewStore(storage.NewPreferencesBackend(fyneApp.Preferences(), model.Namespace))
}

// initLogger adds a rotating log file next to the settings when a config
// dir is available; otherwise logging stays on stderr.
func initLogger() {
	dir, err := platform.NewService().AppConfigDir(appName)
	if err != nil {
		logger.Warn("No config dir, logging to stderr only", "error", err)
		return
	}
	if err := logger.Init(logger.Config{LogDir: filepath.Join(dir, "logs"), Stderr: true}); err != nil {
		logger.Warn("Failed to open log file", "error", err)
	}
}
