package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"companytime/internal/core/model"
	"companytime/internal/logger"
	"companytime/internal/platform"
	"companytime/internal/storage"
	"companytime/internal/tui"
)

const appName = "CompanyTime"

var CLI struct {
	Version kong.VersionFlag
	Backend string        `help:"Settings backend (yaml or sqlite)." enum:"yaml,sqlite" default:"yaml"`
	Path    string        `help:"Settings file path. Defaults to the user config dir." type:"path"`
	Tick    time.Duration `help:"Display refresh interval." default:"16ms"`
	Debug   bool          `help:"Mirror debug logging to stderr."`
	LogDir  string        `help:"Log directory. Defaults to the user config dir." type:"path"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("companytime"),
		kong.Description("Stopwatch that shows what your time is worth"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	initLogger(CLI.LogDir, CLI.Debug)

	kind := storage.Kind(CLI.Backend)
	path, err := settingsPath(kind, CLI.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(kind, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close settings store", "error", err)
		}
	}()

	m := tui.New(store, tui.Options{TickInterval: CLI.Tick})
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func settingsPath(kind storage.Kind, path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if kind == storage.KindSQLite {
		dir, err := platform.NewService().AppConfigDir(appName)
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "settings.db"), nil
	}
	return storage.DefaultYAMLPath(platform.NewService(), appName, model.Namespace)
}

// initLogger keeps log output in a file so it does not draw over the
// terminal UI. Without a writable dir logging is discarded.
func initLogger(dir string, debug bool) {
	if dir == "" {
		configDir, err := platform.NewService().AppConfigDir(appName)
		if err != nil {
			logger.SetLogger(log.New(io.Discard))
			return
		}
		dir = filepath.Join(configDir, "logs")
	}
	if err := logger.Init(logger.Config{LogDir: dir, Debug: debug}); err != nil {
		logger.SetLogger(log.New(io.Discard))
	}
}
