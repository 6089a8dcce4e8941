package resources

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"fyne.io/fyne/v2"
)

const iconDir = "icons/"

// Icon file names.
const (
	AppIcon     = "app.svg"
	RunningIcon = "running.svg"
	StoppedIcon = "stopped.svg"
)

//go:embed icons/*.svg
var iconFS embed.FS

var iconCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+fileName, &iconCache)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// StateIcon picks the tray icon for the stopwatch run state.
func StateIcon(running bool) fyne.Resource {
	if running {
		return MustIcon(RunningIcon)
	}
	return MustIcon(StoppedIcon)
}

func loadResource(fs embed.FS, filePath string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(filePath); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", filePath, err)
	}

	resource := fyne.NewStaticResource(path.Base(filePath), data)
	actual, _ := cache.LoadOrStore(filePath, resource)
	return actual.(fyne.Resource), nil
}
