package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"companytime/internal/platform"

	"gopkg.in/yaml.v3"
)

// YAMLBackend keeps a namespace as a flat YAML map in a single file.
type YAMLBackend struct {
	path string
}

// NewYAMLBackend returns a backend reading and writing path.
func NewYAMLBackend(path string) *YAMLBackend {
	return &YAMLBackend{path: path}
}

// DefaultYAMLPath resolves <user config dir>/<appName>/<namespace>.yaml.
func DefaultYAMLPath(service platform.Service, appName, namespace string) (string, error) {
	appDir, err := service.AppConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(appDir, namespace+".yaml"), nil
}

// Path returns the backing file path.
func (backend *YAMLBackend) Path() string {
	return backend.path
}

// Load reads every stored key. A missing file is an empty namespace.
func (backend *YAMLBackend) Load() (map[string]string, error) {
	rawData, err := os.ReadFile(backend.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(rawData, &values); err != nil {
		return nil, fmt.Errorf("parse settings yaml: %w", err)
	}
	return values, nil
}

// Commit merges values into the file and replaces it in one rename.
func (backend *YAMLBackend) Commit(values map[string]string) error {
	merged, err := backend.Load()
	if err != nil {
		// A corrupt file is overwritten rather than blocking every save.
		merged = map[string]string{}
	}
	for key, value := range values {
		merged[key] = value
	}

	if err := os.MkdirAll(filepath.Dir(backend.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(merged)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(backend.path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, err := tempFile.Write(serialized); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close settings file: %w", err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		return fmt.Errorf("chmod settings file: %w", err)
	}
	if err := os.Rename(tempPath, backend.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}
