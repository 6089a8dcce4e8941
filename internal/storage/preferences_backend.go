package storage

import (
	"companytime/internal/core/model"

	"fyne.io/fyne/v2"
)

// PreferencesBackend keeps the namespace in the Fyne app preferences,
// which is the durable store available on mobile targets.
type PreferencesBackend struct {
	prefs     fyne.Preferences
	namespace string
}

// NewPreferencesBackend wraps prefs, prefixing keys with namespace.
func NewPreferencesBackend(prefs fyne.Preferences, namespace string) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs, namespace: namespace}
}

// Load returns the known settings keys that hold a value.
func (backend *PreferencesBackend) Load() (map[string]string, error) {
	values := map[string]string{}
	for _, key := range []string{model.KeyWage, model.KeyCurrency} {
		if value := backend.prefs.String(backend.prefKey(key)); value != "" {
			values[key] = value
		}
	}
	return values, nil
}

// Commit sets every value; Fyne persists preferences asynchronously.
func (backend *PreferencesBackend) Commit(values map[string]string) error {
	for key, value := range values {
		backend.prefs.SetString(backend.prefKey(key), value)
	}
	return nil
}

func (backend *PreferencesBackend) prefKey(key string) string {
	return backend.namespace + "." + key
}
