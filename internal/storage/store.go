package storage

import (
	"io"
	"strings"
	"sync"

	"companytime/internal/core/model"
	"companytime/internal/logger"
)

// Backend is a durable key-value namespace.
type Backend interface {
	Load() (map[string]string, error)
	Commit(values map[string]string) error
}

// Change carries the new value of a single settings key.
type Change struct {
	Key   string
	Value string
}

// Listener receives one Change per modified key.
type Listener func(Change)

// Store reads and commits settings and notifies subscribers of changes.
// Persistence failures are logged and never returned.
type Store struct {
	backend  Backend
	commitMu sync.Mutex

	mu            sync.Mutex
	subscriptions []*Subscription
}

// NewStore wraps backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Read returns the persisted settings with defaults for absent or
// malformed values.
func (store *Store) Read() model.Settings {
	settings := model.DefaultSettings()
	values, err := store.backend.Load()
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", "error", err)
		return settings
	}
	for _, key := range []string{model.KeyWage, model.KeyCurrency} {
		if value, ok := values[key]; ok {
			settings = settings.WithChange(key, value)
		}
	}
	return settings
}

// ReadRaw returns the stored wage and currency text as written, with
// defaults only for absent keys. Settings screens pre-fill from it so an
// untouched screen commits the same text back.
func (store *Store) ReadRaw() (wageRate, currency string) {
	wageRate, currency = model.DefaultWage, model.DefaultCurrency
	values, err := store.backend.Load()
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", "error", err)
		return wageRate, currency
	}
	if value, ok := values[model.KeyWage]; ok {
		wageRate = value
	}
	if value, ok := values[model.KeyCurrency]; ok {
		currency = value
	}
	return wageRate, currency
}

// Write commits wage and currency together, then notifies subscribers
// once for each key whose stored value changed. A failed commit is a
// silent no-op. Listeners run after the commit lock is released and may
// call Write themselves.
func (store *Store) Write(wageRate, currency string) {
	for _, change := range store.commit(wageRate, currency) {
		store.notify(change)
	}
}

func (store *Store) commit(wageRate, currency string) []Change {
	store.commitMu.Lock()
	defer store.commitMu.Unlock()

	previous, err := store.backend.Load()
	if err != nil {
		logger.Warn("Failed to load settings before commit", "error", err)
		previous = nil
	}

	next := map[string]string{
		model.KeyWage:     strings.TrimSpace(wageRate),
		model.KeyCurrency: currency,
	}
	if err := store.backend.Commit(next); err != nil {
		logger.Error("Failed to commit settings", "error", err)
		return nil
	}
	logger.Debug("Settings committed", "wage", next[model.KeyWage], "currency", next[model.KeyCurrency])

	var changes []Change
	for _, key := range []string{model.KeyWage, model.KeyCurrency} {
		if old, ok := previous[key]; ok && old == next[key] {
			continue
		}
		changes = append(changes, Change{Key: key, Value: next[key]})
	}
	return changes
}

// Subscribe registers listener until the returned Subscription is closed.
func (store *Store) Subscribe(listener Listener) *Subscription {
	subscription := &Subscription{store: store, listener: listener}
	if listener == nil {
		return subscription
	}
	store.mu.Lock()
	store.subscriptions = append(store.subscriptions, subscription)
	store.mu.Unlock()
	return subscription
}

// Close releases the backend when it holds resources.
func (store *Store) Close() error {
	if closer, ok := store.backend.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (store *Store) notify(change Change) {
	store.mu.Lock()
	subscriptions := append([]*Subscription(nil), store.subscriptions...)
	store.mu.Unlock()

	for _, subscription := range subscriptions {
		subscription.listener(change)
	}
}

func (store *Store) remove(target *Subscription) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for i, subscription := range store.subscriptions {
		if subscription == target {
			store.subscriptions = append(store.subscriptions[:i], store.subscriptions[i+1:]...)
			return
		}
	}
}

// Subscription is a live registration returned by Store.Subscribe.
type Subscription struct {
	store    *Store
	listener Listener
	once     sync.Once
}

// Close stops deliveries. It is safe to call more than once.
func (subscription *Subscription) Close() {
	if subscription == nil {
		return
	}
	subscription.once.Do(func() {
		subscription.store.remove(subscription)
	})
}
