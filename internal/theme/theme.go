// Package theme owns the process-wide UI theme: one persisted value, read
// and written only through a Manager, with change notifications.
package theme

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Theme is a UI colour scheme.
type Theme string

const (
	Light Theme = "light"
	Gray  Theme = "gray"
	Dark  Theme = "dark"
)

// All lists the recognized themes in display order.
var All = []Theme{Light, Gray, Dark}

// SettingKey is the key the theme is persisted under.
const SettingKey = "aps_system_theme"

// Parse returns the theme named by s, or Light when s is empty or unknown.
func Parse(s string) Theme {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Gray, Dark:
		return t
	}
	return Light
}

// buttonIDs lists the selector buttons bound to each theme.
var buttonIDs = map[Theme][]string{
	Light: {"themeLightBtn", "btnThemeLight"},
	Gray:  {"themeGrayBtn", "btnThemeGray"},
	Dark:  {"themeDarkBtn", "btnThemeDark"},
}

// ButtonIDs returns the selector button ids for t.
func ButtonIDs(t Theme) []string {
	return append([]string(nil), buttonIDs[t]...)
}

// Store persists settings as string key/value pairs. A missing key is
// reported as an empty value.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Manager is the single accessor for the current theme.
type Manager struct {
	store Store

	mu          sync.Mutex
	current     Theme
	subscribers map[int]func(Theme)
	nextID      int
}

// NewManager returns a manager that starts on Light until Load is called.
func NewManager(store Store) *Manager {
	return &Manager{
		store:       store,
		current:     Light,
		subscribers: make(map[int]func(Theme)),
	}
}

// Load reads the persisted theme and makes it current. Missing or
// unrecognized values resolve to Light. Subscribers are notified.
func (m *Manager) Load(ctx context.Context) (Theme, error) {
	raw, err := m.store.GetSetting(ctx, SettingKey)
	if err != nil {
		return m.Current(), fmt.Errorf("loading theme: %w", err)
	}
	t := Parse(raw)
	m.apply(t)
	return t, nil
}

// Set normalizes value, persists it, makes it current and notifies
// subscribers. Unrecognized values become Light.
func (m *Manager) Set(ctx context.Context, value string) (Theme, error) {
	t := Parse(value)
	if err := m.store.SetSetting(ctx, SettingKey, string(t)); err != nil {
		return m.Current(), fmt.Errorf("saving theme: %w", err)
	}
	m.apply(t)
	return t, nil
}

func (m *Manager) Current() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe registers fn to be called with the theme after every change.
// The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(Theme)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// ButtonStates maps every selector button id to whether it shows as active
// for the current theme.
func (m *Manager) ButtonStates() map[string]bool {
	current := m.Current()
	states := make(map[string]bool)
	for t, ids := range buttonIDs {
		for _, id := range ids {
			states[id] = t == current
		}
	}
	return states
}

func (m *Manager) apply(t Theme) {
	m.mu.Lock()
	m.current = t
	fns := make([]func(Theme), 0, len(m.subscribers))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.subscribers[id]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(t)
	}
}
