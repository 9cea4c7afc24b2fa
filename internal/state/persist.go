package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rovshanmuradov/hit-calc/internal/calc"
	"github.com/rovshanmuradov/hit-calc/internal/storage"
)

// Load rehydrates AppState from store. Every key is loaded independently;
// a missing, unreadable or malformed value falls back to that key's default
// without affecting the others.
func Load(ctx context.Context, store storage.Store, newID func() string, logger *zap.Logger) AppState {
	l := &loader{ctx: ctx, store: store, newID: newID, logger: logger.Named("state_loader")}
	def := Default(newID)

	return AppState{
		View:          l.loadView(def.View),
		Tab:           l.loadTab(def.Tab),
		TabData:       l.loadTabData(def.TabData),
		EntryPrice:    l.loadScalar(KeyEntryPrice, def.EntryPrice),
		StopLossPrice: l.loadScalar(KeyStopLossPrice, def.StopLossPrice),
		SLPercent:     l.loadScalar(KeySLPercent, def.SLPercent),
		Entries:       l.loadEntries(def.Entries),
	}
}

type loader struct {
	ctx    context.Context
	store  storage.Store
	newID  func() string
	logger *zap.Logger
}

// read returns the raw value and whether it exists. Read errors other than
// a missing key are logged and treated as absent.
func (l *loader) read(key string) (string, bool) {
	v, err := l.store.Get(l.ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Warn("Failed to read persisted value", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return v, true
}

func (l *loader) loadScalar(key, def string) string {
	v, ok := l.read(key)
	if !ok {
		return def
	}
	return v
}

func (l *loader) loadView(def View) View {
	v, ok := l.read(KeyView)
	if !ok || v == "" {
		return def
	}
	if view := View(v); view.Valid() {
		return view
	}
	l.logger.Warn("Unknown persisted view, using default", zap.String("value", v))
	return def
}

func (l *loader) loadTab(def calc.Mode) calc.Mode {
	v, ok := l.read(KeyTab)
	if !ok || v == "" {
		return def
	}
	if mode := calc.Mode(v); mode.Valid() {
		return mode
	}
	l.logger.Warn("Unknown persisted tab, using default", zap.String("value", v))
	return def
}

func (l *loader) loadTabData(def Tabs) Tabs {
	v, ok := l.read(KeyTabData)
	if !ok {
		return def
	}
	var tabs Tabs
	if err := json.Unmarshal([]byte(v), &tabs); err != nil {
		l.logger.Warn("Malformed tab data, using default", zap.Error(err))
		return def
	}
	return tabs
}

func (l *loader) loadEntries(def []calc.Entry) []calc.Entry {
	v, ok := l.read(KeyEntries)
	if !ok {
		return def
	}
	var entries []calc.Entry
	if err := json.Unmarshal([]byte(v), &entries); err != nil {
		l.logger.Warn("Malformed DCA entries, using default", zap.Error(err))
		return def
	}
	if len(entries) == 0 {
		return def
	}
	return l.dedupeIDs(entries)
}

// dedupeIDs gives every entry with an empty or repeated id a fresh one.
// Entry ids key updates, removal and form field names, so they must be
// unique.
func (l *loader) dedupeIDs(entries []calc.Entry) []calc.Entry {
	seen := make(map[string]bool, len(entries))
	var fix []int
	for i, e := range entries {
		if e.ID == "" || seen[e.ID] {
			fix = append(fix, i)
			continue
		}
		seen[e.ID] = true
	}
	for _, i := range fix {
		id := l.newID()
		for id == "" || seen[id] {
			id = l.newID()
		}
		seen[id] = true
		l.logger.Warn("Reassigned DCA entry id",
			zap.String("old_id", entries[i].ID),
			zap.String("new_id", id))
		entries[i].ID = id
	}
	return entries
}

// Encode returns the persisted form of key in s.
func Encode(s AppState, key string) (string, error) {
	switch key {
	case KeyView:
		return string(s.View), nil
	case KeyTab:
		return string(s.Tab), nil
	case KeyEntryPrice:
		return s.EntryPrice, nil
	case KeyStopLossPrice:
		return s.StopLossPrice, nil
	case KeySLPercent:
		return s.SLPercent, nil
	case KeyTabData:
		b, err := json.Marshal(s.TabData)
		return string(b), err
	case KeyEntries:
		entries := s.Entries
		if entries == nil {
			entries = []calc.Entry{}
		}
		b, err := json.Marshal(entries)
		return string(b), err
	default:
		return "", fmt.Errorf("unknown state key %q", key)
	}
}

// NewPersister returns a Subscriber that writes each changed key to store.
// Failures are logged and dropped: persistence is best effort.
func NewPersister(ctx context.Context, store storage.Store, logger *zap.Logger) Subscriber {
	logger = logger.Named("persister")
	return func(s AppState, changed []string) {
		for _, key := range changed {
			value, err := Encode(s, key)
			if err != nil {
				logger.Warn("Failed to encode state", zap.String("key", key), zap.Error(err))
				continue
			}
			if err := store.Set(ctx, key, value); err != nil {
				logger.Warn("Failed to persist state", zap.String("key", key), zap.Error(err))
			}
		}
	}
}

// SaveAll writes every key of s. Used to seed a fresh store.
func SaveAll(ctx context.Context, store storage.Store, s AppState) error {
	for _, key := range AllKeys {
		value, err := Encode(s, key)
		if err != nil {
			return err
		}
		if err := store.Set(ctx, key, value); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}
	return nil
}
