package state

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/hit-calc/internal/calc"
)

// EntryField names an editable column of a DCA entry.
type EntryField string

const (
	FieldAmount EntryField = "amount"
	FieldTokens EntryField = "tokens"
)

// Subscriber is told about every mutation. changed lists the persisted keys
// whose value may differ from before; snapshot is a private copy.
type Subscriber func(snapshot AppState, changed []string)

// Container is the single owner of AppState. Every mutation goes through
// one of its methods and is broadcast to subscribers synchronously.
type Container struct {
	mu     sync.RWMutex
	state  AppState
	subs   []Subscriber
	newID  func() string
	logger *zap.Logger

	// Statistics (accessed atomically)
	mutations uint64
}

// Option customizes a Container.
type Option func(*Container)

// WithIDGenerator replaces the UUID generator used for new entries.
func WithIDGenerator(fn func() string) Option {
	return func(c *Container) {
		c.newID = fn
	}
}

// NewContainer wraps initial. The entry list is repaired to hold at least
// one entry.
func NewContainer(initial AppState, logger *zap.Logger, opts ...Option) *Container {
	c := &Container{
		state:  initial.Clone(),
		newID:  uuid.NewString,
		logger: logger.Named("state"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.state.Entries) == 0 {
		c.state.Entries = []calc.Entry{c.emptyEntry()}
	}
	return c
}

// NewID returns a fresh entry id from the container's generator.
func (c *Container) NewID() string {
	return c.newID()
}

// Subscribe registers fn for all future mutations.
func (c *Container) Subscribe(fn Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Snapshot returns a deep copy of the current state.
func (c *Container) Snapshot() AppState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Mutations returns how many mutations have been applied.
func (c *Container) Mutations() uint64 {
	return atomic.LoadUint64(&c.mutations)
}

// Leverage recomputes the leverage result for the current inputs.
func (c *Container) Leverage() *calc.LeverageResult {
	c.mu.RLock()
	in := c.state.LeverageInput()
	c.mu.RUnlock()
	return calc.ComputeLeverage(in)
}

// Average recomputes the DCA result for the current entries.
func (c *Container) Average() *calc.AverageResult {
	c.mu.RLock()
	entries := slices.Clone(c.state.Entries)
	c.mu.RUnlock()
	return calc.ComputeAverage(entries)
}

// SetView switches the top-level screen.
func (c *Container) SetView(v View) {
	if !v.Valid() {
		c.logger.Warn("Ignoring unknown view", zap.String("view", string(v)))
		return
	}
	c.mutate(func(s *AppState) []string {
		s.View = v
		return []string{KeyView}
	})
}

// SetTab switches the leverage tab. The other tab keeps its values.
func (c *Container) SetTab(mode calc.Mode) {
	if !mode.Valid() {
		c.logger.Warn("Ignoring unknown tab", zap.String("tab", string(mode)))
		return
	}
	c.mutate(func(s *AppState) []string {
		s.Tab = mode
		return []string{KeyTab}
	})
}

// SetBalance sanitizes raw and stores it as the active tab's balance.
func (c *Container) SetBalance(raw string) string {
	v := calc.Sanitize(raw)
	c.mutate(func(s *AppState) []string {
		s.TabData.For(s.Tab).Balance = v
		return []string{KeyTabData}
	})
	return v
}

// SetRisk sanitizes raw and stores it as the active tab's risk.
func (c *Container) SetRisk(raw string) string {
	v := calc.Sanitize(raw)
	c.mutate(func(s *AppState) []string {
		s.TabData.For(s.Tab).Risk = v
		return []string{KeyTabData}
	})
	return v
}

// SetEntryPrice sanitizes and stores the entry price.
func (c *Container) SetEntryPrice(raw string) string {
	v := calc.Sanitize(raw)
	c.mutate(func(s *AppState) []string {
		s.EntryPrice = v
		return []string{KeyEntryPrice}
	})
	return v
}

// SetStopLossPrice sanitizes and stores the stop-loss price.
func (c *Container) SetStopLossPrice(raw string) string {
	v := calc.Sanitize(raw)
	c.mutate(func(s *AppState) []string {
		s.StopLossPrice = v
		return []string{KeyStopLossPrice}
	})
	return v
}

// SetSLPercent sanitizes and stores the stop-loss percentage.
func (c *Container) SetSLPercent(raw string) string {
	v := calc.Sanitize(raw)
	c.mutate(func(s *AppState) []string {
		s.SLPercent = v
		return []string{KeySLPercent}
	})
	return v
}

// AddEntry appends an empty entry and returns its id.
func (c *Container) AddEntry() string {
	e := c.emptyEntry()
	c.mutate(func(s *AppState) []string {
		s.Entries = append(s.Entries, e)
		return []string{KeyEntries}
	})
	return e.ID
}

// UpdateEntry sanitizes raw into field of the entry with id. Unknown ids are
// ignored and reported with ok == false.
func (c *Container) UpdateEntry(id string, field EntryField, raw string) (value string, ok bool) {
	value = calc.Sanitize(raw)
	c.mutate(func(s *AppState) []string {
		i := indexOf(s.Entries, id)
		if i < 0 {
			return nil
		}
		switch field {
		case FieldAmount:
			s.Entries[i].Amount = value
		case FieldTokens:
			s.Entries[i].Tokens = value
		default:
			return nil
		}
		ok = true
		return []string{KeyEntries}
	})
	return value, ok
}

// RemoveEntry deletes the entry with id. The last remaining entry is
// replaced by a fresh empty one instead, so the list is never empty.
func (c *Container) RemoveEntry(id string) {
	fresh := c.emptyEntry()
	c.mutate(func(s *AppState) []string {
		i := indexOf(s.Entries, id)
		if i < 0 {
			return nil
		}
		if len(s.Entries) == 1 {
			s.Entries = []calc.Entry{fresh}
		} else {
			s.Entries = slices.Delete(s.Entries, i, i+1)
		}
		return []string{KeyEntries}
	})
}

// ClearEntries resets the DCA list to a single empty entry. Callers are
// expected to have confirmed with the user first.
func (c *Container) ClearEntries() {
	fresh := c.emptyEntry()
	c.mutate(func(s *AppState) []string {
		s.Entries = []calc.Entry{fresh}
		return []string{KeyEntries}
	})
}

// mutate applies fn under the lock and, when fn reports changed keys,
// notifies subscribers outside of it.
func (c *Container) mutate(fn func(s *AppState) []string) {
	c.mu.Lock()
	changed := fn(&c.state)
	if len(changed) == 0 {
		c.mu.Unlock()
		return
	}
	snapshot := c.state.Clone()
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	atomic.AddUint64(&c.mutations, 1)
	c.logger.Debug("State changed", zap.Strings("keys", changed))

	for _, sub := range subs {
		sub(snapshot, changed)
	}
}

func (c *Container) emptyEntry() calc.Entry {
	return calc.Entry{ID: c.newID()}
}

func indexOf(entries []calc.Entry, id string) int {
	return slices.IndexFunc(entries, func(e calc.Entry) bool { return e.ID == id })
}
