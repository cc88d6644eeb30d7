// Package store holds the single source of truth for the finance
// application: transactions, categories, budgets, goals, settings, and the
// transient quick-add flag. Mutators update in-memory state, persist the
// durable subset, and notify subscribers.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/common"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/storage"
)

// StorageKey is the fixed key the persisted envelope lives under.
const StorageKey = "moneylover-store"

// StateVersion is attached to the persisted envelope and to backup
// payloads so future versions can migrate old snapshots. No migration
// logic exists yet beyond accepting the same shape.
const StateVersion = 1

// Snapshot is the durable subset of store state. The quick-add flag is
// deliberately absent: it never survives a restart.
type Snapshot struct {
	Transactions []model.Transaction `json:"transactions"`
	Categories   []model.Category    `json:"categories"`
	Budgets      []model.Budget      `json:"budgets"`
	Goals        []model.Goal        `json:"goals"`
	Settings     model.Settings      `json:"settings"`
}

// envelope is the exact shape written under StorageKey.
type envelope struct {
	State   Snapshot `json:"state"`
	Version int      `json:"version"`
}

// Store is the state container. All mutators are silent no-ops on unknown
// ids; validation of amounts and the like belongs to callers.
type Store struct {
	mu           sync.RWMutex
	transactions []model.Transaction
	categories   []model.Category
	budgets      []model.Budget
	goals        []model.Goal
	settings     model.Settings
	quickAddOpen bool

	kv    storage.KeyValue
	newID func(prefix string) string

	subs    map[int]func()
	nextSub int
}

// Option customizes store construction.
type Option func(*Store)

// WithIDFunc overrides id generation. Tests use this for deterministic ids;
// the id format is not part of any contract, only uniqueness is.
func WithIDFunc(fn func(prefix string) string) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates a store seeded from the persisted snapshot under StorageKey,
// falling back to the built-in defaults when the key is absent or its
// contents cannot be decoded.
func New(ctx context.Context, kv storage.KeyValue, opts ...Option) *Store {
	s := &Store{
		categories: DefaultCategories(),
		settings:   DefaultSettings(),
		kv:         kv,
		newID: func(prefix string) string {
			return prefix + "_" + uuid.NewString()
		},
		subs: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load(ctx)
	return s
}

// load seeds state from durable storage. Any failure leaves the defaults
// in place; a broken snapshot must never prevent startup.
func (s *Store) load(ctx context.Context) {
	if s.kv == nil {
		return
	}

	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		common.LogError(fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err),
			"failed to read persisted state, using defaults",
			common.Fields{"key": StorageKey})
		return
	}
	if !ok {
		slog.Debug("no persisted state found, starting fresh")
		return
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		common.LogError(fmt.Errorf("%w: %v", common.ErrCorruptState, err),
			"persisted state unreadable, using defaults",
			common.Fields{"key": StorageKey})
		return
	}

	s.transactions = env.State.Transactions
	if env.State.Categories != nil {
		s.categories = env.State.Categories
	}
	s.budgets = env.State.Budgets
	s.goals = env.State.Goals
	if env.State.Settings != (model.Settings{}) {
		s.settings = env.State.Settings
	}

	slog.Debug("loaded persisted state",
		"version", env.Version,
		"transactions", len(s.transactions),
		"categories", len(s.categories))
}

// Subscribe registers fn to run after every state change. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// commitLocked snapshots the durable subset and the subscriber list while
// the caller still holds the lock. The write and the notifications happen
// outside the lock in finish.
func (s *Store) commitLocked(persist bool) ([]byte, []func()) {
	var payload []byte
	if persist && s.kv != nil {
		env := envelope{State: s.snapshotLocked(), Version: StateVersion}
		raw, err := json.Marshal(env)
		if err != nil {
			slog.Warn("failed to encode state for persistence", "error", err)
		} else {
			payload = raw
		}
	}

	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return payload, subs
}

// finish performs the best-effort persistence write and runs subscriber
// notifications. Write failures are logged and swallowed; in-memory state
// stays authoritative for the session.
func (s *Store) finish(payload []byte, subs []func()) {
	if payload != nil {
		if err := s.kv.Set(context.Background(), StorageKey, payload); err != nil {
			slog.Warn("state persistence failed", "error", err)
		}
	}
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Transactions: make([]model.Transaction, len(s.transactions)),
		Categories:   make([]model.Category, len(s.categories)),
		Budgets:      make([]model.Budget, len(s.budgets)),
		Goals:        make([]model.Goal, len(s.goals)),
		Settings:     s.settings,
	}
	copy(snap.Transactions, s.transactions)
	copy(snap.Categories, s.categories)
	copy(snap.Budgets, s.budgets)
	copy(snap.Goals, s.goals)
	return snap
}

// Snapshot returns a copy of the durable subset of current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Replace overwrites the durable subset wholesale. Existing data is
// discarded, not merged. This is the restore path for backups.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	s.transactions = snap.Transactions
	s.categories = snap.Categories
	s.budgets = snap.Budgets
	s.goals = snap.Goals
	s.settings = snap.Settings
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// Transactions returns a copy of the transaction list, newest-first by
// insertion order.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// BuiltinCategories returns the current non-custom categories.
func (s *Store) BuiltinCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Category
	for _, c := range s.categories {
		if !c.Custom {
			out = append(out, c)
		}
	}
	return out
}

// Budgets returns a copy of the budget list.
func (s *Store) Budgets() []model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Goals returns a copy of the goal list.
func (s *Store) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Settings returns the current settings.
func (s *Store) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// QuickAddOpen reports the transient quick-add flag.
func (s *Store) QuickAddOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quickAddOpen
}

// AddTransaction assigns a fresh id and prepends the transaction, so the
// list stays newest-first by insertion. Any id on the input is ignored.
func (s *Store) AddTransaction(t model.Transaction) model.Transaction {
	s.mu.Lock()
	t.ID = s.newID("tx")
	s.transactions = append([]model.Transaction{t}, s.transactions...)
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
	return t
}

// UpdateTransaction merges the patch into the transaction with the given
// id. Unknown ids are a silent no-op.
func (s *Store) UpdateTransaction(id string, patch model.TransactionPatch) {
	s.mu.Lock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			patch.Apply(&s.transactions[i])
			break
		}
	}
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// DeleteTransaction removes the transaction with the given id, if present.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// AddCategory assigns a fresh id and appends the category. The custom flag
// is forced on regardless of the input; built-in categories only come from
// the seed set.
func (s *Store) AddCategory(c model.Category) model.Category {
	s.mu.Lock()
	c.ID = s.newID("cat")
	c.Custom = true
	s.categories = append(s.categories, c)
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
	return c
}

// UpdateCategory merges name, color, and icon into a custom category.
// Built-in categories and unknown ids are a silent no-op.
func (s *Store) UpdateCategory(id string, patch model.CategoryPatch) {
	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		if s.categories[i].Custom {
			patch.Apply(&s.categories[i])
		}
		break
	}
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// RemoveCategory deletes a custom category, remaps transactions that
// referenced it to the "other" sentinel, and drops budgets for it.
// Built-in categories and unknown ids are a silent no-op.
func (s *Store) RemoveCategory(id string) {
	s.mu.Lock()

	var found *model.Category
	for i := range s.categories {
		if s.categories[i].ID == id {
			found = &s.categories[i]
			break
		}
	}
	if found == nil || !found.Custom {
		s.mu.Unlock()
		return
	}

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept

	for i := range s.transactions {
		if s.transactions[i].CategoryID == id {
			s.transactions[i].CategoryID = CategoryOther
		}
	}

	budgets := s.budgets[:0]
	for _, b := range s.budgets {
		if b.CategoryID != id {
			budgets = append(budgets, b)
		}
	}
	s.budgets = budgets

	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// ResetCategoriesToDefault restores the seed category set. Transactions
// referencing a non-default category are remapped to the "other" sentinel
// and budgets for non-default categories are dropped.
func (s *Store) ResetCategoriesToDefault() {
	s.mu.Lock()

	defaults := DefaultCategories()
	defaultIDs := make(map[string]bool, len(defaults))
	for _, c := range defaults {
		defaultIDs[c.ID] = true
	}

	s.categories = defaults
	for i := range s.transactions {
		if !defaultIDs[s.transactions[i].CategoryID] {
			s.transactions[i].CategoryID = CategoryOther
		}
	}

	budgets := s.budgets[:0]
	for _, b := range s.budgets {
		if defaultIDs[b.CategoryID] {
			budgets = append(budgets, b)
		}
	}
	s.budgets = budgets

	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// SetBudget upserts by id: an existing budget with the same id is replaced,
// otherwise the budget is appended.
func (s *Store) SetBudget(b model.Budget) {
	s.mu.Lock()
	replaced := false
	for i := range s.budgets {
		if s.budgets[i].ID == b.ID {
			s.budgets[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		s.budgets = append(s.budgets, b)
	}
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// RemoveBudget removes the budget with the given id, if present.
func (s *Store) RemoveBudget(id string) {
	s.mu.Lock()
	kept := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.budgets = kept
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// AddGoal assigns a fresh id, zeroes the saved amount, and appends the
// goal. Any saved amount on the input is ignored.
func (s *Store) AddGoal(g model.Goal) model.Goal {
	s.mu.Lock()
	g.ID = s.newID("goal")
	g.SavedAmount = 0
	s.goals = append(s.goals, g)
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
	return g
}

// UpdateGoal merges the patch into the goal with the given id. Unknown ids
// are a silent no-op.
func (s *Store) UpdateGoal(id string, patch model.GoalPatch) {
	s.mu.Lock()
	for i := range s.goals {
		if s.goals[i].ID == id {
			patch.Apply(&s.goals[i])
			break
		}
	}
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// AddGoalFunds increments a goal's saved amount. This is the only way
// saved amounts grow.
func (s *Store) AddGoalFunds(id string, amount float64) {
	s.mu.Lock()
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals[i].SavedAmount += amount
			break
		}
	}
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// UpdateSettings shallow-merges the patch into settings.
func (s *Store) UpdateSettings(patch model.SettingsPatch) {
	s.mu.Lock()
	patch.Apply(&s.settings)
	payload, subs := s.commitLocked(true)
	s.mu.Unlock()

	s.finish(payload, subs)
}

// OpenQuickAdd raises the transient quick-add flag. The flag is never
// persisted.
func (s *Store) OpenQuickAdd() {
	s.mu.Lock()
	s.quickAddOpen = true
	_, subs := s.commitLocked(false)
	s.mu.Unlock()

	s.finish(nil, subs)
}

// CloseQuickAdd lowers the transient quick-add flag.
func (s *Store) CloseQuickAdd() {
	s.mu.Lock()
	s.quickAddOpen = false
	_, subs := s.commitLocked(false)
	s.mu.Unlock()

	s.finish(nil, subs)
}
