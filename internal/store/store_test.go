package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/storage"
)

// sequentialIDs returns an id generator producing tx_1, tx_2, cat_3, ...
func sequentialIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s_%d", prefix, n)
	}
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStorage) {
	t.Helper()
	kv := storage.NewMemoryStorage()
	s := New(context.Background(), kv, WithIDFunc(sequentialIDs()))
	return s, kv
}

func TestNew_Defaults(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Empty(t, s.Transactions())
	assert.Len(t, s.Categories(), 10)
	assert.Empty(t, s.Budgets())
	assert.Empty(t, s.Goals())
	assert.Equal(t, "VND", s.Settings().Currency)
	assert.Equal(t, model.ThemeSystem, s.Settings().Theme)
	assert.False(t, s.QuickAddOpen())
}

func TestAddTransaction_PrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})
	second := s.AddTransaction(model.Transaction{Amount: 200, Type: model.TypeIncome, CategoryID: "cat_salary", Datetime: "2025-10-02T00:00:00.000Z"})

	transactions := s.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, second.ID, transactions[0].ID)
	assert.Equal(t, first.ID, transactions[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddTransaction_IgnoresProvidedID(t *testing.T) {
	s, _ := newTestStore(t)

	created := s.AddTransaction(model.Transaction{ID: "sneaky", Amount: 1, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})
	assert.NotEqual(t, "sneaky", created.ID)
}

func TestUpdateTransaction(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z", Note: "before"})

	amount := 250.0
	note := "after"
	s.UpdateTransaction(created.ID, model.TransactionPatch{Amount: &amount, Note: &note})

	got := s.Transactions()[0]
	assert.Equal(t, 250.0, got.Amount)
	assert.Equal(t, "after", got.Note)
	// Untouched fields survive.
	assert.Equal(t, "cat_food", got.CategoryID)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdateTransaction_UnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})

	before := s.Transactions()
	amount := 999.0
	s.UpdateTransaction("tx_nope", model.TransactionPatch{Amount: &amount})
	assert.Equal(t, before, s.Transactions())
}

func TestDeleteTransaction(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})

	s.DeleteTransaction(created.ID)
	assert.Empty(t, s.Transactions())

	// Deleting again is a silent no-op.
	s.DeleteTransaction(created.ID)
	assert.Empty(t, s.Transactions())
}

func TestAddCategory_ForcesCustom(t *testing.T) {
	s, _ := newTestStore(t)

	created := s.AddCategory(model.Category{Name: "Du lịch", Color: "#123456", Custom: false})

	assert.True(t, created.Custom)
	assert.Len(t, s.Categories(), 11)
}

func TestUpdateCategory(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.AddCategory(model.Category{Name: "Du lịch", Color: "#123456", Kind: model.KindExpense})

	name := "Phượt"
	color := "#654321"
	s.UpdateCategory(created.ID, model.CategoryPatch{Name: &name, Color: &color})

	var got model.Category
	for _, c := range s.Categories() {
		if c.ID == created.ID {
			got = c
		}
	}
	assert.Equal(t, "Phượt", got.Name)
	assert.Equal(t, "#654321", got.Color)
	assert.True(t, got.Custom)
	assert.Equal(t, model.KindExpense, got.Kind)
}

func TestUpdateCategory_BuiltinIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	name := "hacked"
	s.UpdateCategory("cat_food", model.CategoryPatch{Name: &name})

	for _, c := range s.Categories() {
		if c.ID == "cat_food" {
			assert.Equal(t, "Ăn uống", c.Name)
		}
	}
}

func TestRemoveCategory_RemapsAndDropsBudget(t *testing.T) {
	s, _ := newTestStore(t)
	custom := s.AddCategory(model.Category{Name: "Du lịch", Color: "#123456"})
	tx := s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: custom.ID, Datetime: "2025-10-01T00:00:00.000Z"})
	s.SetBudget(model.NewBudget(custom.ID, 500000))
	s.SetBudget(model.NewBudget("cat_food", 300000))

	s.RemoveCategory(custom.ID)

	for _, c := range s.Categories() {
		assert.NotEqual(t, custom.ID, c.ID)
	}

	var got model.Transaction
	for _, t2 := range s.Transactions() {
		if t2.ID == tx.ID {
			got = t2
		}
	}
	assert.Equal(t, CategoryOther, got.CategoryID)

	budgets := s.Budgets()
	require.Len(t, budgets, 1)
	assert.Equal(t, "cat_food", budgets[0].CategoryID)
}

func TestRemoveCategory_BuiltinIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	tx := s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})

	s.RemoveCategory("cat_food")

	assert.Len(t, s.Categories(), 10)
	assert.Equal(t, "cat_food", s.Transactions()[0].CategoryID)
	assert.Equal(t, tx.ID, s.Transactions()[0].ID)
}

func TestRemoveCategory_UnknownIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	s.RemoveCategory("cat_ghost")
	assert.Len(t, s.Categories(), 10)
}

func TestResetCategoriesToDefault(t *testing.T) {
	s, _ := newTestStore(t)
	custom := s.AddCategory(model.Category{Name: "Du lịch", Color: "#123456"})
	orphan := s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: custom.ID, Datetime: "2025-10-01T00:00:00.000Z"})
	keeper := s.AddTransaction(model.Transaction{Amount: 50, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})
	s.SetBudget(model.NewBudget(custom.ID, 500000))
	s.SetBudget(model.NewBudget("cat_food", 300000))

	s.ResetCategoriesToDefault()

	assert.Len(t, s.Categories(), 10)
	for _, tx := range s.Transactions() {
		switch tx.ID {
		case orphan.ID:
			assert.Equal(t, CategoryOther, tx.CategoryID)
		case keeper.ID:
			assert.Equal(t, "cat_food", tx.CategoryID)
		}
	}
	budgets := s.Budgets()
	require.Len(t, budgets, 1)
	assert.Equal(t, "cat_food", budgets[0].CategoryID)
}

func TestSetBudget_Upserts(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetBudget(model.NewBudget("cat_food", 100000))
	s.SetBudget(model.NewBudget("cat_transport", 200000))
	require.Len(t, s.Budgets(), 2)

	// Same id replaces instead of appending.
	s.SetBudget(model.NewBudget("cat_food", 900000))
	budgets := s.Budgets()
	require.Len(t, budgets, 2)
	for _, b := range budgets {
		if b.CategoryID == "cat_food" {
			assert.Equal(t, 900000.0, b.Limit)
		}
	}
}

func TestRemoveBudget(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetBudget(model.NewBudget("cat_food", 100000))

	s.RemoveBudget(model.BudgetID("cat_food"))
	assert.Empty(t, s.Budgets())

	s.RemoveBudget(model.BudgetID("cat_food"))
	assert.Empty(t, s.Budgets())
}

func TestAddGoal_StartsAtZero(t *testing.T) {
	s, _ := newTestStore(t)

	created := s.AddGoal(model.Goal{Title: "Mua xe", TargetAmount: 50000000, SavedAmount: 99999})
	assert.Zero(t, created.SavedAmount)
	assert.Equal(t, "Mua xe", created.Title)
}

func TestUpdateGoalAndAddFunds(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.AddGoal(model.Goal{Title: "Mua xe", TargetAmount: 50000000})

	title := "Mua ô tô"
	s.UpdateGoal(created.ID, model.GoalPatch{Title: &title})
	s.AddGoalFunds(created.ID, 1000000)
	s.AddGoalFunds(created.ID, 500000)

	goals := s.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "Mua ô tô", goals[0].Title)
	assert.Equal(t, 1500000.0, goals[0].SavedAmount)

	s.AddGoalFunds("goal_nope", 1)
	assert.Equal(t, 1500000.0, s.Goals()[0].SavedAmount)
}

func TestUpdateSettings_ShallowMerge(t *testing.T) {
	s, _ := newTestStore(t)

	currency := "USD"
	s.UpdateSettings(model.SettingsPatch{Currency: &currency})

	got := s.Settings()
	assert.Equal(t, "USD", got.Currency)
	// Unpatched fields keep their values.
	assert.Equal(t, model.ThemeSystem, got.Theme)

	enabled := true
	pin := "1234"
	s.UpdateSettings(model.SettingsPatch{PinEnabled: &enabled, PinCode: &pin})

	got = s.Settings()
	assert.Equal(t, "USD", got.Currency)
	assert.True(t, got.PinEnabled)
	assert.Equal(t, "1234", got.PinCode)
}

func TestQuickAddFlag(t *testing.T) {
	s, _ := newTestStore(t)

	s.OpenQuickAdd()
	assert.True(t, s.QuickAddOpen())
	s.CloseQuickAdd()
	assert.False(t, s.QuickAddOpen())
}

func TestPersistence_EnvelopeShape(t *testing.T) {
	s, kv := newTestStore(t)
	s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})

	raw, ok, err := kv.Get(context.Background(), StorageKey)
	require.NoError(t, err)
	require.True(t, ok)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Contains(t, env, "state")
	assert.Contains(t, env, "version")
	assert.Equal(t, "1", string(env["version"]))

	var state map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env["state"], &state))
	for _, key := range []string{"transactions", "categories", "budgets", "goals", "settings"} {
		assert.Contains(t, state, key)
	}
	assert.NotContains(t, state, "quickAddOpen")
}

func TestPersistence_QuickAddNotPersisted(t *testing.T) {
	s, kv := newTestStore(t)
	s.AddTransaction(model.Transaction{Amount: 1, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})
	before, _, _ := kv.Get(context.Background(), StorageKey)

	s.OpenQuickAdd()

	after, _, _ := kv.Get(context.Background(), StorageKey)
	assert.Equal(t, before, after)
}

func TestPersistence_ColdStartRestores(t *testing.T) {
	kv := storage.NewMemoryStorage()
	first := New(context.Background(), kv, WithIDFunc(sequentialIDs()))
	first.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})
	currency := "EUR"
	first.UpdateSettings(model.SettingsPatch{Currency: &currency})

	second := New(context.Background(), kv)

	require.Len(t, second.Transactions(), 1)
	assert.Equal(t, 100.0, second.Transactions()[0].Amount)
	assert.Equal(t, "EUR", second.Settings().Currency)
	assert.Len(t, second.Categories(), 10)
}

func TestPersistence_CorruptPayloadFallsBackToDefaults(t *testing.T) {
	kv := storage.NewMemoryStorage()
	require.NoError(t, kv.Set(context.Background(), StorageKey, []byte("{definitely not json")))

	s := New(context.Background(), kv)

	assert.Empty(t, s.Transactions())
	assert.Len(t, s.Categories(), 10)
	assert.Equal(t, "VND", s.Settings().Currency)
}

func TestPersistence_WriteFailureIsSwallowed(t *testing.T) {
	kv := storage.NewMemoryStorage()
	kv.FailWrites = fmt.Errorf("disk full")
	s := New(context.Background(), kv, WithIDFunc(sequentialIDs()))

	// Mutation succeeds in memory even though every write fails.
	s.AddTransaction(model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})
	assert.Len(t, s.Transactions(), 1)
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestStore(t)

	notified := 0
	unsubscribe := s.Subscribe(func() { notified++ })

	s.AddTransaction(model.Transaction{Amount: 1, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-01T00:00:00.000Z"})
	s.OpenQuickAdd()
	assert.Equal(t, 2, notified)

	unsubscribe()
	s.CloseQuickAdd()
	assert.Equal(t, 2, notified)
}

// TestExampleScenario walks the documented end-to-end flow: seed store,
// one income and one expense in October 2025, month filter and expense
// grouping.
func TestExampleScenario(t *testing.T) {
	s, _ := newTestStore(t)
	require.Len(t, s.Categories(), 10)
	require.Empty(t, s.Transactions())
	require.Empty(t, s.Budgets())
	require.Empty(t, s.Goals())

	s.AddTransaction(model.Transaction{Amount: 100000, Type: model.TypeIncome, CategoryID: "cat_salary", Datetime: "2025-10-01T00:00:00.000Z"})
	s.AddTransaction(model.Transaction{Amount: 50000, Type: model.TypeExpense, CategoryID: "cat_food", Datetime: "2025-10-02T00:00:00.000Z"})

	month := ByMonth(s.Transactions(), time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC))
	require.Len(t, month, 2)
	// Newest-first by insertion.
	assert.Equal(t, "cat_food", month[0].CategoryID)
	assert.Equal(t, "cat_salary", month[1].CategoryID)

	grouped := GroupExpenseByCategory(month, s.Categories())
	require.Len(t, grouped, 1)
	assert.Equal(t, "cat_food", grouped[0].Category.ID)
	assert.Equal(t, 50000.0, grouped[0].Total)
}
