package store

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
)

// Selectors are pure read-side functions over a transaction list snapshot.
// They never touch store state; callers pass in whatever lists they hold.

// ByMonth returns the subsequence of transactions whose datetime falls in
// the same calendar month and year as ref, preserving input order. The
// comparison happens in ref's location; transactions with an unparsable
// datetime are excluded.
func ByMonth(transactions []model.Transaction, ref time.Time) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		when, ok := t.Time()
		if !ok {
			continue
		}
		when = when.In(ref.Location())
		if when.Year() == ref.Year() && when.Month() == ref.Month() {
			out = append(out, t)
		}
	}
	return out
}

// CategoryTotal pairs a category with the summed expense amount of its
// transactions.
type CategoryTotal struct {
	Category model.Category
	Total    float64
}

// unknownCategory is the defensive placeholder for expenses whose category
// id matches nothing. The remap-on-delete invariant should make this
// unreachable, but a hand-edited backup can still get one in.
var unknownCategory = model.Category{ID: "unknown", Name: "Khác", Color: "#9AA0A6"}

// GroupExpenseByCategory filters to expenses, sums amounts per category id,
// and returns the totals sorted by descending amount. Equal totals keep
// their first-encounter order, which a stable sort guarantees.
func GroupExpenseByCategory(transactions []model.Transaction, categories []model.Category) []CategoryTotal {
	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	index := make(map[string]int)
	var totals []CategoryTotal
	for _, t := range transactions {
		if t.Type != model.TypeExpense {
			continue
		}
		i, seen := index[t.CategoryID]
		if !seen {
			cat, ok := byID[t.CategoryID]
			if !ok {
				cat = unknownCategory
			}
			i = len(totals)
			index[t.CategoryID] = i
			totals = append(totals, CategoryTotal{Category: cat})
		}
		totals[i].Total += t.Amount
	}

	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Total > totals[b].Total
	})
	return totals
}

// Summary aggregates one month of activity.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
	// TopCategory labels the largest expense category with its share of
	// the month's spending, e.g. "Ăn uống (42%)". Empty when there are
	// no expenses.
	TopCategory string
}

// MonthSummary computes income, expense, and balance for ref's calendar
// month, plus the top expense category label.
func MonthSummary(transactions []model.Transaction, categories []model.Category, ref time.Time) Summary {
	month := ByMonth(transactions, ref)

	var sum Summary
	for _, t := range month {
		switch t.Type {
		case model.TypeIncome:
			sum.Income += t.Amount
		case model.TypeExpense:
			sum.Expense += t.Amount
		}
	}
	sum.Balance = sum.Income - sum.Expense

	if grouped := GroupExpenseByCategory(month, categories); len(grouped) > 0 {
		top := grouped[0]
		share := math.Round(top.Total / math.Max(sum.Expense, 1) * 100)
		sum.TopCategory = fmt.Sprintf("%s (%.0f%%)", top.Category.Name, share)
	}
	return sum
}

// Recent returns up to limit transactions from the head of the list. The
// store keeps the list newest-first by insertion, so this is the recency
// view the dashboard shows.
func Recent(transactions []model.Transaction, limit int) []model.Transaction {
	if limit < 0 {
		limit = 0
	}
	if limit > len(transactions) {
		limit = len(transactions)
	}
	out := make([]model.Transaction, limit)
	copy(out, transactions[:limit])
	return out
}
