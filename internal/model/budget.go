package model

// Budget is a monthly spending limit for one category. At most one budget
// per category is meaningful; the id is derived from the category id so
// that setting a budget twice for the same category replaces it.
type Budget struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"categoryId"`
	Limit      float64 `json:"limit"`
}

// BudgetID returns the conventional budget id for a category.
func BudgetID(categoryID string) string {
	return "budget_" + categoryID
}

// NewBudget builds a budget for a category using the id convention.
func NewBudget(categoryID string, limit float64) Budget {
	return Budget{ID: BudgetID(categoryID), CategoryID: categoryID, Limit: limit}
}
