package model

// CategoryKind says which transaction types a category applies to.
type CategoryKind string

const (
	// KindIncome marks categories for income transactions.
	KindIncome CategoryKind = "income"
	// KindExpense marks categories for expense transactions.
	KindExpense CategoryKind = "expense"
	// KindBoth marks categories usable for either direction.
	KindBoth CategoryKind = "both"
)

// Category is a classification bucket for transactions.
//
// Built-in categories (Custom=false) are seeded at store creation and can
// never be edited or removed. User-created categories (Custom=true) may be
// renamed, recolored, re-iconed, and deleted.
type Category struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Icon   string       `json:"icon,omitempty"`
	Kind   CategoryKind `json:"type,omitempty"`
	Custom bool         `json:"custom"`
}

// CategoryPatch carries a partial update for a custom category.
// Only name, color, and icon are editable; kind and the custom flag are
// fixed for the category's lifetime.
type CategoryPatch struct {
	Name  *string
	Color *string
	Icon  *string
}

// Apply merges the patch into c.
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
}
