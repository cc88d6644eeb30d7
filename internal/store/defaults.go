package store

import "github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"

// CategoryOther is the built-in fallback category. Transactions whose
// category disappears (deletion, reset, or a backup referencing unknown
// ids) are remapped here so the foreign-key invariant always holds.
const CategoryOther = "cat_other"

// defaultCategories is the seed set. Names are the original Vietnamese
// labels the application shipped with.
var defaultCategories = []model.Category{
	{ID: "cat_food", Name: "Ăn uống", Color: "#FF6B6B", Icon: "food", Kind: model.KindExpense},
	{ID: "cat_transport", Name: "Di chuyển", Color: "#4D96FF", Icon: "car", Kind: model.KindExpense},
	{ID: "cat_home", Name: "Nhà ở", Color: "#6BCB77", Icon: "home", Kind: model.KindExpense},
	{ID: "cat_entertain", Name: "Giải trí", Color: "#FFD93D", Icon: "gamepad-variant", Kind: model.KindExpense},
	{ID: "cat_shopping", Name: "Mua sắm", Color: "#A66CFF", Icon: "cart", Kind: model.KindExpense},
	{ID: "cat_education", Name: "Giáo dục", Color: "#00C1D4", Icon: "school", Kind: model.KindExpense},
	{ID: "cat_health", Name: "Sức khỏe", Color: "#FF8FB1", Icon: "heart", Kind: model.KindExpense},
	{ID: CategoryOther, Name: "Khác", Color: "#9AA0A6", Icon: "dots-horizontal", Kind: model.KindExpense},
	{ID: "cat_salary", Name: "Lương", Color: "#34A853", Icon: "cash-multiple", Kind: model.KindIncome},
	{ID: "cat_bonus", Name: "Thưởng", Color: "#0F9D58", Icon: "gift", Kind: model.KindIncome},
}

// DefaultCategories returns a fresh copy of the built-in seed set.
func DefaultCategories() []model.Category {
	out := make([]model.Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// DefaultSettings returns the settings a brand-new store starts with.
func DefaultSettings() model.Settings {
	return model.Settings{
		Currency:   "VND",
		Theme:      model.ThemeSystem,
		PinEnabled: false,
	}
}
