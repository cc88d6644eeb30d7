// Package tui implements the interactive quick-add form, the terminal
// rendering of the app's quick-add modal. Opening the form raises the
// store's transient quick-add flag; leaving it lowers the flag again.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/format"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/store"
)

type focusField int

const (
	focusAmount focusField = iota
	focusNote
)

// QuickAddModel is the bubbletea model for the quick-add form.
type QuickAddModel struct {
	store      *store.Store
	amount     textinput.Model
	note       textinput.Model
	categories []model.Category
	catCursor  int
	txType     model.TransactionType
	focus      focusField
	errMsg     string
	saved      *model.Transaction
}

// NewQuickAdd builds the form from the store's current expense categories.
func NewQuickAdd(s *store.Store) QuickAddModel {
	amount := textinput.New()
	amount.Placeholder = "0"
	amount.CharLimit = 15
	amount.Focus()

	note := textinput.New()
	note.Placeholder = "Ghi chú..."
	note.CharLimit = 120

	m := QuickAddModel{
		store:      s,
		amount:     amount,
		note:       note,
		categories: s.Categories(),
		txType:     model.TypeExpense,
	}
	s.OpenQuickAdd()
	return m
}

// Saved returns the transaction recorded by the form, if any.
func (m QuickAddModel) Saved() *model.Transaction {
	return m.saved
}

// Init implements tea.Model.
func (m QuickAddModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m QuickAddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.store.CloseQuickAdd()
		return m, tea.Quit

	case "enter":
		return m.save()

	case "tab":
		if m.focus == focusAmount {
			m.focus = focusNote
			m.amount.Blur()
			m.note.Focus()
		} else {
			m.focus = focusAmount
			m.note.Blur()
			m.amount.Focus()
		}
		return m, textinput.Blink

	case "left":
		if m.catCursor > 0 {
			m.catCursor--
		}
		return m, nil

	case "right":
		if m.catCursor < len(m.categories)-1 {
			m.catCursor++
		}
		return m, nil

	case "ctrl+t":
		if m.txType == model.TypeExpense {
			m.txType = model.TypeIncome
		} else {
			m.txType = model.TypeExpense
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m QuickAddModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.amount, cmd = m.amount.Update(msg)
	cmds = append(cmds, cmd)
	m.note, cmd = m.note.Update(msg)
	cmds = append(cmds, cmd)

	// Keep the amount field numeric as the user types.
	m.amount.SetValue(format.SanitizeAmountInput(m.amount.Value()))

	return m, tea.Batch(cmds...)
}

func (m QuickAddModel) save() (tea.Model, tea.Cmd) {
	value, err := format.ValidateAmount(m.amount.Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if len(m.categories) == 0 {
		m.errMsg = "Chưa có danh mục"
		return m, nil
	}

	saved := m.store.AddTransaction(model.Transaction{
		Amount:     value,
		Type:       m.txType,
		CategoryID: m.categories[m.catCursor].ID,
		Datetime:   time.Now().UTC().Format(time.RFC3339),
		Note:       m.note.Value(),
	})
	m.saved = &saved
	m.store.CloseQuickAdd()
	return m, tea.Quit
}

// View implements tea.Model.
func (m QuickAddModel) View() string {
	typeStyle := cli.ExpenseStyle
	if m.txType == model.TypeIncome {
		typeStyle = cli.IncomeStyle
	}

	category := "-"
	if len(m.categories) > 0 {
		category = m.categories[m.catCursor].Name
	}

	lines := []string{
		fmt.Sprintf("Loại: %s  (ctrl+t đổi)", typeStyle.Render(string(m.txType))),
		fmt.Sprintf("Danh mục: %s  (←/→ chọn)", category),
		"Số tiền: " + m.amount.View(),
		"Ghi chú: " + m.note.View(),
		cli.SubtleStyle.Render("enter lưu · esc thoát"),
	}
	if m.errMsg != "" {
		lines = append(lines, cli.FormatError(m.errMsg))
	}

	return cli.RenderBox("Thêm nhanh giao dịch", lipgloss.JoinVertical(lipgloss.Left, lines...))
}
