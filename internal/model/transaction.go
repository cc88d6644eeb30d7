package model

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome represents money received.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "expense"
)

// Transaction is a single recorded income or expense event.
//
// Datetime is kept as the ISO-8601 string it was recorded with so that
// persistence and backup payloads round-trip unchanged; callers that need
// a time.Time use Time().
type Transaction struct {
	ID         string          `json:"id"`
	Amount     float64         `json:"amount"`
	Type       TransactionType `json:"type"`
	CategoryID string          `json:"categoryId"`
	Datetime   string          `json:"datetime"`
	Note       string          `json:"note,omitempty"`
	Wallet     string          `json:"wallet,omitempty"`
}

// Time parses the transaction's datetime. The boolean is false when the
// stored string is not a valid RFC 3339 timestamp.
func (t Transaction) Time() (time.Time, bool) {
	parsed, err := time.Parse(time.RFC3339, t.Datetime)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// TransactionPatch carries a partial update for a transaction.
// Nil fields mean "leave unchanged".
type TransactionPatch struct {
	Amount     *float64
	Type       *TransactionType
	CategoryID *string
	Datetime   *string
	Note       *string
	Wallet     *string
}

// Apply merges the patch into t, field by field.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Datetime != nil {
		t.Datetime = *p.Datetime
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.Wallet != nil {
		t.Wallet = *p.Wallet
	}
}
