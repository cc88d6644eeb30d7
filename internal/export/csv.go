// Package export serializes transaction lists for sharing outside the app.
package export

import (
	"strconv"
	"strings"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
)

// csvHeader is the fixed column order. Consumers key off these names, so
// the order never changes.
var csvHeader = []string{"id", "datetime", "type", "amount", "categoryId", "wallet", "note"}

// ToCSV renders transactions as CSV: the fixed header followed by one row
// per transaction in input order. There is no trailing newline, so an
// empty list yields exactly the header line.
func ToCSV(transactions []model.Transaction) string {
	var b strings.Builder
	writeRow(&b, csvHeader)

	for _, t := range transactions {
		b.WriteByte('\n')
		writeRow(&b, []string{
			t.ID,
			t.Datetime,
			string(t.Type),
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			t.CategoryID,
			t.Wallet,
			t.Note,
		})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(f))
	}
}

// quote applies RFC 4180 escaping: fields containing a comma, quote, or
// newline are wrapped in double quotes with inner quotes doubled.
func quote(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
