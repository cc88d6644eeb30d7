// Package backup serializes a versioned snapshot of store state for manual
// export (file or clipboard) and validates such snapshots back in.
package backup

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/atotto/clipboard"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/store"
)

// Import failures are reported as error values with fixed user-facing
// messages; the caller shows them verbatim.
var (
	// ErrUnreadable means the input was not valid JSON.
	ErrUnreadable = errors.New("Không thể đọc file JSON")
	// ErrInvalidPayload means the JSON decoded to something other than an
	// object.
	ErrInvalidPayload = errors.New("File không hợp lệ")
	// ErrWrongFormat means the version or data field is missing or wrong.
	ErrWrongFormat = errors.New("Định dạng không đúng")
	// ErrMissingData means one of the required entity lists or the
	// settings record is absent.
	ErrMissingData = errors.New("Thiếu dữ liệu cần thiết")
)

// Payload is the backup transport format.
type Payload struct {
	Version int            `json:"version"`
	Date    string         `json:"date"`
	Data    store.Snapshot `json:"data"`
}

// Service exports and restores store snapshots.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates a backup service bound to a store.
func NewService(s *store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// ExportJSON serializes the current store state as a versioned payload.
// Store state is valid by construction, so there is nothing to validate
// on the way out.
func (s *Service) ExportJSON() (string, error) {
	payload := Payload{
		Version: store.StateVersion,
		Date:    s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Data:    s.store.Snapshot(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// CopyToClipboard places the export payload on the system clipboard.
func (s *Service) CopyToClipboard() error {
	raw, err := s.ExportJSON()
	if err != nil {
		return err
	}
	return clipboard.WriteAll(raw)
}

// ImportJSON validates a backup payload and replaces store state wholesale
// with its contents. Incoming transactions whose category id is unknown
// are remapped to the "other" sentinel; an empty incoming category list is
// substituted with the current built-in categories. On any failure the
// store is left untouched.
func (s *Service) ImportJSON(raw string) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return ErrUnreadable
	}

	// A top-level array reads past the object check (it still has no
	// version field), anything else non-object fails outright.
	obj, ok := parsed.(map[string]any)
	if !ok {
		if _, isArray := parsed.([]any); isArray {
			return ErrWrongFormat
		}
		return ErrInvalidPayload
	}
	if _, ok := obj["version"].(float64); !ok {
		return ErrWrongFormat
	}
	if !truthy(obj["data"]) {
		return ErrWrongFormat
	}

	data, ok := obj["data"].(map[string]any)
	if !ok {
		return ErrMissingData
	}
	for _, key := range []string{"transactions", "categories", "budgets", "goals"} {
		if _, ok := data[key].([]any); !ok {
			return ErrMissingData
		}
	}
	if !truthy(data["settings"]) {
		return ErrMissingData
	}

	// Structure checks passed; decode into the typed snapshot.
	rawData, err := json.Marshal(data)
	if err != nil {
		return ErrUnreadable
	}
	var snap store.Snapshot
	if err := json.Unmarshal(rawData, &snap); err != nil {
		return ErrUnreadable
	}

	if len(snap.Categories) == 0 {
		snap.Categories = s.store.BuiltinCategories()
	}

	catIDs := make(map[string]bool, len(snap.Categories))
	for _, c := range snap.Categories {
		catIDs[c.ID] = true
	}
	for i := range snap.Transactions {
		if !catIDs[snap.Transactions[i].CategoryID] {
			snap.Transactions[i].CategoryID = store.CategoryOther
		}
	}

	s.store.Replace(snap)
	return nil
}

// truthy mirrors the loose presence check of the original payload
// validation: nil, false, empty string, and zero all count as absent.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	}
	return true
}
