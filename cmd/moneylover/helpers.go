package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/common"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/config"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/storage"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/store"
)

// openStore opens the configured database and hydrates the store from it.
// The returned cleanup closes the database.
func openStore(ctx context.Context) (*store.Store, func(), error) {
	dbPath := config.ExpandPath(viper.GetString("storage.path"))
	if dbPath == "" {
		return nil, nil, common.NewUserError(
			"storage path is not configured, set storage.path or --db",
			common.ErrMissingConfig)
	}

	kv, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		common.LogError(err, "failed to open storage", common.Fields{"path": dbPath})
		return nil, nil, fmt.Errorf("%w: %s", common.ErrStorageUnavailable, dbPath)
	}

	s := store.New(ctx, kv)
	return s, func() { _ = kv.Close() }, nil
}

// parseMonth interprets a --month value like "2025-10". An empty value
// means the current month.
func parseMonth(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	ref, err := time.ParseInLocation("2006-01", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return ref, nil
}
