package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"

	"gorm.io/gorm"
)

// timeFormat is used for all timestamps returned to clients.
const timeFormat = "2006-01-02T15:04:05Z07:00"

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// normalizeItemType is the single place item_type strings are folded for
// matching. Needed items reference stock by name, not by foreign key, and
// every comparison must go through here to keep the loose coupling from
// drifting across call sites.
func normalizeItemType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// sameItemType reports whether two item_type strings refer to the same stock
// type ("doorframe" matches "DoorFrame").
func sameItemType(a, b string) bool {
	return normalizeItemType(a) == normalizeItemType(b)
}

// notFoundOr converts gorm's record-not-found into the NotFound kind and
// wraps anything else as a transient store failure.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return apperr.Transient("storage unavailable, please retry", err)
}
