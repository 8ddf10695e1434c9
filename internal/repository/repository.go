// Package repository implements the per-entity storage contract on top of
// GORM. Services depend on the interfaces declared here, not on the concrete
// implementations, enabling unit testing via in-memory stubs.
package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound signals that an id-addressed operation found no record.
// It is the only storage error callers are expected to branch on.
var ErrNotFound = errors.New("registro não encontrado")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// patchColumns converts a partial-update body (JSON field names) into a GORM
// column map. Only whitelisted fields pass through; everything else —
// unknown keys, id, timestamps, the _userId/_userName actor hints — is
// silently dropped. Supplied values are written as-is, so an explicit null
// or empty string overwrites the stored value (merge semantics of the
// original system).
func patchColumns(fields map[string]any, allowed map[string]string) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		col, ok := allowed[key]
		if !ok {
			continue
		}
		out[col] = value
	}
	return out
}

// equipmentPatch is patchColumns plus the updated_at refresh every equipment
// update performs, even when the patch body is empty.
func equipmentPatch(fields map[string]any, allowed map[string]string) map[string]any {
	out := patchColumns(fields, allowed)
	out["updated_at"] = time.Now()
	return out
}
