package adaptor

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// parseUUIDList splits a comma-separated query value into UUIDs. Malformed
// entries are skipped so a bad filter narrows nothing instead of erroring.
func parseUUIDList(raw string) []uuid.UUID {
	if raw == "" {
		return nil
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// parseUUIDFilter parses a single-value id filter, nil when absent or
// malformed.
func parseUUIDFilter(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// parseDateFilter parses a YYYY-MM-DD calendar date, nil when absent or
// malformed.
func parseDateFilter(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &date
}
