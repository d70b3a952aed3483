package adaptor

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseUUIDList(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	ids := parseUUIDList(first.String() + "," + second.String())
	assert.Equal(t, []uuid.UUID{first, second}, ids)
}

func TestParseUUIDListSkipsMalformed(t *testing.T) {
	valid := uuid.New()

	ids := parseUUIDList("not-a-uuid, ," + valid.String())
	assert.Equal(t, []uuid.UUID{valid}, ids)
}

func TestParseUUIDListEmpty(t *testing.T) {
	assert.Nil(t, parseUUIDList(""))
	assert.Nil(t, parseUUIDList("garbage,also-garbage"))
}

func TestParseUUIDFilter(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, &id, parseUUIDFilter(id.String()))
	assert.Nil(t, parseUUIDFilter(""))
	assert.Nil(t, parseUUIDFilter("garbage"))
}

func TestParseDateFilter(t *testing.T) {
	date := parseDateFilter("2026-01-15")
	if assert.NotNil(t, date) {
		assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *date)
	}

	assert.Nil(t, parseDateFilter(""))
	assert.Nil(t, parseDateFilter("15-01-2026"))
	assert.Nil(t, parseDateFilter("2026-13-40"))
}
