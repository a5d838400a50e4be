package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeFormat is the wire format for entity timestamps.
const TimeFormat = "2006-01-02T15:04:05.000000"

// classKey is the serialized discriminator naming the concrete entity kind.
const classKey = "__class__"

// Base carries the identity and timestamps shared by every entity.
type Base struct {
	ID        string    `gorm:"primaryKey;size:60" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase returns a Base with a fresh v4 UUID and matching timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the immutable identifier.
func (b *Base) GetID() string { return b.ID }

// Touch refreshes UpdatedAt.
func (b *Base) Touch() { b.UpdatedAt = time.Now().UTC() }

func (b *Base) base() *Base { return b }

// baseMap seeds the serialized form with identity, timestamps and the
// discriminator.
func (b *Base) baseMap(kind Kind) map[string]interface{} {
	return map[string]interface{}{
		classKey:     string(kind),
		"id":         b.ID,
		"created_at": b.CreatedAt.Format(TimeFormat),
		"updated_at": b.UpdatedAt.Format(TimeFormat),
	}
}

// applyBase overrides the generated identity and timestamps from an
// attribute map. String timestamps are parsed with TimeFormat; values that
// do not parse are ignored.
func (b *Base) applyBase(attrs map[string]interface{}) {
	if id, ok := attrs["id"].(string); ok && id != "" {
		b.ID = id
	}
	if t, ok := asTime(attrs["created_at"]); ok {
		b.CreatedAt = t
	}
	if t, ok := asTime(attrs["updated_at"]); ok {
		b.UpdatedAt = t
	}
}

func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(TimeFormat, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}
