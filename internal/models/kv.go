package models

import "time"

// KVEntry is one persisted key-value row. Values are JSON text; decoding
// is the caller's concern.
type KVEntry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
