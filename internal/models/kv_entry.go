package models

import "time"

// KVEntry is one row of the key-value table backing the persisted collections.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name shared with the SQL migrations.
func (KVEntry) TableName() string {
	return "kv_entries"
}
