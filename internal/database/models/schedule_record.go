package models

import (
	"encoding/json"
	"time"
)

// ScheduleRecord stores one schedule document as an opaque JSON blob
// under one logical key. The engine always reads and writes the whole
// document; there are no field-level columns to migrate when the
// document shape evolves.
type ScheduleRecord struct {
	Key       string          `json:"key" gorm:"primaryKey;type:varchar(100)"`
	Doc       json.RawMessage `json:"doc" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for ScheduleRecord
func (ScheduleRecord) TableName() string {
	return "schedule_documents"
}
