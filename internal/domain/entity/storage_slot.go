package entity

import "time"

// StorageSlot is a named key-value slot holding one serialized document
type StorageSlot struct {
	Name      string    `gorm:"type:varchar(100);primaryKey" json:"name"`
	Payload   []byte    `gorm:"type:jsonb;not null" json:"payload"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StorageSlot) TableName() string {
	return "storage_slots"
}
