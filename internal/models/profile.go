package models

import "gorm.io/datatypes"

// ProfileSlotKey is the fixed key of the single allowed profile row.
const ProfileSlotKey = "profile"

// ProfileSlot holds the one freeform profile document, stored verbatim.
// At most one row exists (the fixed slot key).
type ProfileSlot struct {
	Key   string         `gorm:"primaryKey;size:32"`
	Value datatypes.JSON `gorm:"not null"`
}

func (ProfileSlot) TableName() string { return "profile" }
