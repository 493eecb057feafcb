package models

import "time"

// Backup describes one JSON snapshot file on disk.
type Backup struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"` // UUID
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	Size      int64     `json:"size"`
	TxnCount  int       `json:"txn_count"`
	CreatedAt time.Time `json:"created_at"`
}

func (Backup) TableName() string { return "backups" }
