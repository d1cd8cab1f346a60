package entities

import "time"

// HistoryEntry records one completed generation. Entries are created exactly
// once, when a generation finishes successfully, and are immutable after
// that.
type HistoryEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	Prompt    string    `gorm:"type:text" json:"prompt"`
	Output    string    `gorm:"type:text" json:"output"`
	Provider  string    `gorm:"size:50;index" json:"provider"`
	Model     string    `gorm:"size:100" json:"model"`
}

func (HistoryEntry) TableName() string {
	return "history_entries"
}
