package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// SearchLog records one pipeline run for offline analysis. Writes are
// best-effort; the pipeline never depends on them.
type SearchLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Prompt   string         `gorm:"column:prompt;type:text" json:"prompt"`
	Entities datatypes.JSON `gorm:"column:entities;type:jsonb" json:"entities"`
	Skills   pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`

	CacheHits  int `gorm:"column:cache_hits" json:"cache_hits"`
	Filtered   int `gorm:"column:filtered" json:"filtered"`
	Backfilled int `gorm:"column:backfilled" json:"backfilled"`
	Returned   int `gorm:"column:returned" json:"returned"`

	Outcome    string    `gorm:"column:outcome;type:text" json:"outcome"` // ok|invalid|not_found|error
	DurationMS int64     `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (SearchLog) TableName() string { return "search_logs" }
