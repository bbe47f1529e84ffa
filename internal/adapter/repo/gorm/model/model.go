package model

import "time"

// Hand-written row models for the two persisted records. The schema is
// small enough that tools/modelgen is only needed after migrations change.

type Observation struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Trigger     string    `gorm:"column:trigger"`
	MapContext  string    `gorm:"column:map_context"`
	RepeatCount int       `gorm:"column:repeat_count"`
	Resolved    bool      `gorm:"column:resolved"`
	OccurredAt  time.Time `gorm:"column:occurred_at"`
	Payload     []byte    `gorm:"column:payload"`
}

func (Observation) TableName() string { return "observations" }

type SessionState struct {
	ID   int32  `gorm:"column:id;primaryKey"`
	Data []byte `gorm:"column:data"`
}

func (SessionState) TableName() string { return "session_state" }

type LedgerEntry struct {
	Attribute string  `gorm:"column:attribute;primaryKey"`
	Value     float64 `gorm:"column:value"`
}

func (LedgerEntry) TableName() string { return "ledger_entries" }
