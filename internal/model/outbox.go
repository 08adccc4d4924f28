package model

import "time"

// EventOutbox buffers ledger events (votes, tag links) written in the same
// transaction as the row they describe, for asynchronous delivery.
type EventOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // post_vote / comment_vote / post_tag
	ActorID   uint64 `gorm:"not null"`
	TargetID  uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0"` // 0=pending,1=sent,2=failed
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EventOutbox) TableName() string { return "event_outbox" }
