package mysql

import (
	"context"
	"encoding/json"
	"time"

	"forum_api/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) *OutboxRepository { return &OutboxRepository{DB: db} }

// insertOutbox writes the event row inside the caller's transaction so the
// ledger row and its event commit or roll back together.
func insertOutbox(tx *gorm.DB, eventType string, actorID, targetID uint64, value int8) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"event_type": eventType,
		"actor":      actorID,
		"target":     targetID,
		"value":      value,
	})
	ev := &model.EventOutbox{
		EventType: eventType,
		ActorID:   actorID,
		TargetID:  targetID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ev).Error
}

// ListPending returns up to batchSize undelivered events, oldest first.
func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.EventOutbox, error) {
	var list []model.EventOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.EventOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.EventOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}
