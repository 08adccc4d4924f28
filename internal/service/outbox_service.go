package service

import (
	"context"
	"strconv"
	"time"

	"forum_api/internal/model"
	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"

	"go.uber.org/zap"
)

// Sender delivers one outbox event. Swappable so tests and brokerless
// deployments do not need kafka.
type Sender func(ctx context.Context, ev *model.EventOutbox) error

// OutboxRelayer drains pending ledger events to the configured sender on a
// fixed tick.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
	log       *zap.Logger
}

func NewOutboxRelayer(repo *mysql.OutboxRepository, sender Sender, log *zap.Logger) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
		log:       log,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.DrainOnce(ctx)
		}
	}
}

// DrainOnce delivers one batch. A failed event is marked failed and skipped;
// the rest of the batch still goes out.
func (r *OutboxRelayer) DrainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		r.log.Warn("outbox list failed", zap.Error(err))
		return
	}
	for i := range rows {
		ev := rows[i]
		if err := r.sender(ctx, &ev); err != nil {
			r.log.Warn("outbox send failed", zap.Uint64("id", ev.ID), zap.Error(err))
			_ = r.repo.MarkFailed(ctx, ev.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ev.ID)
	}
}

// KafkaSender routes events to the ledger topic keyed by target id, so all
// events for one post or comment land on one partition in order.
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ev *model.EventOutbox) error {
		return p.Send(ctx, strconv.FormatUint(ev.TargetID, 10), []byte(ev.Payload))
	}
}

// LogSender is the brokerless fallback: events are considered delivered once
// logged.
func LogSender(log *zap.Logger) Sender {
	return func(ctx context.Context, ev *model.EventOutbox) error {
		log.Info("outbox event",
			zap.String("type", ev.EventType),
			zap.Uint64("actor", ev.ActorID),
			zap.Uint64("target", ev.TargetID))
		return nil
	}
}
