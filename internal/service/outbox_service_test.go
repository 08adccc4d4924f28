package service_test

import (
	"context"
	"errors"
	"testing"

	"forum_api/internal/model"
	"forum_api/internal/repository/mysql"
	"forum_api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRelayerDrainsPending(t *testing.T) {
	db := setupDB(t)
	votes := service.NewVoteService(mysql.NewVoteRepository(db))
	ctx := context.Background()

	_, err := votes.VotePost(ctx, 1, 10, 1)
	require.NoError(t, err)
	_, err = votes.VoteComment(ctx, 1, 20, -1)
	require.NoError(t, err)

	var sent []model.EventOutbox
	sender := func(ctx context.Context, ev *model.EventOutbox) error {
		sent = append(sent, *ev)
		return nil
	}

	relayer := service.NewOutboxRelayer(mysql.NewOutboxRepository(db), sender, zap.NewNop())
	relayer.DrainOnce(ctx)

	require.Len(t, sent, 2)
	assert.Equal(t, "post_vote", sent[0].EventType)
	assert.Equal(t, "comment_vote", sent[1].EventType)

	var pending int64
	require.NoError(t, db.Model(&model.EventOutbox{}).Where("status = 0").Count(&pending).Error)
	assert.Zero(t, pending, "delivered events leave the pending set")

	// a second drain finds nothing
	sent = nil
	relayer.DrainOnce(ctx)
	assert.Empty(t, sent)
}

func TestRelayerMarksFailures(t *testing.T) {
	db := setupDB(t)
	votes := service.NewVoteService(mysql.NewVoteRepository(db))
	ctx := context.Background()

	_, err := votes.VotePost(ctx, 1, 10, 1)
	require.NoError(t, err)
	_, err = votes.VotePost(ctx, 2, 10, 1)
	require.NoError(t, err)

	calls := 0
	sender := func(ctx context.Context, ev *model.EventOutbox) error {
		calls++
		if calls == 1 {
			return errors.New("broker down")
		}
		return nil
	}

	relayer := service.NewOutboxRelayer(mysql.NewOutboxRepository(db), sender, zap.NewNop())
	relayer.DrainOnce(ctx)

	// the failure does not block the rest of the batch
	assert.Equal(t, 2, calls)

	var failed []model.EventOutbox
	require.NoError(t, db.Where("status = 2").Find(&failed).Error)
	require.Len(t, failed, 1)
	assert.EqualValues(t, 1, failed[0].Retry)

	var delivered int64
	require.NoError(t, db.Model(&model.EventOutbox{}).Where("status = 1").Count(&delivered).Error)
	assert.EqualValues(t, 1, delivered)
}
