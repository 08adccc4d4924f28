package mysql

import (
	"context"
	"errors"

	"forum_api/internal/model"
	"forum_api/internal/pkg"

	"gorm.io/gorm"
)

type VoteRepository struct {
	DB *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository { return &VoteRepository{DB: db} }

// CreatePostVote inserts at most one vote per (post, user). The pre-check is
// the friendly path; two concurrent callers race to the unique index and the
// loser's duplicate-key violation is mapped to ErrAlreadyExists, so exactly
// one row ever exists.
func (r *VoteRepository) CreatePostVote(ctx context.Context, vote *model.PostVote) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PostVote
		err := tx.Where("post_id = ? AND user_id = ?", vote.PostID, vote.UserID).
			First(&existing).Error
		if err == nil {
			return pkg.ErrAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(vote).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "post_vote", vote.UserID, vote.PostID, vote.Value)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkg.ErrAlreadyExists
	}
	return err
}

// CreateCommentVote mirrors CreatePostVote for comment targets.
func (r *VoteRepository) CreateCommentVote(ctx context.Context, vote *model.CommentVote) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CommentVote
		err := tx.Where("comment_id = ? AND user_id = ?", vote.CommentID, vote.UserID).
			First(&existing).Error
		if err == nil {
			return pkg.ErrAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(vote).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "comment_vote", vote.UserID, vote.CommentID, vote.Value)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkg.ErrAlreadyExists
	}
	return err
}
