package service

import (
	"context"

	"forum_api/internal/model"
	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
)

type VoteService struct {
	repo *mysql.VoteRepository
}

func NewVoteService(repo *mysql.VoteRepository) *VoteService {
	return &VoteService{repo: repo}
}

func validVoteValue(v int8) bool { return v == 1 || v == -1 }

// VotePost records a single ±1 vote per (post, user). A repeated vote is a
// conflict, not a vote change.
func (s *VoteService) VotePost(ctx context.Context, userID, postID uint64, value int8) (*model.PostVote, error) {
	if userID == 0 || postID == 0 || !validVoteValue(value) {
		return nil, pkg.ErrInvalidInput
	}
	vote := &model.PostVote{PostID: postID, UserID: userID, Value: value}
	if err := s.repo.CreatePostVote(ctx, vote); err != nil {
		return nil, err
	}
	return vote, nil
}

// VoteComment is VotePost for comment targets.
func (s *VoteService) VoteComment(ctx context.Context, userID, commentID uint64, value int8) (*model.CommentVote, error) {
	if userID == 0 || commentID == 0 || !validVoteValue(value) {
		return nil, pkg.ErrInvalidInput
	}
	vote := &model.CommentVote{CommentID: commentID, UserID: userID, Value: value}
	if err := s.repo.CreateCommentVote(ctx, vote); err != nil {
		return nil, err
	}
	return vote, nil
}
