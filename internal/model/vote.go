package model

import "time"

// PostVote records one vote per (post, user). Value is ±1.
// uk_post_vote = (post_id, user_id)
type PostVote struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_post_vote"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uk_post_vote"`
	Value     int8   `gorm:"not null"`
	CreatedAt time.Time
}

func (PostVote) TableName() string { return "post_votes" }

// CommentVote mirrors PostVote for comments.
// uk_comment_vote = (comment_id, user_id)
type CommentVote struct {
	ID        uint64 `gorm:"primaryKey"`
	CommentID uint64 `gorm:"not null;index;uniqueIndex:uk_comment_vote"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uk_comment_vote"`
	Value     int8   `gorm:"not null"`
	CreatedAt time.Time
}

func (CommentVote) TableName() string { return "comment_votes" }
