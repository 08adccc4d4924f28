package model

import "time"

type Tag struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:45;not null"` // stored lowercase
}

// PostTag links a post to a tag. The composite unique key means a duplicate
// link is a conflict, never a second row.
// uk_post_tag = (post_id, tag_id)
type PostTag struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_post_tag"`
	TagID     uint64 `gorm:"not null;uniqueIndex:uk_post_tag"`
	CreatedAt time.Time
}

func (PostTag) TableName() string { return "post_tags" }
