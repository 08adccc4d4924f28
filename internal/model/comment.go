package model

import "time"

// Comment threads under a post. ParentID is a soft reference: a bare comment
// id with no foreign key behind it, so a dangling parent is tolerated and
// resolved lazily by lookup.
type Comment struct {
	ID           uint64  `gorm:"primaryKey"`
	ParentID     *uint64 `gorm:"index"`
	AuthorID     uint64  `gorm:"not null;index"`
	PostID       uint64  `gorm:"not null;index:idx_comment_post"`
	Content      string  `gorm:"type:text"`
	CreatedAt    time.Time
	LastModified time.Time `gorm:"autoUpdateTime"`
}
