package model

import "time"

type Post struct {
	ID           uint64 `gorm:"primaryKey"`
	AuthorID     uint64 `gorm:"not null;index:idx_post_author"`
	Title        string `gorm:"size:300;not null"`
	Content      string `gorm:"type:text"`
	IsURL        bool   `gorm:"not null;default:false"` // link post vs text post
	CreatedAt    time.Time
	LastModified time.Time `gorm:"autoUpdateTime"`
}
