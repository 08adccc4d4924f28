package mysql

import (
	"context"
	"errors"

	"forum_api/internal/model"
	"forum_api/internal/pkg"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository { return &PostRepository{DB: db} }

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.DB.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update rewrites the mutable fields; last_modified refreshes automatically.
func (r *PostRepository) Update(ctx context.Context, post *model.Post, title, content string, isURL bool) error {
	return r.DB.WithContext(ctx).Model(post).
		Updates(map[string]any{"title": title, "content": content, "is_url": isURL}).Error
}
