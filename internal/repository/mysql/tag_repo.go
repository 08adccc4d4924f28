package mysql

import (
	"context"
	"errors"

	"forum_api/internal/model"
	"forum_api/internal/pkg"

	"gorm.io/gorm"
)

type TagRepository struct {
	DB *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository { return &TagRepository{DB: db} }

// Create inserts a tag; the unique index on name turns a duplicate into
// ErrAlreadyExists.
func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	if err := r.DB.WithContext(ctx).Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkg.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *TagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Link creates the (post, tag) relationship on behalf of actorID. Same
// contract as votes: one row per composite key, concurrent duplicates lose to
// the unique index.
func (r *TagRepository) Link(ctx context.Context, actorID uint64, link *model.PostTag) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PostTag
		err := tx.Where("post_id = ? AND tag_id = ?", link.PostID, link.TagID).
			First(&existing).Error
		if err == nil {
			return pkg.ErrAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "post_tag", actorID, link.PostID, 0)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkg.ErrAlreadyExists
	}
	return err
}

// ListByPost returns the tags linked to a post.
func (r *TagRepository) ListByPost(ctx context.Context, postID uint64) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.WithContext(ctx).Model(&model.Tag{}).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Find(&tags).Error
	return tags, err
}
