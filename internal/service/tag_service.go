package service

import (
	"context"
	"strings"

	"forum_api/internal/model"
	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
)

type TagService struct {
	repo *mysql.TagRepository
}

func NewTagService(repo *mysql.TagRepository) *TagService {
	return &TagService{repo: repo}
}

// CreateTag lower-cases the name and creates it; a duplicate is a conflict.
func (s *TagService) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, pkg.ErrInvalidInput
	}
	tag := &model.Tag{Name: name}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// TagPost links a tag to a post, once.
func (s *TagService) TagPost(ctx context.Context, actorID, postID, tagID uint64) (*model.PostTag, error) {
	if actorID == 0 || postID == 0 || tagID == 0 {
		return nil, pkg.ErrInvalidInput
	}
	link := &model.PostTag{PostID: postID, TagID: tagID}
	if err := s.repo.Link(ctx, actorID, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *TagService) ListByPost(ctx context.Context, postID uint64) ([]model.Tag, error) {
	return s.repo.ListByPost(ctx, postID)
}
