package service

import (
	"context"
	"strings"

	"forum_api/internal/model"
	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
)

type PostService struct {
	repo *mysql.PostRepository
}

func NewPostService(repo *mysql.PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) Create(ctx context.Context, authorID uint64, title, content string, isURL bool) (*model.Post, error) {
	if authorID == 0 || strings.TrimSpace(title) == "" {
		return nil, pkg.ErrInvalidInput
	}
	post := &model.Post{AuthorID: authorID, Title: title, Content: content, IsURL: isURL}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id uint64) (*model.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update lets only the author mutate a post; last_modified refreshes on the
// way through.
func (s *PostService) Update(ctx context.Context, postID, authorID uint64, title, content string, isURL bool) (*model.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, pkg.ErrInvalidInput
	}
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, pkg.ErrNotOwner
	}
	if err := s.repo.Update(ctx, post, title, content, isURL); err != nil {
		return nil, err
	}
	return post, nil
}
