package service

import (
	"context"
	"strings"

	"forum_api/internal/model"
	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
)

type CommentService struct {
	repo  *mysql.CommentRepository
	posts *mysql.PostRepository
}

func NewCommentService(repo *mysql.CommentRepository, posts *mysql.PostRepository) *CommentService {
	return &CommentService{repo: repo, posts: posts}
}

// Create attaches a comment to an existing post. The parent id is taken as
// given — it is a soft thread link and may point at nothing.
func (s *CommentService) Create(ctx context.Context, authorID, postID uint64, parentID *uint64, content string) (*model.Comment, error) {
	if authorID == 0 || strings.TrimSpace(content) == "" {
		return nil, pkg.ErrInvalidInput
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	comment := &model.Comment{AuthorID: authorID, PostID: postID, ParentID: parentID, Content: content}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id uint64) (*model.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

// Parent resolves the soft parent link. A dangling or absent parent yields
// ErrNotFound, which callers treat as "no parent to show".
func (s *CommentService) Parent(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if comment.ParentID == nil {
		return nil, pkg.ErrNotFound
	}
	return s.repo.FindByID(ctx, *comment.ParentID)
}

func (s *CommentService) ListByPost(ctx context.Context, postID uint64) ([]model.Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}
