package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"forum_api/internal/model"
	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
	"forum_api/internal/repository/redis"
)

type UserService struct {
	repo     *mysql.UserRepository
	sessions *redis.SessionRepository
	codes    *redis.ResetCodeRepository
	tokens   *pkg.TokenService
}

func NewUserService(repo *mysql.UserRepository, sessions *redis.SessionRepository, codes *redis.ResetCodeRepository, tokens *pkg.TokenService) *UserService {
	return &UserService{
		repo:     repo,
		sessions: sessions,
		codes:    codes,
		tokens:   tokens,
	}
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Register creates a user. The email is folded to lowercase; the name must be
// alphanumeric and must not equal the email. The duplicate pre-check (exact
// email or case-insensitive name) is an early exit only — the unique indexes
// decide races, and a lost race still comes back as ErrDuplicateIdentity.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	email = strings.ToLower(email)
	if name == email || !isAlnum(name) {
		return nil, pkg.ErrInvalidInput
	}

	taken, err := s.repo.IdentityTaken(ctx, name, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, pkg.ErrDuplicateIdentity
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves the name and checks the password. ErrNotFound when
// the account does not exist, ErrBadCredentials when the password is wrong.
func (s *UserService) Authenticate(ctx context.Context, name, password string) (*model.User, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if !pkg.VerifyPassword(password, user.PasswordHash) {
		return nil, pkg.ErrBadCredentials
	}
	return user, nil
}

// Login authenticates and mints a token pair. The access token becomes the
// user's single active session.
func (s *UserService) Login(ctx context.Context, name, password string) (*pkg.Pair, error) {
	user, err := s.Authenticate(ctx, name, password)
	if err != nil {
		return nil, err
	}
	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	return s.sessions.Delete(ctx, userID)
}

// Refresh trades a refresh token for a fresh pair and swaps the active
// session over to the new access token.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*pkg.Pair, error) {
	userID, pair, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, userID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// ResetPassword consumes an emailed one-shot code and sets a new password.
// The active session, if any, is revoked.
func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = strings.ToLower(email)

	stored, err := s.codes.Take(ctx, email)
	if err != nil {
		// an absent code is the caller's problem; a dead redis is ours
		if errors.Is(err, redis.ErrCodeNotFound) {
			return pkg.ErrInvalidInput
		}
		return err
	}
	if stored != code {
		return pkg.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := pkg.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user, hash); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, user.ID)
}

// ChangePassword verifies the old password before setting the new one, then
// logs the user out everywhere.
func (s *UserService) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !pkg.VerifyPassword(oldPassword, user.PasswordHash) {
		return pkg.ErrBadCredentials
	}

	hash, err := pkg.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user, hash); err != nil {
		return err
	}
	return s.Logout(ctx, userID)
}

// Get looks a user up by id, for callers that verified a token and need to
// confirm the user still exists.
func (s *UserService) Get(ctx context.Context, id uint64) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByName resolves a public profile lookup.
func (s *UserService) GetByName(ctx context.Context, name string) (*model.User, error) {
	return s.repo.FindByName(ctx, name)
}
