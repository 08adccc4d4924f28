package service

import (
	"context"
	"strings"

	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
	"forum_api/internal/repository/redis"
)

type EmailService struct {
	smtp  pkg.SMTPConfig
	users *mysql.UserRepository
	codes *redis.ResetCodeRepository
}

func NewEmailService(smtp pkg.SMTPConfig, users *mysql.UserRepository, codes *redis.ResetCodeRepository) *EmailService {
	return &EmailService{smtp: smtp, users: users, codes: codes}
}

// SendResetCode mails a one-shot password reset code. The code is stored
// before sending; if the mail fails the code is removed again so a half-done
// request leaves nothing behind.
func (s *EmailService) SendResetCode(ctx context.Context, email string) error {
	email = strings.ToLower(email)
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return err
	}

	code, err := pkg.RandCode(6)
	if err != nil {
		return err
	}
	if err := s.codes.Save(ctx, email, code); err != nil {
		return err
	}

	html := pkg.ResetCodeHTML(code, redis.ResetCodeTTL)
	if err := pkg.SendEmail(s.smtp, email, "Password reset code", html); err != nil {
		_ = s.codes.Delete(ctx, email)
		return err
	}
	return nil
}
