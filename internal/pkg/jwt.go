package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrRefreshExpired    = errors.New("refresh token expired")
	ErrRefreshInvalid    = errors.New("refresh token invalid")
)

type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenService signs and verifies bearer tokens. The secrets are read from
// configuration exactly once at startup and never rotated mid-process, so a
// token issued by this process verifies for its whole lifetime.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

// Issue mints an access token for userID with an explicit ttl.
func (s *TokenService) Issue(userID uint64, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   "access",
		},
	})
	return t.SignedString(s.accessSecret)
}

// IssuePair mints the access/refresh pair for a fresh login.
func (s *TokenService) IssuePair(userID uint64) (*Pair, error) {
	access, err := s.Issue(userID, s.accessTTL)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
			Subject:   "refresh",
			ID:        uuid.NewString(),
		},
	})
	refreshToken, err := refresh.SignedString(s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &Pair{AccessToken: access, RefreshToken: refreshToken}, nil
}

// Verify returns the user id embedded in an access token. Expiry, tampering
// and garbage are reported as distinct errors so callers can log the kind;
// how much of that reaches the client is the caller's call.
func (s *TokenService) Verify(tokenStr string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenBadSignature
		default:
			return 0, ErrTokenMalformed
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrTokenMalformed
	}
	return claims.UserID, nil
}

// Refresh trades a valid refresh token for a fresh pair and reports whose it
// was. Expiry is terminal; the caller re-authenticates, we never retry.
func (s *TokenService) Refresh(refreshToken string) (uint64, *Pair, error) {
	token, err := jwt.ParseWithClaims(refreshToken, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.refreshSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, nil, ErrRefreshExpired
		}
		return 0, nil, ErrRefreshInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject != "refresh" {
		return 0, nil, ErrRefreshInvalid
	}
	pair, err := s.IssuePair(claims.UserID)
	if err != nil {
		return 0, nil, err
	}
	return claims.UserID, pair, nil
}
