package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenType = "bearer"

// TokenManager issues and validates HMAC-signed access tokens.
type TokenManager struct {
	Secret    []byte
	TTL       time.Duration
	Algorithm string
	Now       func() time.Time
}

func (m TokenManager) method() (jwt.SigningMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(m.Algorithm)) {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("unsupported token algorithm %q", m.Algorithm)
}

func (m TokenManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Issue signs a token whose subject is the user id.
func (m TokenManager) Issue(userID int64) (models.Token, error) {
	if len(m.Secret) == 0 {
		return models.Token{}, domain.InternalError{Msg: "token secret not configured"}
	}
	method, err := m.method()
	if err != nil {
		return models.Token{}, domain.InternalError{Msg: "token algorithm not supported", Err: err}
	}
	ttl := m.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString(m.Secret)
	if err != nil {
		return models.Token{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return models.Token{AccessToken: signed, TokenType: tokenType, ExpiresIn: int64(ttl.Seconds())}, nil
}

// Validate returns the user id carried by a token, or UnauthorizedError.
func (m TokenManager) Validate(token string) (int64, error) {
	method, err := m.method()
	if err != nil {
		return 0, domain.InternalError{Msg: "token algorithm not supported", Err: err}
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.Secret, nil
	}, jwt.WithValidMethods([]string{method.Alg()}), jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.UnauthorizedError{Msg: "token expired", Err: err}
		}
		return 0, domain.UnauthorizedError{Msg: "could not validate credentials", Err: err}
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.UnauthorizedError{Msg: "could not validate credentials", Err: err}
	}
	return id, nil
}

// AuthService exchanges credentials for access tokens.
type AuthService struct {
	Base
	Tokens TokenManager
}

var errBadCredentials = domain.UnauthorizedError{Msg: "incorrect username or password"}

// Login accepts either the username or the email as login name.
func (s AuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	login := strings.TrimSpace(req.Username)
	user, err := repositories.UserRepository{DB: s.db()}.GetByLogin(ctx, login)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Token{}, errBadCredentials
		}
		return models.Token{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login_failed", fmt.Sprintf("user_id=%d", user.ID))
		return models.Token{}, errBadCredentials
	}
	if !user.IsActive {
		return models.Token{}, domain.UnauthorizedError{Msg: "inactive user"}
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return models.Token{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", user.ID))
	return token, nil
}
