package usecase

import (
	"context"
	"errors"
	"strings"

	"staffhive/internal/pkg/jwt"
	"staffhive/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

const minPasswordLength = 8

type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type AuthUser struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
}

type AuthUsecase interface {
	Register(ctx context.Context, p RegisterParams) (AuthUser, AuthTokens, error)
	Login(ctx context.Context, email, password string) (AuthUser, AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (AuthTokens, error)
	Me(ctx context.Context, userID uuid.UUID) (AuthUser, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service

	accessTTLSeconds int64
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service, accessTTLSeconds int64) *Auth {
	return &Auth{users: users, jwt: jwtSvc, accessTTLSeconds: accessTTLSeconds}
}

func (u *Auth) Register(ctx context.Context, p RegisterParams) (AuthUser, AuthTokens, error) {
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	if p.Email == "" || !strings.Contains(p.Email, "@") {
		return AuthUser{}, AuthTokens{}, ErrInvalidInput
	}
	if len(p.Password) < minPasswordLength {
		return AuthUser{}, AuthTokens{}, ErrInvalidInput
	}
	if p.Role != jwt.RoleWorker && p.Role != jwt.RoleEmployer {
		return AuthUser{}, AuthTokens{}, ErrInvalidRole
	}

	taken, err := u.users.ExistsByEmail(ctx, p.Email)
	if err != nil {
		return AuthUser{}, AuthTokens{}, ErrInternal
	}
	if taken {
		return AuthUser{}, AuthTokens{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthUser{}, AuthTokens{}, ErrInternal
	}

	user := repository.User{
		ID:           uuid.New(),
		Email:        p.Email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Role:         p.Role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return AuthUser{}, AuthTokens{}, ErrInternal
	}

	tokens, err := u.issueTokens(user)
	if err != nil {
		return AuthUser{}, AuthTokens{}, ErrInternal
	}
	return toAuthUser(user), tokens, nil
}

func (u *Auth) Login(ctx context.Context, email, password string) (AuthUser, AuthTokens, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return AuthUser{}, AuthTokens{}, ErrInvalidCredentials
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthUser{}, AuthTokens{}, ErrInvalidCredentials
		}
		return AuthUser{}, AuthTokens{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthUser{}, AuthTokens{}, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(user)
	if err != nil {
		return AuthUser{}, AuthTokens{}, ErrInternal
	}
	return toAuthUser(user), tokens, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (AuthTokens, error) {
	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return AuthTokens{}, ErrUnauthorized
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthTokens{}, ErrUnauthorized
		}
		return AuthTokens{}, ErrInternal
	}

	return u.issueTokens(user)
}

func (u *Auth) Me(ctx context.Context, userID uuid.UUID) (AuthUser, error) {
	if userID == uuid.Nil {
		return AuthUser{}, ErrUnauthorized
	}
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthUser{}, ErrUnauthorized
		}
		return AuthUser{}, ErrInternal
	}
	return toAuthUser(user), nil
}

func (u *Auth) issueTokens(user repository.User) (AuthTokens, error) {
	access, err := u.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return AuthTokens{}, err
	}
	refresh, err := u.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return AuthTokens{}, err
	}
	return AuthTokens{AccessToken: access, RefreshToken: refresh, ExpiresIn: u.accessTTLSeconds}, nil
}

func toAuthUser(u repository.User) AuthUser {
	return AuthUser{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Role: u.Role}
}
