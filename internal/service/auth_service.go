package service

import (
	"context"
	"fmt"
	"log"

	"lexfeed/internal/auth"
	apperrors "lexfeed/internal/errors"
	"lexfeed/internal/model"
	"lexfeed/internal/repository"
)

// AuthService handles registration, login and token issuance.
type AuthService interface {
	Register(ctx context.Context, in *model.UserImport, roleName string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	TokenFor(userID uint) (string, error)
}

type authService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	jwtService *auth.JWTService
	index      UserIndex
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, roles repository.RoleRepository, jwtService *auth.JWTService, index UserIndex) AuthService {
	return &authService{
		users:      users,
		roles:      roles,
		jwtService: jwtService,
		index:      index,
	}
}

// Register creates a user under the named role, or under the default role
// when roleName is empty, and returns a fresh token for it.
func (s *authService) Register(ctx context.Context, in *model.UserImport, roleName string) (string, *model.User, error) {
	var (
		role *model.Role
		err  error
	)
	if roleName == "" {
		role, err = s.roles.FindDefault(ctx)
	} else {
		role, err = s.roles.FindByName(ctx, roleName)
	}
	if err != nil {
		return "", nil, fmt.Errorf("resolve role: %w", err)
	}

	user := &model.User{}
	if err := in.Apply(user); err != nil {
		return "", nil, err
	}
	user.RoleID = role.ID
	user.Role = role

	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.index.IndexUser(user); err != nil {
		log.Printf("index user %d: %v", user.ID, err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password fail the same way.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.VerifyPassword(password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// TokenFor issues a token for an already-authenticated user.
func (s *authService) TokenFor(userID uint) (string, error) {
	return s.jwtService.GenerateToken(userID)
}
