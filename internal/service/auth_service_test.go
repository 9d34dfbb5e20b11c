package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lexfeed/internal/auth"
	apperrors "lexfeed/internal/errors"
	"lexfeed/internal/model"
)

func strptr(s string) *string { return &s }

func TestAuthService_Register(t *testing.T) {
	lawyerRole := &model.Role{ID: 2, Name: model.RoleNameLawyer}
	defaultRole := &model.Role{ID: 1, Name: model.RoleNameUser, Default: true}

	tests := []struct {
		name          string
		payload       model.UserImport
		roleName      string
		setupMocks    func(*MockUserRepository, *MockRoleRepository, *MockUserIndex)
		expectedError error
		expectedRole  uint
	}{
		{
			name:     "successful lawyer registration",
			payload:  model.UserImport{Email: strptr("a@b.example"), Name: strptr("A"), Password: strptr("secret")},
			roleName: model.RoleNameLawyer,
			setupMocks: func(u *MockUserRepository, r *MockRoleRepository, i *MockUserIndex) {
				r.On("FindByName", mock.Anything, model.RoleNameLawyer).Return(lawyerRole, nil)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				i.On("IndexUser", mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: 2,
		},
		{
			name:     "empty role name falls back to default role",
			payload:  model.UserImport{Email: strptr("c@d.example")},
			roleName: "",
			setupMocks: func(u *MockUserRepository, r *MockRoleRepository, i *MockUserIndex) {
				r.On("FindDefault", mock.Anything).Return(defaultRole, nil)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				i.On("IndexUser", mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: 1,
		},
		{
			name:     "missing email fails validation",
			payload:  model.UserImport{Name: strptr("No Email")},
			roleName: model.RoleNameLawyer,
			setupMocks: func(u *MockUserRepository, r *MockRoleRepository, i *MockUserIndex) {
				r.On("FindByName", mock.Anything, model.RoleNameLawyer).Return(lawyerRole, nil)
			},
			expectedError: apperrors.NewValidation("email"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			roleRepo := new(MockRoleRepository)
			index := new(MockUserIndex)
			tt.setupMocks(userRepo, roleRepo, index)

			svc := NewAuthService(userRepo, roleRepo, auth.NewJWTService("test-secret"), index)
			token, user, err := svc.Register(context.Background(), &tt.payload, tt.roleName)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, *tt.payload.Email, user.Email)
			assert.Equal(t, tt.expectedRole, user.RoleID)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	index := new(MockUserIndex)
	roleRepo.On("FindByName", mock.Anything, model.RoleNameUser).Return(&model.Role{ID: 1, Name: model.RoleNameUser}, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
	index.On("IndexUser", mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewAuthService(userRepo, roleRepo, auth.NewJWTService("test-secret"), index)
	_, user, err := svc.Register(context.Background(), &model.UserImport{
		Email:    strptr("hash@me.example"),
		Password: strptr("plaintext"),
	}, model.RoleNameUser)

	assert.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "plaintext", user.PasswordHash)
	assert.True(t, user.VerifyPassword("plaintext"))
}

func TestAuthService_Login(t *testing.T) {
	stored := &model.User{ID: 7, Email: "known@user.example"}
	assert.NoError(t, stored.SetPassword("right-password"))

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "known@user.example",
			password: "right-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "known@user.example").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "known@user.example",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "known@user.example").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@user.example",
			password: "whatever",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@user.example").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(userRepo, new(MockRoleRepository), jwtService, new(MockUserIndex))
			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)

			// the token must round-trip back to the same user id
			claims, err := jwtService.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, stored.ID, claims.UserID)
		})
	}
}
