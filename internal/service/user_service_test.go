package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "lexfeed/internal/errors"
	"lexfeed/internal/model"
)

func newUserServiceForTest(users *MockUserRepository, roles *MockRoleRepository, index *MockUserIndex) UserService {
	return NewUserService(users, roles, index, testBaseURL, 10)
}

func TestUserService_Search_KeepsOnlyLawyers(t *testing.T) {
	lawyerRole := &model.Role{ID: 2, Name: model.RoleNameLawyer}
	matches := []model.User{
		{ID: 3, Name: "Nadia Rizk", RoleID: 1},
		{ID: 1, Name: "Sara Haddad", RoleID: 2},
		{ID: 2, Name: "Omar Fekry", RoleID: 2},
	}

	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	index := new(MockUserIndex)

	index.On("Search", mock.Anything, "cairo", searchLimit).Return([]uint{2, 3, 1}, nil)
	userRepo.On("FindByIDs", mock.Anything, []uint{2, 3, 1}).Return(matches, nil)
	roleRepo.On("FindByName", mock.Anything, model.RoleNameLawyer).Return(lawyerRole, nil)

	svc := newUserServiceForTest(userRepo, roleRepo, index)
	results, err := svc.Search(context.Background(), "cairo")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	// relevance order from the index, non-lawyer dropped
	assert.Equal(t, uint(2), results[0]["id"])
	assert.Equal(t, uint(1), results[1]["id"])
}

func TestUserService_Search_NoHits(t *testing.T) {
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	index := new(MockUserIndex)

	index.On("Search", mock.Anything, "maritime", searchLimit).Return([]uint{}, nil)
	userRepo.On("FindByIDs", mock.Anything, []uint{}).Return([]model.User{}, nil)
	roleRepo.On("FindByName", mock.Anything, model.RoleNameLawyer).Return(&model.Role{ID: 2}, nil)

	svc := newUserServiceForTest(userRepo, roleRepo, index)
	results, err := svc.Search(context.Background(), "maritime")

	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestUserService_Update_Reindexes(t *testing.T) {
	user := &model.User{ID: 4, Email: "a@b.c", RoleID: 2}
	location := "Cairo"

	userRepo := new(MockUserRepository)
	index := new(MockUserIndex)

	userRepo.On("FindByID", mock.Anything, uint(4)).Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)
	index.On("IndexUser", mock.MatchedBy(func(u *model.User) bool {
		return u.Location == location
	})).Return(nil)

	svc := newUserServiceForTest(userRepo, new(MockRoleRepository), index)
	updated, err := svc.Update(context.Background(), 4, &model.UserImport{Location: &location})

	assert.NoError(t, err)
	assert.Equal(t, location, updated.Location)
	index.AssertExpectations(t)
}

func TestUserService_Get_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := newUserServiceForTest(userRepo, new(MockRoleRepository), new(MockUserIndex))
	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_Export(t *testing.T) {
	user := &model.User{ID: 6, Email: "s@h.law", Name: "Sara", Image: "abc.png", RoleID: 2, Company: "Haddad & Partners"}

	svc := newUserServiceForTest(new(MockUserRepository), new(MockRoleRepository), new(MockUserIndex))
	export := svc.Export(user)

	assert.Equal(t, uint(6), export["id"])
	assert.Equal(t, testBaseURL+"/api/user/6", export["self_url"])
	assert.Equal(t, testBaseURL+"/static/images/users/abc.png", export["image"])
	assert.Equal(t, "Haddad & Partners", export["company"])
	assert.NotContains(t, export, "password")
}

func TestUserService_Export_ImageSentinel(t *testing.T) {
	svc := newUserServiceForTest(new(MockUserRepository), new(MockRoleRepository), new(MockUserIndex))
	export := svc.Export(&model.User{ID: 7})
	assert.Equal(t, ImageSentinel, export["image"])
}
