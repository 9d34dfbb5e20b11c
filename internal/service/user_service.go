package service

import (
	"context"
	"fmt"
	"log"

	"lexfeed/internal/model"
	"lexfeed/internal/pagination"
	"lexfeed/internal/repository"
)

// searchLimit caps how many index hits are resolved per query.
const searchLimit = 50

// UserService handles profile reads, edits and the lawyer search.
type UserService interface {
	Get(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, in *model.UserImport) (*model.User, error)
	SetImage(ctx context.Context, user *model.User, image string) error
	ListByRole(ctx context.Context, roleName, key, path string, page int) (map[string]interface{}, error)
	Search(ctx context.Context, query string) ([]map[string]interface{}, error)
	Export(user *model.User) map[string]interface{}
}

type userService struct {
	users    repository.UserRepository
	roles    repository.RoleRepository
	index    UserIndex
	urls     urls
	pageSize int
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, roles repository.RoleRepository, index UserIndex, baseURL string, pageSize int) UserService {
	return &userService{
		users:    users,
		roles:    roles,
		index:    index,
		urls:     newURLs(baseURL),
		pageSize: pageSize,
	}
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

// Update applies an import payload to the stored user and refreshes its
// search document.
func (s *userService) Update(ctx context.Context, id uint, in *model.UserImport) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if err := in.Apply(user); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if err := s.index.IndexUser(user); err != nil {
		log.Printf("index user %d: %v", user.ID, err)
	}
	return user, nil
}

// SetImage records an uploaded image filename on the user.
func (s *userService) SetImage(ctx context.Context, user *model.User, image string) error {
	if image != "" {
		user.Image = image
	}
	return s.users.Update(ctx, user)
}

// ListByRole returns one page of users holding the named role, keyed under
// key in the response envelope.
func (s *userService) ListByRole(ctx context.Context, roleName, key, path string, page int) (map[string]interface{}, error) {
	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, notFound(err)
	}

	total, err := s.users.CountByRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}

	p, err := pagination.New(total, page, s.pageSize, s.urls.path(path))
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListByRole(ctx, role.ID, p.Offset(), p.PerPage)
	if err != nil {
		return nil, err
	}

	exports := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		exports = append(exports, s.Export(&users[i]))
	}
	return p.Envelope(key, exports), nil
}

// Search resolves free-text index hits to stored users and keeps only
// lawyers, exported normally.
func (s *userService) Search(ctx context.Context, query string) ([]map[string]interface{}, error) {
	ids, err := s.index.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lawyer, err := s.roles.FindByName(ctx, model.RoleNameLawyer)
	if err != nil {
		return nil, notFound(err)
	}

	// preserve index relevance order
	byID := make(map[uint]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	results := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		user, ok := byID[id]
		if !ok || user.RoleID != lawyer.ID {
			continue
		}
		results = append(results, s.Export(user))
	}
	return results, nil
}

// Export produces the externally-visible user payload, links included.
func (s *userService) Export(user *model.User) map[string]interface{} {
	return map[string]interface{}{
		"id":                    user.ID,
		"self_url":              s.urls.user(user.ID),
		"role_id":               user.RoleID,
		"email":                 user.Email,
		"name":                  user.Name,
		"image":                 s.urls.userImage(user.Image),
		"location":              user.Location,
		"company":               user.Company,
		"position":              user.Position,
		"about":                 user.About,
		"feeds_url":             s.urls.feeds(),
		"comments_url":          s.urls.feedComments(user.ID),
		"sent_messages_url":     s.urls.outbox(),
		"received_messages_url": s.urls.inbox(),
	}
}
