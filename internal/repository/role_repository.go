package repository

import (
	"context"

	"gorm.io/gorm"

	"lexfeed/internal/model"
)

// RoleRepository defines role persistence operations.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*model.Role, error)
	FindDefault(ctx context.Context) (*model.Role, error)
	EnsureDefaults(ctx context.Context) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindDefault(ctx context.Context) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("`default` = ?", true).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// EnsureDefaults upserts the canonical role set. Idempotent; safe to run on
// every startup.
func (r *roleRepository) EnsureDefaults(ctx context.Context) error {
	for _, want := range model.DefaultRoles() {
		var role model.Role
		err := r.db.WithContext(ctx).Where("name = ?", want.Name).First(&role).Error
		if err == gorm.ErrRecordNotFound {
			role = model.Role{Name: want.Name}
		} else if err != nil {
			return err
		}
		role.Permissions = want.Permissions
		role.Default = want.Default
		if err := r.db.WithContext(ctx).Save(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
