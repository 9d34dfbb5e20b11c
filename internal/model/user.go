package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// DefaultUserImage is the image filename assigned to freshly created users.
const DefaultUserImage = "default.jpg"

// User represents a registered member of the network.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:64;index"`
	PasswordHash string    `json:"-" gorm:"size:128"`
	Confirmed    bool      `json:"confirmed" gorm:"default:true"`
	Name         string    `json:"name" gorm:"size:64"`
	Image        string    `json:"image" gorm:"size:1024;index"`
	Company      string    `json:"company" gorm:"size:1024"`
	Position     string    `json:"position" gorm:"size:1024"`
	Location     string    `json:"location" gorm:"size:64"`
	About        string    `json:"about" gorm:"type:text"`
	RoleID       uint      `json:"role_id" gorm:"index"`
	MemberSince  time.Time `json:"member_since"`
	LastSeen     time.Time `json:"last_seen"`

	Role *Role `json:"-" gorm:"foreignKey:RoleID"`
}

// BeforeCreate sets timestamps and the default image.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if u.MemberSince.IsZero() {
		u.MemberSince = now
	}
	if u.LastSeen.IsZero() {
		u.LastSeen = now
	}
	if u.Image == "" {
		u.Image = DefaultUserImage
	}
	return nil
}

// SetPassword hashes and stores the password. The plaintext is never kept.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword reports whether the password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Can reports whether the user's role grants every bit of perm.
func (u *User) Can(perm uint) bool {
	return u.Role != nil && u.Role.Permissions&perm == perm
}

// IsAdministrator reports whether the user holds the administer capability.
func (u *User) IsAdministrator() bool {
	return u.Can(PermissionAdminister)
}
