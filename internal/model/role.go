package model

// Permission bits. A role's Permissions field is the OR of the capabilities
// it grants; membership is checked with a bitwise AND.
const (
	PermissionComment          uint = 0x01
	PermissionWriteArticles    uint = 0x02
	PermissionModerateComments uint = 0x04
	PermissionAdminister       uint = 0x80
)

// Well-known role names.
const (
	RoleNameUser          = "User"
	RoleNameLawyer        = "Lawyer"
	RoleNameAdministrator = "Administrator"
)

// Role is a named permission bundle assigned to users.
type Role struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:64;uniqueIndex"`
	Default     bool   `json:"default" gorm:"default:false;index"`
	Permissions uint   `json:"permissions"`

	Users []User `json:"-" gorm:"foreignKey:RoleID"`
}

// DefaultRoles returns the canonical role set. Exactly one role carries the
// default flag; it is assigned to users registered without an explicit role.
func DefaultRoles() []Role {
	return []Role{
		{Name: RoleNameUser, Permissions: PermissionComment, Default: true},
		{Name: RoleNameLawyer, Permissions: PermissionComment | PermissionWriteArticles | PermissionModerateComments},
		{Name: RoleNameAdministrator, Permissions: 0xFF},
	}
}
