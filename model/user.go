package model

// User is an API account, used only for authentication. It is unrelated
// to TeamMember: members are assignable people, users are logins.
type User struct {
	Base
	Name     string  `gorm:"uniqueIndex;type:varchar(64);not null;comment:login name" json:"name"`
	Password *string `gorm:"type:varchar(256);comment:bcrypt hash" json:"-"`
	Role     Role    `gorm:"not null;comment:platform role (guest, user, admin)" json:"role"`
}
