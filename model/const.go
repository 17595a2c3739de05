package model

// User role in platform
type Role uint8

const (
	_ Role = iota
	RoleGuest
	RoleUser
	RoleAdmin
)

// Project status. Only two values exist: a project is either being
// worked on or it is done. The strings are stored and served as-is.
type ProjectStatus string

const (
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

// Valid reports whether s is one of the two known statuses.
func (s ProjectStatus) Valid() bool {
	return s == StatusInProgress || s == StatusCompleted
}
