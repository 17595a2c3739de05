package model

// Task belongs to exactly one project; the project id never changes after
// creation. AssignedTo references a team member and may be null. There is
// no database-level foreign key: deleting a member clears the reference
// through a bulk update, deleting a project bulk-deletes its tasks.
type Task struct {
	Base
	Name       string  `gorm:"type:varchar(256);not null;comment:task name" json:"name"`
	IsComplete bool    `gorm:"not null;default:false;comment:completion flag" json:"isComplete"`
	ProjectID  string  `gorm:"type:varchar(36);index;not null;comment:owning project" json:"projectId"`
	AssignedTo *string `gorm:"type:varchar(36);index;comment:assigned team member, nullable" json:"assignedTo"`
}
