package model

// Project is a unit of work containing tasks. Progress is a derived field:
// it is rewritten by the recalculator after every task mutation, but the
// update endpoint also accepts manual overrides, so progress and status can
// drift apart until the next recompute.
type Project struct {
	Base
	Name     string        `gorm:"type:varchar(256);not null;comment:project name" json:"name"`
	Status   ProjectStatus `gorm:"type:varchar(32);not null;default:'In Progress';comment:project status (In Progress, Completed)" json:"status"`
	Progress int           `gorm:"not null;default:0;comment:completed task percentage [0,100]" json:"progress"`
}
