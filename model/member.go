package model

import "gorm.io/datatypes"

// Optional fields for a team member
type MemberAttribute struct {
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// TeamMember is a person tasks can be assigned to. Task count and capacity
// are never stored; they are computed from live task rows on every read.
type TeamMember struct {
	Base
	Name       string                              `gorm:"type:varchar(128);not null;comment:member name" json:"name"`
	Attributes datatypes.JSONType[MemberAttribute] `gorm:"comment:optional member attributes (email, avatar)" json:"attributes"`
}

// MemberView is the team listing shape: the stored member plus the derived
// workload fields.
type MemberView struct {
	ID                 string        `json:"_id"`
	Name               string        `json:"name"`
	TaskCount          int64         `json:"taskCount"`
	CapacityLevel      CapacityLevel `json:"capacityLevel"`
	CapacityPercentage int           `json:"capacityPercentage"`
}
