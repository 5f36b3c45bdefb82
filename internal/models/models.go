package models

import (
	"time"

	"github.com/google/uuid"
)

// Job status values. The store only ever holds one of these three through
// the API; anything else came in out of band and is ignored by the stats
// rollup.
const (
	StatusPending   = "pending"
	StatusInterview = "interview"
	StatusDeclined  = "declined"
)

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeInternship = "internship"
	JobTypeContract   = "contract"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	LastName string `gorm:"default:'lastName'" json:"lastName"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	// bcrypt hash, never serialized
	Password string `gorm:"not null" json:"-"`
	Location string `gorm:"default:'my city'" json:"location"`
	// demo accounts may read everything but mutate nothing
	ReadOnly bool `gorm:"default:false" json:"-"`
}

type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Owner of the record. Set once at creation; every query is scoped by it.
	CreatedBy uuid.UUID `gorm:"type:uuid;index;not null" json:"createdBy"`

	Company  string `gorm:"not null" json:"company"`
	Position string `gorm:"not null" json:"position"`
	Status   string `gorm:"default:'pending'" json:"status"`
	JobType  string `gorm:"default:'full-time'" json:"jobType"`
}
