package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"size:200" json:"name,omitempty"`
	IsAdmin      bool           `gorm:"not null;default:false" json:"isAdmin"`
	ProjectID    *uuid.UUID     `gorm:"type:uuid;index" json:"projectId,omitempty"`
	Project      *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	TimeEntries  []TimeEntry    `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// DisplayName falls back to the local part of the email when no name is set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

// FirstName is the first word of the name, nil when no name is set.
func (u *User) FirstName() *string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return nil
	}
	return &fields[0]
}

// LastName is everything after the first word of the name.
func (u *User) LastName() *string {
	fields := strings.Fields(u.Name)
	if len(fields) < 2 {
		return nil
	}
	last := strings.Join(fields[1:], " ")
	return &last
}

func (u *User) ProjectName() string {
	if u.Project == nil {
		return ""
	}
	return u.Project.Name
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt.Valid
}

func (u *User) CanManageEntry(entry *TimeEntry) bool {
	if u.IsAdmin {
		return true
	}
	return u.ID == entry.UserID
}

type UserOrder string

const (
	UserOrderName  UserOrder = "name"
	UserOrderEmail UserOrder = "email"
)

type UserFilter struct {
	ProjectID *uuid.UUID
	OrderBy   UserOrder
}
