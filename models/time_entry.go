package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout is the wire and CSV format of an entry date.
const DateLayout = "2006-01-02"

type EntryType string

const (
	EntryTypeWork    EntryType = "work"
	EntryTypeHoliday EntryType = "holiday"
	EntryTypeLeave   EntryType = "leave"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeWork, EntryTypeHoliday, EntryTypeLeave:
		return true
	}
	return false
}

// IsDayOff reports whether the entry marks a non-working day.
func (t EntryType) IsDayOff() bool {
	return t == EntryTypeHoliday || t == EntryTypeLeave
}

// DefaultDescription is the label used for day-off entries without a description.
func (t EntryType) DefaultDescription() string {
	switch t {
	case EntryTypeHoliday:
		return "Holiday"
	case EntryTypeLeave:
		return "Leave"
	}
	return ""
}

type TimeEntry struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
	Date        datatypes.Date `gorm:"not null;index" json:"date"`
	Hours       float64        `gorm:"type:decimal(4,2);not null" json:"hours"`
	Description string         `gorm:"size:500;not null" json:"description"`
	EntryType   EntryType      `gorm:"size:16;not null;default:work" json:"entryType"`
}

func (e *TimeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *TimeEntry) Day() string {
	return time.Time(e.Date).Format(DateLayout)
}

type TimeEntryFilter struct {
	UserID     *uuid.UUID
	From       time.Time
	To         time.Time
	Descending bool
}
