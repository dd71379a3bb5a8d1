package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartAt time.Time `gorm:"not null;index" json:"startAt"`
	EndAt   time.Time `gorm:"not null" json:"endAt"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;not null" json:"email"`
	Phone string `gorm:"size:50" json:"phone"`

	Reason string `gorm:"size:200" json:"reason"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
