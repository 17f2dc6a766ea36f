package models

import "time"

type Admin struct {
	ID uint `gorm:"column:a_id;primaryKey" json:"a_id"`

	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Admin) TableName() string { return "admins" }
