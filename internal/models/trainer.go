package models

import "time"

type Trainer struct {
	ID uint `gorm:"column:t_id;primaryKey" json:"t_id"`

	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Trainer) TableName() string { return "trainers" }
