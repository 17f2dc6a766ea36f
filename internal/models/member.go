package models

import "time"

type Member struct {
	ID uint `gorm:"column:m_id;primaryKey" json:"m_id"`

	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Member) TableName() string { return "members" }
