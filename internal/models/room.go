package models

import "time"

type Room struct {
	ID uint `gorm:"column:r_id;primaryKey" json:"r_id"`

	Name string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }

type Equipment struct {
	ID uint `gorm:"column:e_id;primaryKey" json:"e_id"`

	RoomID uint `gorm:"column:r_id" json:"r_id"`
	Room   Room `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name       string     `gorm:"column:e_name;size:100;not null" json:"e_name"`
	TargetDate time.Time  `gorm:"column:target_date" json:"target_date"`
	LastFixed  *time.Time `gorm:"column:last_fixed" json:"last_fixed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }
