package models

import "time"

type Booking struct {
	ID uint `gorm:"column:b_id;primaryKey" json:"b_id"`

	RoomID uint `gorm:"column:r_id" json:"r_id"`
	Room   Room `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

type Class struct {
	ID uint `gorm:"column:c_id;primaryKey" json:"c_id"`

	BookingID uint    `gorm:"column:b_id" json:"b_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Class) TableName() string { return "classes" }

// Tabela de ligação Member ↔ Class.
type MemberClass struct {
	MemberID uint `gorm:"column:m_id;primaryKey" json:"m_id"`
	ClassID  uint `gorm:"column:c_id;primaryKey" json:"c_id"`
}

func (MemberClass) TableName() string { return "member_classes" }
