package models

import "time"

type Payment struct {
	ID uint `gorm:"column:p_id;primaryKey" json:"p_id"`

	MemberID uint `gorm:"column:m_id" json:"m_id"`

	Cost      int  `gorm:"default:0" json:"cost"`
	Processed bool `gorm:"default:false" json:"processed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

// Acumulador de pontos, uma linha por membro.
type Loyalty struct {
	MemberID uint `gorm:"column:m_id;primaryKey" json:"m_id"`
	Points   int  `gorm:"default:0" json:"points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Loyalty) TableName() string { return "loyalty" }
