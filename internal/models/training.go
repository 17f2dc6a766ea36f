package models

import "time"

// Sessão de treino individual entre um membro e um treinador.
type TrainingSession struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID  uint `gorm:"column:m_id" json:"m_id"`
	TrainerID uint `gorm:"column:t_id" json:"t_id"`

	Date      time.Time `json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TrainingSession) TableName() string { return "sessions" }

type Goal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID    uint   `gorm:"column:m_id" json:"m_id"`
	Description string `gorm:"size:255;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Goal) TableName() string { return "goals" }

type Exercise struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint `gorm:"column:m_id" json:"m_id"`

	Date        time.Time `json:"date"`
	BodyGroup   string    `gorm:"size:50" json:"body_group"`
	Description string    `gorm:"size:255" json:"description"`
	StartTime   string    `gorm:"size:5" json:"start_time"`
	EndTime     string    `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exercise) TableName() string { return "exercises" }

type HealthRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint `gorm:"column:m_id" json:"m_id"`

	Weight float64   `json:"weight"`
	Height float64   `json:"height"`
	Date   time.Time `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HealthRecord) TableName() string { return "health" }

type Complaint struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID    uint   `gorm:"column:m_id" json:"m_id"`
	Description string `gorm:"size:255;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Complaint) TableName() string { return "complaints" }
