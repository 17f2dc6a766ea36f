package db

import (
	"log"
	"time"

	"github.com/DojoGymServices/gym-manager/internal/config"
	"github.com/DojoGymServices/gym-manager/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// O pool é deliberadamente pequeno: três conexões simultâneas,
	// aquisições além disso ficam em fila.
	sqlDB.SetMaxOpenConns(3)
	sqlDB.SetMaxIdleConns(3)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Member{},
		&models.Trainer{},
		&models.Admin{},
		&models.Room{},
		&models.Equipment{},
		&models.Booking{},
		&models.Class{},
		&models.MemberClass{},
		&models.TrainingSession{},
		&models.Goal{},
		&models.Exercise{},
		&models.HealthRecord{},
		&models.Complaint{},
		&models.Payment{},
		&models.Loyalty{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
