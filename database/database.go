package database

import (
	"log"

	"github.com/shibinnakam/smart-attendance/config"
	"github.com/shibinnakam/smart-attendance/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError: ให้ unique violation ออกมาเป็น gorm.ErrDuplicatedKey
	// (ใช้ตัดสินการลงทะเบียนซ้ำ/สแกนชนกันที่ระดับ store)
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.DayRecord{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
