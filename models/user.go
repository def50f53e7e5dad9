package models

import "time"

// ผู้ใช้บัตร RFID หนึ่งคนต่อหนึ่งบัตร
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Identifier string    `json:"identifier" gorm:"uniqueIndex;size:16;not null"` // คีย์บัตรหลัง normalize เช่น "0000AB12"
	Name       string    `json:"name" gorm:"size:120;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
