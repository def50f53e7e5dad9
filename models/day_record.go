package models

import "time"

// บันทึกเข้า-ออกของผู้ใช้หนึ่งคนต่อหนึ่งวันปฏิทิน
// เปรียบเทียบวันที่/เวลาเป็น string ตามรูปแบบคงที่ (lexicographic) ทั้งระบบ
type DayRecord struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserIdentifier string `json:"user_identifier" gorm:"size:16;not null;uniqueIndex:idx_user_date"`
	Date           string `json:"date" gorm:"size:10;not null;uniqueIndex:idx_user_date"` // YYYY-MM-DD
	CheckInTime    string `json:"check_in_time" gorm:"size:8;not null"`                   // HH:mm:ss
	CheckOutTime   string `json:"check_out_time" gorm:"size:8;not null;default:''"`       // HH:mm:ss, "" = ยังไม่ออก

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Open รายการที่ยังไม่ปิด (ยังไม่มีเวลาออก)
func (r *DayRecord) Open() bool { return r.CheckOutTime == "" }
