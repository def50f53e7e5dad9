package attendance

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shibinnakam/smart-attendance/dayclock"
	"github.com/shibinnakam/smart-attendance/models"
)

// เวลาปิดบัญชีของ record ที่ค้างเปิดตอนสิ้นวัน
const SweepCloseTime = "23:59:59"

// Sweeper ปิด record ของ "วันนี้" ที่ยังไม่มีเวลาออกทั้งหมดในครั้งเดียว
// เขียนได้แคบ ๆ แค่ตั้ง check_out_time ของแถวที่ยังว่างเท่านั้น
type Sweeper struct {
	db    *gorm.DB
	clock *dayclock.Provider
}

func NewSweeper(db *gorm.DB, clock *dayclock.Provider) *Sweeper {
	return &Sweeper{db: db, clock: clock}
}

// Run กวาดหนึ่งรอบ คืนจำนวนแถวที่ถูกปิด
// เงื่อนไข check_out_time = '' ทำให้รันซ้ำได้ (idempotent) และไม่ทับ
// เวลาออกที่คนสแกนเองไปแล้ว
func (s *Sweeper) Run() (int64, error) {
	today := s.clock.Today()
	res := s.db.Model(&models.DayRecord{}).
		Where("date = ? AND check_out_time = ''", today).
		Update("check_out_time", SweepCloseTime)
	if res.Error != nil {
		return 0, fmt.Errorf("sweep %s: %w", today, res.Error)
	}
	return res.RowsAffected, nil
}
