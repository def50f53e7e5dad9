package attendance

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shibinnakam/smart-attendance/dayclock"
	"github.com/shibinnakam/smart-attendance/models"
)

type UserPresence struct {
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	DaysPresent int64  `json:"days_present"`
}

// Aggregator สรุปจำนวน "วันที่มา" ต่อผู้ใช้ในหน้าต่างย้อนหลัง
// คำนวณใหม่จาก ledger ทุกครั้งที่ถูกเรียก ไม่มี state ของตัวเอง
type Aggregator struct {
	db    *gorm.DB
	clock *dayclock.Provider
}

func NewAggregator(db *gorm.DB, clock *dayclock.Provider) *Aggregator {
	return &Aggregator{db: db, clock: clock}
}

// PresenceCounts นับวันปฏิทินที่มี DayRecord (สถานะใดก็ได้) ของผู้ใช้แต่ละคน
// ในช่วง windowDays วันล่าสุด; includeToday เลือกว่านับรวมวันนี้หรือไม่
// ผู้ใช้ที่ไม่มี record เลยได้ศูนย์ ไม่ถูกตัดออกจากผลลัพธ์
func (a *Aggregator) PresenceCounts(windowDays int, includeToday bool) ([]UserPresence, error) {
	if windowDays <= 0 {
		windowDays = 1
	}
	end := a.clock.Now()
	if !includeToday {
		end = end.AddDate(0, 0, -1)
	}
	endKey := a.clock.DateKey(end)
	startKey := a.clock.WindowStart(end, windowDays)

	type countRow struct {
		UserIdentifier string
		Days           int64
	}
	var rows []countRow
	err := a.db.Table("day_records").
		Select("user_identifier, COUNT(DISTINCT date) AS days").
		Where("date >= ? AND date <= ?", startKey, endKey).
		Group("user_identifier").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count presence days: %w", err)
	}

	days := make(map[string]int64, len(rows))
	for _, r := range rows {
		days[r.UserIdentifier] = r.Days
	}

	var users []models.User
	if err := a.db.Order("name ASC, identifier ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]UserPresence, 0, len(users))
	for _, u := range users {
		out = append(out, UserPresence{
			Identifier:  u.Identifier,
			Name:        u.Name,
			DaysPresent: days[u.Identifier],
		})
	}
	return out, nil
}
