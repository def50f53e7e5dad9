package attendance

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shibinnakam/smart-attendance/dayclock"
	"github.com/shibinnakam/smart-attendance/directory"
	"github.com/shibinnakam/smart-attendance/models"
)

type ScanStatus string

const (
	StatusIn         ScanStatus = "IN"
	StatusOut        ScanStatus = "OUT"
	StatusAlreadyOut ScanStatus = "ALREADY_OUT"
)

type ScanResult struct {
	Status ScanStatus       `json:"status"`
	Record models.DayRecord `json:"record"`
}

// Ledger เจ้าของ DayRecord แต่เพียงผู้เดียว: สแกนครั้งแรกของวัน = เข้า,
// ครั้งที่สอง = ออก, ครั้งถัดไปถูกปฏิเสธ (ALREADY_OUT)
type Ledger struct {
	db    *gorm.DB
	dir   *directory.Directory
	clock *dayclock.Provider
}

func NewLedger(db *gorm.DB, dir *directory.Directory, clock *dayclock.Provider) *Ledger {
	return &Ledger{db: db, dir: dir, clock: clock}
}

// RecordScan ประมวลผลการแตะบัตรหนึ่งครั้ง ณ เวลา now
// การแข่งกันที่ (user, วัน) เดียวกันตัดสินด้วย conditional write ที่ store
// ไม่ใช่ lock ในโปรเซส: ปิด record ได้เฉพาะตอนที่ยังเปิดอยู่เท่านั้น
// และการสร้างซ้ำถูกกันด้วย unique index
func (l *Ledger) RecordScan(rawID string, now time.Time) (ScanResult, error) {
	user, err := l.dir.FindByIdentifier(rawID)
	if err != nil {
		return ScanResult{}, err
	}

	date := l.clock.DateKey(now)
	tod := l.clock.TimeOfDay(now)
	return l.toggle(user.Identifier, date, tod, true)
}

func (l *Ledger) toggle(key, date, tod string, retryOnRace bool) (ScanResult, error) {
	// 1) ลองปิดก่อน: สำเร็จเฉพาะ record ที่ยังไม่มีเวลาออก
	res := l.db.Model(&models.DayRecord{}).
		Where("user_identifier = ? AND date = ? AND check_out_time = ''", key, date).
		Update("check_out_time", tod)
	if res.Error != nil {
		return ScanResult{}, fmt.Errorf("close day record: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		rec, err := l.find(key, date)
		if err != nil {
			return ScanResult{}, err
		}
		return ScanResult{Status: StatusOut, Record: rec}, nil
	}

	// 2) ปิดไม่ได้แต่มี record → วันนี้ออกไปแล้ว
	var rec models.DayRecord
	err := l.db.Where("user_identifier = ? AND date = ?", key, date).First(&rec).Error
	switch {
	case err == nil:
		return ScanResult{Status: StatusAlreadyOut, Record: rec}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return ScanResult{}, fmt.Errorf("load day record: %w", err)
	}

	// 3) ยังไม่มี record ของวันนี้ → เช็คอิน
	rec = models.DayRecord{UserIdentifier: key, Date: date, CheckInTime: tod}
	if err := l.db.Create(&rec).Error; err != nil {
		// double-tap: อีกคำขอหนึ่งสร้างไปก่อน วนกลับไปทางปิดหนึ่งรอบ
		if errors.Is(err, gorm.ErrDuplicatedKey) && retryOnRace {
			return l.toggle(key, date, tod, false)
		}
		return ScanResult{}, fmt.Errorf("create day record: %w", err)
	}
	return ScanResult{Status: StatusIn, Record: rec}, nil
}

func (l *Ledger) find(key, date string) (models.DayRecord, error) {
	var rec models.DayRecord
	if err := l.db.Where("user_identifier = ? AND date = ?", key, date).First(&rec).Error; err != nil {
		return models.DayRecord{}, fmt.Errorf("load day record: %w", err)
	}
	return rec, nil
}

// ForDate รายการของวันเดียว เรียงตามเวลาเข้า
func (l *Ledger) ForDate(date string) ([]models.DayRecord, error) {
	var rows []models.DayRecord
	err := l.db.Where("date = ?", date).
		Order("check_in_time ASC, user_identifier ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list day records for %s: %w", date, err)
	}
	return rows, nil
}

// ForMonth รายการทั้งเดือน YYYY-MM (เทียบช่วงบน string คีย์)
func (l *Ledger) ForMonth(month string) ([]models.DayRecord, error) {
	first, last, err := dayclock.MonthBounds(month)
	if err != nil {
		return nil, err
	}
	var rows []models.DayRecord
	err = l.db.Where("date >= ? AND date <= ?", first, last).
		Order("date ASC, check_in_time ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list day records for %s: %w", month, err)
	}
	return rows, nil
}
